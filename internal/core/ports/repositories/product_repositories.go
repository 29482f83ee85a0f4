package repositories

import (
	"context"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
)

// ProductReader defines read operations for the catalog.
type ProductReader interface {
	// FindProductByID retrieves a catalog item by id.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProducts retrieves all catalog items, active and inactive.
	FindProducts(ctx context.Context) ([]domain.Product, error)

	// FindActiveProducts retrieves only active catalog items.
	FindActiveProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriter defines write operations for the catalog.
type ProductWriter interface {
	// SaveProductWithInventory inserts a product and its inventory row in
	// one transaction so a catalog item never exists without a stock row.
	SaveProductWithInventory(ctx context.Context, product domain.Product, inventory domain.InventoryRow) error

	// UpdateProduct updates catalog fields of an existing item.
	UpdateProduct(ctx context.Context, product domain.Product) error
}

// ProductRepositoryFacade combines all catalog repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
