package services

import (
	"context"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
)

// ProductReaderSvc defines read operations on the catalog.
type ProductReaderSvc interface {
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListActiveProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriterSvc defines catalog management; requires staff or admin.
type ProductWriterSvc interface {
	CreateProduct(ctx context.Context, requestingUserID string, req dto.CreateProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, requestingUserID, productID string, req dto.UpdateProductRequest) (*domain.Product, error)
}

// ProductSvcFacade combines the catalog service interfaces.
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
