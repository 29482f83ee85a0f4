package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/apperrors"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	portsrepo "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/repositories"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/models"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `product_id, name, category, selling_price, active,
		created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.Name,
		&m.Category,
		&m.SellingPrice,
		&m.Active,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	p := mapping.ToDomainProduct(*m)
	return &p, nil
}

func (r *PgxProductRepository) FindProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name;`
	return r.queryProducts(ctx, query)
}

func (r *PgxProductRepository) FindActiveProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE active ORDER BY name;`
	return r.queryProducts(ctx, query)
}

func (r *PgxProductRepository) queryProducts(ctx context.Context, query string) ([]domain.Product, error) {
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	ms := []models.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}
	return mapping.ToDomainProductSlice(ms), nil
}

// SaveProductWithInventory inserts the catalog row and its inventory row in
// one transaction so no product ever exists without a stock row.
func (r *PgxProductRepository) SaveProductWithInventory(ctx context.Context, product domain.Product, inventory domain.InventoryRow) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelProduct(product)
	productQuery := `
        INSERT INTO products (product_id, name, category, selling_price, active,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err = tx.Exec(ctx, productQuery,
		m.ProductID,
		m.Name,
		m.Category,
		m.SellingPrice,
		m.Active,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("product %q: %w", product.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert product: %w", err)
	}

	invQuery := `
        INSERT INTO inventory (inventory_id, product_id, quantity, low_stock_threshold, updated_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err = tx.Exec(ctx, invQuery,
		inventory.InventoryID,
		inventory.ProductID,
		inventory.Quantity,
		inventory.LowStockThreshold,
		inventory.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert inventory row: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
        UPDATE products
        SET name = $1, category = $2, selling_price = $3, active = $4,
            last_updated_at = $5, last_updated_by = $6
        WHERE product_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Category,
		m.SellingPrice,
		m.Active,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ProductID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", product.ProductID, apperrors.ErrNotFound)
	}
	return nil
}
