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

type PgxInventoryRepository struct {
	BaseRepository
}

func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

const inventoryColumns = `inventory_id, product_id, quantity, low_stock_threshold, updated_at`

func scanInventoryRow(row pgx.Row) (*models.InventoryRow, error) {
	var m models.InventoryRow
	err := row.Scan(
		&m.InventoryID,
		&m.ProductID,
		&m.Quantity,
		&m.LowStockThreshold,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxInventoryRepository) FindInventoryByProductID(ctx context.Context, productID string) (*domain.InventoryRow, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE product_id = $1;`
	m, err := scanInventoryRow(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory for product %s: %w", productID, err)
	}
	row := mapping.ToDomainInventoryRow(*m)
	return &row, nil
}

func (r *PgxInventoryRepository) FindInventory(ctx context.Context) ([]domain.InventoryRow, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory ORDER BY product_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	ms := []models.InventoryRow{}
	for rows.Next() {
		m, err := scanInventoryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating inventory rows: %w", rows.Err())
	}
	return mapping.ToDomainInventorySlice(ms), nil
}

func (r *PgxInventoryRepository) UpdateInventory(ctx context.Context, row domain.InventoryRow) error {
	query := `
        UPDATE inventory
        SET quantity = $1, low_stock_threshold = $2, updated_at = $3
        WHERE product_id = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		row.Quantity,
		row.LowStockThreshold,
		row.UpdatedAt,
		row.ProductID,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("inventory for product %s: %w", row.ProductID, apperrors.ErrNotFound)
	}
	return nil
}
