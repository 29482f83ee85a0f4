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

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleColumns = `sale_id, product_id, product_name, quantity, unit_price, total,
		payment_method, sold_by, sold_at`

func scanSale(row pgx.Row) (*models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.ProductID,
		&m.ProductName,
		&m.Quantity,
		&m.UnitPrice,
		&m.Total,
		&m.PaymentMethod,
		&m.SoldBy,
		&m.SoldAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxSaleRepository) FindSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + saleColumns + `
        FROM sales
        ORDER BY sold_at DESC
        LIMIT $1 OFFSET $2;`
	return r.querySales(ctx, query, limit, offset)
}

func (r *PgxSaleRepository) FindAllSales(ctx context.Context) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY sold_at DESC;`
	return r.querySales(ctx, query)
}

func (r *PgxSaleRepository) querySales(ctx context.Context, query string, args ...any) ([]domain.Sale, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	ms := []models.Sale{}
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", rows.Err())
	}
	return mapping.ToDomainSaleSlice(ms), nil
}

// SaveSaleAndDecrement records one sale atomically. The inventory row is
// locked first so concurrent sales of the same product serialize, the stock
// check happens under that lock, and nothing mutates unless the check passes.
func (r *PgxSaleRepository) SaveSaleAndDecrement(ctx context.Context, sale domain.Sale) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var onHand int
	err = tx.QueryRow(ctx, `
        SELECT quantity FROM inventory WHERE product_id = $1 FOR UPDATE;
    `, sale.ProductID).Scan(&onHand)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("inventory row missing for product %s: %w", sale.ProductID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to lock inventory row: %w", err)
	}

	if onHand < sale.Quantity {
		return fmt.Errorf("product %s has %d on hand, requested %d: %w",
			sale.ProductName, onHand, sale.Quantity, apperrors.ErrInsufficientStock)
	}

	_, err = tx.Exec(ctx, `
        UPDATE inventory
        SET quantity = quantity - $1, updated_at = $2
        WHERE product_id = $3;
    `, sale.Quantity, sale.SoldAt, sale.ProductID)
	if err != nil {
		return fmt.Errorf("failed to decrement inventory: %w", err)
	}

	m := mapping.ToModelSale(sale)
	_, err = tx.Exec(ctx, `
        INSERT INTO sales (sale_id, product_id, product_name, quantity, unit_price, total,
            payment_method, sold_by, sold_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `,
		m.SaleID,
		m.ProductID,
		m.ProductName,
		m.Quantity,
		m.UnitPrice,
		m.Total,
		m.PaymentMethod,
		m.SoldBy,
		m.SoldAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}

	return r.Commit(ctx, tx)
}
