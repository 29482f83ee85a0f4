package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/apperrors"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	portsrepo "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/repositories"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/models"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDailyStockRepository struct {
	BaseRepository
}

func newPgxDailyStockRepository(pool *pgxpool.Pool) portsrepo.DailyStockRepositoryFacade {
	return &PgxDailyStockRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DailyStockRepositoryFacade = (*PgxDailyStockRepository)(nil)

const dailyStockColumns = `record_id, record_date, product_id, opening_stock, added_stock, closing_stock,
		status, profit_margin, created_at, created_by, last_updated_at, last_updated_by`

func scanDailyStockRecord(row pgx.Row) (*models.DailyStockRecord, error) {
	var m models.DailyStockRecord
	err := row.Scan(
		&m.RecordID,
		&m.RecordDate,
		&m.ProductID,
		&m.OpeningStock,
		&m.AddedStock,
		&m.ClosingStock,
		&m.Status,
		&m.ProfitMargin,
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

func (r *PgxDailyStockRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.DailyStockRecord, error) {
	query := `SELECT ` + dailyStockColumns + ` FROM daily_stock_records WHERE record_id = $1;`
	m, err := scanDailyStockRecord(r.Pool.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find stock record %s: %w", recordID, err)
	}
	rec := mapping.ToDomainDailyStockRecord(*m)
	return &rec, nil
}

func (r *PgxDailyStockRepository) FindRecordsByDate(ctx context.Context, date string) ([]domain.DailyStockRecord, error) {
	query := `SELECT ` + dailyStockColumns + `
        FROM daily_stock_records
        WHERE record_date = $1
        ORDER BY product_id;`
	return r.queryRecords(ctx, query, date)
}

func (r *PgxDailyStockRepository) FindRecordsBetween(ctx context.Context, fromDate, toDate string) ([]domain.DailyStockRecord, error) {
	query := `SELECT ` + dailyStockColumns + `
        FROM daily_stock_records
        WHERE record_date >= $1 AND record_date <= $2
        ORDER BY record_date, product_id;`
	return r.queryRecords(ctx, query, fromDate, toDate)
}

func (r *PgxDailyStockRepository) queryRecords(ctx context.Context, query string, args ...any) ([]domain.DailyStockRecord, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock records: %w", err)
	}
	defer rows.Close()

	ms := []models.DailyStockRecord{}
	for rows.Next() {
		m, err := scanDailyStockRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock record row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating stock record rows: %w", rows.Err())
	}
	return mapping.ToDomainDailyStockSlice(ms), nil
}

// InsertDayRecords inserts a full day's draft rows in one transaction. The
// unique (record_date, product_id) constraint makes re-initialization of an
// existing day surface as ErrDuplicate with nothing written.
func (r *PgxDailyStockRepository) InsertDayRecords(ctx context.Context, records []domain.DailyStockRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
        INSERT INTO daily_stock_records (record_id, record_date, product_id,
            opening_stock, added_stock, closing_stock, status, profit_margin,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	for _, rec := range records {
		m := mapping.ToModelDailyStockRecord(rec)
		_, err := tx.Exec(ctx, query,
			m.RecordID,
			m.RecordDate,
			m.ProductID,
			m.OpeningStock,
			m.AddedStock,
			m.ClosingStock,
			m.Status,
			m.ProfitMargin,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("day %s already initialized: %w", rec.RecordDate, apperrors.ErrDuplicate)
			}
			return fmt.Errorf("failed to insert stock record for product %s: %w", rec.ProductID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateRecordField overwrites one cell of a draft row. The status guard is
// in the WHERE clause so a published row can never be touched, however many
// writers race. Last write wins between concurrent draft edits.
func (r *PgxDailyStockRepository) UpdateRecordField(ctx context.Context, recordID string, field domain.StockField, value int, updatedBy string, updatedAt time.Time) error {
	if !field.IsValid() {
		return fmt.Errorf("unknown stock field %q: %w", field, apperrors.ErrValidation)
	}

	// field comes from the validated enum, never from raw input.
	query := fmt.Sprintf(`
        UPDATE daily_stock_records
        SET %s = $1, last_updated_at = $2, last_updated_by = $3
        WHERE record_id = $4 AND status = $5;
    `, string(field))

	cmdTag, err := r.Pool.Exec(ctx, query, value, updatedAt, updatedBy, recordID, string(domain.DayStatusDraft))
	if err != nil {
		return fmt.Errorf("failed to update stock record field: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Distinguish a missing row from a published one.
		var status string
		err := r.Pool.QueryRow(ctx, `SELECT status FROM daily_stock_records WHERE record_id = $1;`, recordID).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("stock record %s: %w", recordID, apperrors.ErrNotFound)
			}
			return fmt.Errorf("failed to check stock record status: %w", err)
		}
		return fmt.Errorf("stock record %s is %s: %w", recordID, status, apperrors.ErrStateConflict)
	}
	return nil
}

// PublishDay runs the day-end close as one transaction: every product's live
// inventory quantity is overwritten with that day's closing stock, then all
// rows of the date flip to published. Any failed inventory write aborts the
// whole publish, so the day stays draft and a retry starts clean.
func (r *PgxDailyStockRepository) PublishDay(ctx context.Context, date string, publishedBy string, publishedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	rows, err := tx.Query(ctx, `
        SELECT product_id, closing_stock
        FROM daily_stock_records
        WHERE record_date = $1 AND status = $2
        ORDER BY product_id
        FOR UPDATE;
    `, date, string(domain.DayStatusDraft))
	if err != nil {
		return fmt.Errorf("failed to query draft records for %s: %w", date, err)
	}

	type closing struct {
		productID    string
		closingStock int
	}
	closings := []closing{}
	for rows.Next() {
		var c closing
		if err := rows.Scan(&c.productID, &c.closingStock); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan draft record: %w", err)
		}
		closings = append(closings, c)
	}
	rows.Close()
	if rows.Err() != nil {
		return fmt.Errorf("error iterating draft records: %w", rows.Err())
	}
	if len(closings) == 0 {
		return fmt.Errorf("no draft records for %s: %w", date, apperrors.ErrStateConflict)
	}

	for _, c := range closings {
		cmdTag, err := tx.Exec(ctx, `
            UPDATE inventory
            SET quantity = $1, updated_at = $2
            WHERE product_id = $3;
        `, c.closingStock, publishedAt, c.productID)
		if err != nil {
			return fmt.Errorf("failed to sync inventory for product %s: %w", c.productID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("inventory row missing for product %s: %w", c.productID, apperrors.ErrNotFound)
		}
	}

	_, err = tx.Exec(ctx, `
        UPDATE daily_stock_records
        SET status = $1, last_updated_at = $2, last_updated_by = $3
        WHERE record_date = $4 AND status = $5;
    `, string(domain.DayStatusPublished), publishedAt, publishedBy, date, string(domain.DayStatusDraft))
	if err != nil {
		return fmt.Errorf("failed to publish records for %s: %w", date, err)
	}

	return r.Commit(ctx, tx)
}
