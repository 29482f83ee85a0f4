package pgsql

import (
	portsrepo "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository onto one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:       newPgxUserRepository(pool),
		ProductRepo:    newPgxProductRepository(pool),
		InventoryRepo:  newPgxInventoryRepository(pool),
		DailyStockRepo: newPgxDailyStockRepository(pool),
		SaleRepo:       newPgxSaleRepository(pool),
	}
}
