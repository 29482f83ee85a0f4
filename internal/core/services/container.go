package services

import (
	portsrepo "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/repositories"
	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/platform/cache"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/platform/config"
)

// NewServiceContainer wires every service onto the repository provider and
// returns the container handed to the handlers.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config, reportCache cache.ReportCache) *portssvc.ServiceContainer {
	userService := NewUserService(repos.UserRepo)

	return &portssvc.ServiceContainer{
		User:         userService,
		AccessGate:   NewAccessGateService(repos.UserRepo, userService),
		Token:        NewTokenService(cfg, userService),
		GoogleOAuth:  NewGoogleOAuthService(cfg),
		LoginHistory: NewLoginHistoryService(repos.UserRepo, userService),
		Product:      NewProductService(repos.ProductRepo, userService),
		Inventory:    NewInventoryService(repos.InventoryRepo, userService),
		DailyStock:   NewDailyStockService(repos.DailyStockRepo, repos.ProductRepo, repos.InventoryRepo, userService, reportCache),
		Sale:         NewSaleService(repos.SaleRepo, repos.ProductRepo, userService, reportCache),
		Reporting:    NewReportingService(repos.SaleRepo, repos.InventoryRepo, repos.ProductRepo, repos.DailyStockRepo, userService, reportCache),
	}
}
