package repositories

// RepositoryProvider bundles every repository facade for dependency injection.
type RepositoryProvider struct {
	UserRepo       UserRepositoryFacade
	ProductRepo    ProductRepositoryFacade
	InventoryRepo  InventoryRepositoryFacade
	DailyStockRepo DailyStockRepositoryFacade
	SaleRepo       SaleRepositoryFacade
}
