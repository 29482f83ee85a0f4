package services

// ServiceContainer holds instances of all the application services. Handlers
// receive this container and depend only on the interfaces it exposes.
type ServiceContainer struct {
	User         UserSvcFacade
	AccessGate   AccessGateSvc
	Token        TokenSvcFacade
	GoogleOAuth  GoogleOAuthSvcFacade
	LoginHistory LoginHistorySvc
	Product      ProductSvcFacade
	Inventory    InventorySvcFacade
	DailyStock   DailyStockSvcFacade
	Sale         SaleSvcFacade
	Reporting    ReportingSvcFacade
}
