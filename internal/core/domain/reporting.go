package domain

import "github.com/shopspring/decimal"

// RevenueBucket is revenue aggregated by calendar date.
type RevenueBucket struct {
	Date    string          `json:"date"` // YYYY-MM-DD
	Revenue decimal.Decimal `json:"revenue"`
}

// ProductSalesSummary ranks a product by units sold.
type ProductSalesSummary struct {
	ProductName string          `json:"productName"`
	UnitsSold   int             `json:"unitsSold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// PaymentSplit is revenue broken down by payment method.
type PaymentSplit struct {
	Cash  decimal.Decimal `json:"cash"`
	Mpesa decimal.Decimal `json:"mpesa"`
}

// MoverClass buckets a product by sales velocity.
type MoverClass string

const (
	FastMover MoverClass = "fast"
	SlowMover MoverClass = "slow"
)

// ProductVelocity classifies a product as a fast or slow mover against a
// fixed units-sold threshold.
type ProductVelocity struct {
	ProductName string     `json:"productName"`
	UnitsSold   int        `json:"unitsSold"`
	Class       MoverClass `json:"class"`
}

// ProductMargin is the average recorded profit margin for one product.
type ProductMargin struct {
	ProductName   string          `json:"productName"`
	AverageMargin decimal.Decimal `json:"averageMargin"`
}

// DashboardReport is the full derived view over the sales ledger, the live
// inventory snapshot and the daily stock ledger. It is a deterministic
// function of its input rows; nothing here is persisted.
type DashboardReport struct {
	TotalRevenue   decimal.Decimal       `json:"totalRevenue"`
	SalesCount     int                   `json:"salesCount"`
	LowStockCount  int                   `json:"lowStockCount"`
	RevenueByDate  []RevenueBucket       `json:"revenueByDate"`
	TopProducts    []ProductSalesSummary `json:"topProducts"`
	PaymentSplit   PaymentSplit          `json:"paymentSplit"`
	Velocity       []ProductVelocity     `json:"velocity"`
	AverageMargins []ProductMargin       `json:"averageMargins"`
}

// SalesReport mirrors the legacy /reports/sales response.
type SalesReport struct {
	TotalSales   int             `json:"total_sales"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	ByPayment    PaymentSplit    `json:"sales_by_payment_method"`
	Sales        []Sale          `json:"sales"`
}

// StockReportItem is one inventory row joined with its product for the legacy
// /reports/stock response.
type StockReportItem struct {
	Product   Product      `json:"product"`
	Inventory InventoryRow `json:"inventory"`
	LowStock  bool         `json:"lowStock"`
}

// StockReport mirrors the legacy /reports/stock response.
type StockReport struct {
	Items []StockReportItem `json:"items"`
}
