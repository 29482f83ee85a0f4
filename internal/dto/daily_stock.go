package dto

import (
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateCellRequest overwrites one cell of a draft record.
// Concurrent edits to the same cell are last-write-wins; there is no
// optimistic locking on draft rows.
type UpdateCellRequest struct {
	Field string `json:"field" binding:"required,oneof=opening_stock added_stock closing_stock"`
	Value int    `json:"value" binding:"gte=0"`
}

// DailyStockRecordResponse is one ledger row plus its derived figures.
// DataQualityWarning marks rows whose computed sold count is negative.
type DailyStockRecordResponse struct {
	RecordID           string          `json:"recordID"`
	RecordDate         string          `json:"recordDate"`
	ProductID          string          `json:"productID"`
	ProductName        string          `json:"productName"`
	OpeningStock       int             `json:"openingStock"`
	AddedStock         int             `json:"addedStock"`
	TotalStock         int             `json:"totalStock"`
	ClosingStock       int             `json:"closingStock"`
	SoldUnits          int             `json:"soldUnits"`
	Revenue            decimal.Decimal `json:"revenue"`
	Status             string          `json:"status"`
	DataQualityWarning bool            `json:"dataQualityWarning"`
}

// ToDailyStockRecordResponse joins a ledger row with its product for display.
func ToDailyStockRecordResponse(r domain.DailyStockRecord, p domain.Product) DailyStockRecordResponse {
	return DailyStockRecordResponse{
		RecordID:           r.RecordID,
		RecordDate:         r.RecordDate,
		ProductID:          r.ProductID,
		ProductName:        p.Name,
		OpeningStock:       r.OpeningStock,
		AddedStock:         r.AddedStock,
		TotalStock:         r.TotalStock(),
		ClosingStock:       r.ClosingStock,
		SoldUnits:          r.SoldUnits(),
		Revenue:            r.Revenue(p.SellingPrice),
		Status:             string(r.Status),
		DataQualityWarning: r.HasDataQualityWarning(),
	}
}

// DayResponse is the full ledger view for one date.
type DayResponse struct {
	Date    string                     `json:"date"`
	Status  string                     `json:"status"`
	Records []DailyStockRecordResponse `json:"records"`
}
