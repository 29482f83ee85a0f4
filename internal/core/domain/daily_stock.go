package domain

import "github.com/shopspring/decimal"

// DayStatus is the lifecycle state of a ledger date. A date with no rows is
// implicitly empty; all rows sharing a date share the same status.
type DayStatus string

const (
	DayStatusEmpty     DayStatus = "empty" // implied by absence of rows
	DayStatusDraft     DayStatus = "draft"
	DayStatusPublished DayStatus = "published"
)

// StockField names an editable cell of a draft record.
type StockField string

const (
	FieldOpeningStock StockField = "opening_stock"
	FieldAddedStock   StockField = "added_stock"
	FieldClosingStock StockField = "closing_stock"
)

// IsValid reports whether f names an editable cell.
func (f StockField) IsValid() bool {
	switch f {
	case FieldOpeningStock, FieldAddedStock, FieldClosingStock:
		return true
	}
	return false
}

// DailyStockRecord is one (date, product) row of the daily stock ledger.
// Counts are stored; totals, sold units and revenue are derived on read.
type DailyStockRecord struct {
	RecordID     string           `json:"recordID"`
	RecordDate   string           `json:"recordDate"` // YYYY-MM-DD
	ProductID    string           `json:"productID"`
	OpeningStock int              `json:"openingStock"`
	AddedStock   int              `json:"addedStock"`
	ClosingStock int              `json:"closingStock"`
	Status       DayStatus        `json:"status"`
	ProfitMargin *decimal.Decimal `json:"profitMargin,omitempty"`
	AuditFields
}

// TotalStock is opening plus added stock.
func (r DailyStockRecord) TotalStock() int {
	return r.OpeningStock + r.AddedStock
}

// SoldUnits is total stock minus closing stock. It can be negative only when
// data entry went wrong; callers surface that via HasDataQualityWarning.
func (r DailyStockRecord) SoldUnits() int {
	return r.TotalStock() - r.ClosingStock
}

// Revenue is sold units times the product's selling price at read time.
func (r DailyStockRecord) Revenue(sellingPrice decimal.Decimal) decimal.Decimal {
	return sellingPrice.Mul(decimal.NewFromInt(int64(r.SoldUnits())))
}

// HasDataQualityWarning reports a negative computed sold count, which means
// closing stock exceeds opening+added and the row needs attention.
func (r DailyStockRecord) HasDataQualityWarning() bool {
	return r.SoldUnits() < 0
}
