package models

import "github.com/shopspring/decimal"

// DailyStockRecord is the database representation of one ledger row.
type DailyStockRecord struct {
	RecordID     string           `db:"record_id"`
	RecordDate   string           `db:"record_date"`
	ProductID    string           `db:"product_id"`
	OpeningStock int              `db:"opening_stock"`
	AddedStock   int              `db:"added_stock"`
	ClosingStock int              `db:"closing_stock"`
	Status       string           `db:"status"`
	ProfitMargin *decimal.Decimal `db:"profit_margin"`
	AuditFields
}
