package mapping

import (
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/models"
)

// ToModelDailyStockRecord converts a domain ledger record to its database model.
func ToModelDailyStockRecord(d domain.DailyStockRecord) models.DailyStockRecord {
	return models.DailyStockRecord{
		RecordID:     d.RecordID,
		RecordDate:   d.RecordDate,
		ProductID:    d.ProductID,
		OpeningStock: d.OpeningStock,
		AddedStock:   d.AddedStock,
		ClosingStock: d.ClosingStock,
		Status:       string(d.Status),
		ProfitMargin: d.ProfitMargin,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDailyStockRecord converts a database model ledger row to its domain form.
func ToDomainDailyStockRecord(m models.DailyStockRecord) domain.DailyStockRecord {
	return domain.DailyStockRecord{
		RecordID:     m.RecordID,
		RecordDate:   m.RecordDate,
		ProductID:    m.ProductID,
		OpeningStock: m.OpeningStock,
		AddedStock:   m.AddedStock,
		ClosingStock: m.ClosingStock,
		Status:       domain.DayStatus(m.Status),
		ProfitMargin: m.ProfitMargin,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDailyStockSlice converts a slice of model ledger rows.
func ToDomainDailyStockSlice(ms []models.DailyStockRecord) []domain.DailyStockRecord {
	ds := make([]domain.DailyStockRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDailyStockRecord(m)
	}
	return ds
}
