package mapping

import (
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/models"
)

// ToDomainInventoryRow converts a database model inventory row to its domain form.
func ToDomainInventoryRow(m models.InventoryRow) domain.InventoryRow {
	return domain.InventoryRow{
		InventoryID:       m.InventoryID,
		ProductID:         m.ProductID,
		Quantity:          m.Quantity,
		LowStockThreshold: m.LowStockThreshold,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ToDomainInventorySlice converts a slice of model inventory rows.
func ToDomainInventorySlice(ms []models.InventoryRow) []domain.InventoryRow {
	ds := make([]domain.InventoryRow, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInventoryRow(m)
	}
	return ds
}
