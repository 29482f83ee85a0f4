package mapping

import (
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/models"
)

// ToModelProduct converts a domain product to its database model.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:    d.ProductID,
		Name:         d.Name,
		Category:     d.Category,
		SellingPrice: d.SellingPrice,
		Active:       d.Active,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a database model product to its domain form.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:    m.ProductID,
		Name:         m.Name,
		Category:     m.Category,
		SellingPrice: m.SellingPrice,
		Active:       m.Active,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model products.
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
