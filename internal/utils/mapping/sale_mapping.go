package mapping

import (
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/models"
)

// ToModelSale converts a domain sale to its database model.
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:        d.SaleID,
		ProductID:     d.ProductID,
		ProductName:   d.ProductName,
		Quantity:      d.Quantity,
		UnitPrice:     d.UnitPrice,
		Total:         d.Total,
		PaymentMethod: string(d.PaymentMethod),
		SoldBy:        d.SoldBy,
		SoldAt:        d.SoldAt,
	}
}

// ToDomainSale converts a database model sale to its domain form.
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:        m.SaleID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		Total:         m.Total,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		SoldBy:        m.SoldBy,
		SoldAt:        m.SoldAt,
	}
}

// ToDomainSaleSlice converts a slice of model sales.
func ToDomainSaleSlice(ms []models.Sale) []domain.Sale {
	ds := make([]domain.Sale, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSale(m)
	}
	return ds
}
