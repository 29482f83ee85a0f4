package domain_test

import (
	"testing"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDailyStockRecordArithmetic(t *testing.T) {
	testCases := []struct {
		name      string
		record    domain.DailyStockRecord
		wantTotal int
		wantSold  int
		warning   bool
	}{
		{
			name:      "typical day",
			record:    domain.DailyStockRecord{OpeningStock: 20, AddedStock: 10, ClosingStock: 5},
			wantTotal: 30,
			wantSold:  25,
			warning:   false,
		},
		{
			name:      "no additions",
			record:    domain.DailyStockRecord{OpeningStock: 5, AddedStock: 0, ClosingStock: 3},
			wantTotal: 5,
			wantSold:  2,
			warning:   false,
		},
		{
			name:      "nothing sold",
			record:    domain.DailyStockRecord{OpeningStock: 10, AddedStock: 0, ClosingStock: 10},
			wantTotal: 10,
			wantSold:  0,
			warning:   false,
		},
		{
			name:      "closing exceeds total",
			record:    domain.DailyStockRecord{OpeningStock: 4, AddedStock: 1, ClosingStock: 8},
			wantTotal: 5,
			wantSold:  -3,
			warning:   true,
		},
		{
			name:      "all zero",
			record:    domain.DailyStockRecord{},
			wantTotal: 0,
			wantSold:  0,
			warning:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantTotal, tc.record.TotalStock())
			assert.Equal(t, tc.wantSold, tc.record.SoldUnits())
			assert.Equal(t, tc.warning, tc.record.HasDataQualityWarning())
		})
	}
}

func TestDailyStockRecordRevenue(t *testing.T) {
	recordA := domain.DailyStockRecord{OpeningStock: 20, AddedStock: 10, ClosingStock: 5}
	recordB := domain.DailyStockRecord{OpeningStock: 5, AddedStock: 0, ClosingStock: 3}

	revenueA := recordA.Revenue(decimal.NewFromInt(20))
	revenueB := recordB.Revenue(decimal.NewFromInt(50))

	assert.Equal(t, "500", revenueA.String())
	assert.Equal(t, "100", revenueB.String())
}

func TestDailyStockRecordRevenueNegativeSold(t *testing.T) {
	record := domain.DailyStockRecord{OpeningStock: 2, AddedStock: 0, ClosingStock: 5}

	revenue := record.Revenue(decimal.NewFromInt(100))

	assert.Equal(t, "-300", revenue.String())
	assert.True(t, record.HasDataQualityWarning())
}

func TestStockFieldIsValid(t *testing.T) {
	assert.True(t, domain.FieldOpeningStock.IsValid())
	assert.True(t, domain.FieldAddedStock.IsValid())
	assert.True(t, domain.FieldClosingStock.IsValid())
	assert.False(t, domain.StockField("status").IsValid())
	assert.False(t, domain.StockField("").IsValid())
}
