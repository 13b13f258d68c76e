package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateRatios(t *testing.T) {
	t.Run("Razões sobre a venda bruta", func(t *testing.T) {
		ratios := CalculateRatios(decimal.NewFromInt(1000), decimal.NewFromInt(100), decimal.NewFromInt(200))

		assert.Equal(t, "10.00", ratios.ACoS.Value.StringFixed(2))
		assert.Equal(t, "20.00", ratios.NetMargin.Value.StringFixed(2))
		assert.True(t, ratios.ACoS.Equal(ratios.TACoS))
	})

	t.Run("Lucro negativo gera margem negativa", func(t *testing.T) {
		ratios := CalculateRatios(decimal.NewFromInt(300), decimal.NewFromInt(100), decimal.NewFromInt(-100))
		assert.Equal(t, "-33.33", ratios.NetMargin.Value.StringFixed(2))
	})

	t.Run("Venda bruta zero é indefinida", func(t *testing.T) {
		ratios := CalculateRatios(decimal.Zero, decimal.NewFromInt(10), decimal.NewFromInt(-10))

		assert.Equal(t, Undefined, ratios.ACoS)
		assert.False(t, ratios.TACoS.Valid)
		assert.False(t, ratios.NetMargin.Valid)
	})
}

func TestPercentage_Equal(t *testing.T) {
	ten := NewPercentage(decimal.NewFromInt(1), decimal.NewFromInt(10))

	assert.True(t, ten.Equal(Percentage{Value: decimal.RequireFromString("10.00"), Valid: true}))
	assert.False(t, ten.Equal(Undefined))
	assert.True(t, Undefined.Equal(NewPercentage(decimal.NewFromInt(1), decimal.Zero)))
}

func TestSponsoredProductRecord_Month(t *testing.T) {
	month, fallback, ok := SponsoredProductRecord{StartDate: "2024-05-17"}.Month()
	assert.Equal(t, "2024-05", month)
	assert.False(t, fallback)
	assert.True(t, ok)

	_, _, ok = SponsoredProductRecord{}.Month()
	assert.False(t, ok)
}
