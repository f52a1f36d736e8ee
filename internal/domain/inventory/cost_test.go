package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/inventory"
)

func TestWeightedAverageCost_Promedia(t *testing.T) {
	// 100 uds a $2 + 50 uds a $5 → (200 + 250) / 150 = $3
	got := inventory.WeightedAverageCost(
		decimal.NewFromInt(100), decimal.NewFromInt(2),
		decimal.NewFromInt(50), decimal.NewFromInt(5),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(3)), "promedio ponderado: %s", got)
}

func TestWeightedAverageCost_SinStockPrevioUsaCostoEntrante(t *testing.T) {
	got := inventory.WeightedAverageCost(
		decimal.Zero, decimal.Zero,
		decimal.NewFromInt(30), decimal.RequireFromString("1.25"),
	)
	assert.True(t, got.Equal(decimal.RequireFromString("1.25")))
}

// Con stock negativo previo (builds con faltante permitido) el total puede
// quedar no positivo; en ese caso el costo entrante manda.
func TestWeightedAverageCost_StockNegativoUsaCostoEntrante(t *testing.T) {
	got := inventory.WeightedAverageCost(
		decimal.NewFromInt(-20), decimal.NewFromInt(2),
		decimal.NewFromInt(10), decimal.NewFromInt(4),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(4)))
}
