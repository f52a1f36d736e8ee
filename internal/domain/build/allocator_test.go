package build_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/build"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
)

func lot(id, number string, expiry *time.Time, qty int64) *entity.LotAvailability {
	return &entity.LotAvailability{
		LotID:      id,
		LotNumber:  number,
		ExpiryDate: expiry,
		Quantity:   decimal.NewFromInt(qty),
	}
}

func TestOrderFEFO_VencimientoAscendenteNulosAlFinal(t *testing.T) {
	lots := []*entity.LotAvailability{
		lot("l3", "L-003", nil, 10),
		lot("l2", "L-002", datePtr(2026, 12, 1), 10),
		lot("l1", "L-001", datePtr(2026, 9, 1), 10),
	}

	ordered := build.OrderFEFO(lots)
	require.Len(t, ordered, 3)
	assert.Equal(t, "l1", ordered[0].LotID, "vence primero, consume primero")
	assert.Equal(t, "l2", ordered[1].LotID)
	assert.Equal(t, "l3", ordered[2].LotID, "sin vencimiento va al final")
}

func TestOrderFEFO_DesempatePorNumeroDeLote(t *testing.T) {
	mismo := datePtr(2026, 9, 1)
	lots := []*entity.LotAvailability{
		lot("lb", "L-B", mismo, 10),
		lot("la", "L-A", mismo, 10),
	}

	ordered := build.OrderFEFO(lots)
	assert.Equal(t, "la", ordered[0].LotID, "a igual vencimiento desempata el número de lote")
}

// No muta el slice de entrada.
func TestOrderFEFO_NoMutaEntrada(t *testing.T) {
	lots := []*entity.LotAvailability{
		lot("l2", "L-002", datePtr(2026, 12, 1), 10),
		lot("l1", "L-001", datePtr(2026, 9, 1), 10),
	}
	_ = build.OrderFEFO(lots)
	assert.Equal(t, "l2", lots[0].LotID)
}

func TestAllocateFEFO_RepartoEntreDosLotes(t *testing.T) {
	lots := []*entity.LotAvailability{
		lot("l1", "L-001", datePtr(2026, 9, 1), 15),
		lot("l2", "L-002", datePtr(2026, 12, 1), 30),
	}

	allocs := build.AllocateFEFO(lots, decimal.NewFromInt(20))
	require.Len(t, allocs, 2)

	require.NotNil(t, allocs[0].LotID)
	assert.Equal(t, "l1", *allocs[0].LotID)
	assert.True(t, allocs[0].Quantity.Equal(decimal.NewFromInt(15)), "agota el lote que vence primero")

	require.NotNil(t, allocs[1].LotID)
	assert.Equal(t, "l2", *allocs[1].LotID)
	assert.True(t, allocs[1].Quantity.Equal(decimal.NewFromInt(5)), "el resto sale del siguiente lote")

	assert.True(t, build.Sum(allocs).Equal(decimal.NewFromInt(20)), "las asignaciones suman lo requerido")
}

func TestAllocateFEFO_IgnoraLotesSinSaldo(t *testing.T) {
	lots := []*entity.LotAvailability{
		lot("vacio", "L-000", datePtr(2026, 8, 1), 0),
		lot("l1", "L-001", datePtr(2026, 9, 1), 25),
	}

	allocs := build.AllocateFEFO(lots, decimal.NewFromInt(10))
	require.Len(t, allocs, 1)
	require.NotNil(t, allocs[0].LotID)
	assert.Equal(t, "l1", *allocs[0].LotID)
}

// Si los lotes se agotan el remanente sale con LotID nil: el caller ya validó
// la política de faltantes y el pool queda en negativo.
func TestAllocateFEFO_FaltanteGeneraAsignacionVirtual(t *testing.T) {
	lots := []*entity.LotAvailability{
		lot("l1", "L-001", datePtr(2026, 9, 1), 8),
	}

	allocs := build.AllocateFEFO(lots, decimal.NewFromInt(12))
	require.Len(t, allocs, 2)
	assert.Nil(t, allocs[1].LotID, "el remanente va sin lote")
	assert.True(t, allocs[1].Quantity.Equal(decimal.NewFromInt(4)))
	assert.True(t, build.Sum(allocs).Equal(decimal.NewFromInt(12)))
}

func TestAllocateFEFO_SinLotesTodoEsVirtual(t *testing.T) {
	allocs := build.AllocateFEFO(nil, decimal.NewFromInt(7))
	require.Len(t, allocs, 1)
	assert.Nil(t, allocs[0].LotID)
	assert.True(t, allocs[0].Quantity.Equal(decimal.NewFromInt(7)))
}
