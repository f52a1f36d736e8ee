package build

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
)

// Allocation es un consumo asignado a un lote. LotID nil representa consumo
// pooled (componente sin lotes) o el remanente "virtual" cuando los lotes se
// agotan y la política de faltantes ya lo permitió.
type Allocation struct {
	LotID    *string
	Quantity decimal.Decimal
}

// OrderFEFO ordena lotes para consumo First-Expiry-First-Out: vencimiento
// ascendente, lotes sin vencimiento al final, número de lote como desempate.
func OrderFEFO(lots []*entity.LotAvailability) []*entity.LotAvailability {
	ordered := make([]*entity.LotAvailability, len(lots))
	copy(ordered, lots)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		switch {
		case a.ExpiryDate == nil && b.ExpiryDate == nil:
			return a.LotNumber < b.LotNumber
		case a.ExpiryDate == nil:
			return false
		case b.ExpiryDate == nil:
			return true
		case !a.ExpiryDate.Equal(*b.ExpiryDate):
			return a.ExpiryDate.Before(*b.ExpiryDate)
		default:
			return a.LotNumber < b.LotNumber
		}
	})
	return ordered
}

// AllocateFEFO reparte required entre los lotes en orden FEFO, consumiendo
// min(restante, saldo del lote) de cada uno. Solo participan lotes con saldo
// positivo. Si los lotes se agotan, el remanente sale como asignación con
// LotID nil (empuja el pool a negativo; el caller ya validó la política de
// faltantes). Las cantidades devueltas suman exactamente required.
func AllocateFEFO(lots []*entity.LotAvailability, required decimal.Decimal) []Allocation {
	remaining := required
	var allocations []Allocation
	for _, lot := range OrderFEFO(lots) {
		if !remaining.IsPositive() {
			break
		}
		if !lot.Quantity.IsPositive() {
			continue
		}
		take := decimal.Min(remaining, lot.Quantity)
		lotID := lot.LotID
		allocations = append(allocations, Allocation{LotID: &lotID, Quantity: take})
		remaining = remaining.Sub(take)
	}
	if remaining.IsPositive() {
		allocations = append(allocations, Allocation{LotID: nil, Quantity: remaining})
	}
	return allocations
}

// Sum devuelve la cantidad total de una lista de asignaciones.
func Sum(allocations []Allocation) decimal.Decimal {
	var total decimal.Decimal
	for _, a := range allocations {
		total = total.Add(a.Quantity)
	}
	return total
}
