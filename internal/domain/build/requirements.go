package build

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
)

// Explode expande las líneas de un BOM en requerimientos por componente para
// unitsToBuild unidades. Un BOM puede referenciar el mismo componente en
// varias líneas; se suman.
func Explode(lines []entity.BOMLine, unitsToBuild int64) map[string]decimal.Decimal {
	units := decimal.NewFromInt(unitsToBuild)
	reqs := make(map[string]decimal.Decimal, len(lines))
	for _, line := range lines {
		reqs[line.ComponentID] = reqs[line.ComponentID].Add(line.QuantityPerUnit.Mul(units))
	}
	return reqs
}

// CostSnapshot calcula el costo BOM por unidad y total al momento de la
// resolución: unitCost = Σ(qtyPerUnit × costPerUnit del componente). Queda
// snapshoteado inmutablemente en la transacción; cambios posteriores al costo
// del componente no lo afectan.
func CostSnapshot(lines []entity.BOMLine, costs map[string]decimal.Decimal, unitsToBuild int64) (unitCost, totalCost decimal.Decimal) {
	for _, line := range lines {
		unitCost = unitCost.Add(line.QuantityPerUnit.Mul(costs[line.ComponentID]))
	}
	totalCost = unitCost.Mul(decimal.NewFromInt(unitsToBuild))
	return unitCost, totalCost
}

// SortedComponentIDs devuelve los IDs de un mapa de requerimientos en orden
// estable. Los saldos se bloquean en este orden para que builds concurrentes
// sobre componentes compartidos no se interbloqueen.
func SortedComponentIDs(reqs map[string]decimal.Decimal) []string {
	ids := make([]string, 0, len(reqs))
	for id := range reqs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
