// Package build contiene la lógica pura del motor de builds: resolución de
// versión de BOM vigente, explosión de requerimientos y asignación FEFO de
// lotes. Sin I/O; todo testeable de forma aislada.
package build

import (
	"sort"
	"time"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
)

// Covers indica si el intervalo de vigencia de la versión cubre la fecha asOf
// (start <= asOf y end == nil o end >= asOf). Fechas a medianoche, sin hora.
func Covers(v *entity.BOMVersion, asOf time.Time) bool {
	if v.EffectiveStartDate.After(asOf) {
		return false
	}
	return v.EffectiveEndDate == nil || !v.EffectiveEndDate.Before(asOf)
}

// ResolveEffectiveVersion selecciona la única versión que gobierna la fecha
// asOf. El modelo permite intervalos solapados, así que el desempate debe ser
// determinista: mayor EffectiveStartDate primero y, a igual inicio, mayor
// CreatedAt (la creada más recientemente gana). Devuelve nil si ninguna
// candidata cubre la fecha.
func ResolveEffectiveVersion(versions []*entity.BOMVersion, asOf time.Time) *entity.BOMVersion {
	candidates := make([]*entity.BOMVersion, 0, len(versions))
	for _, v := range versions {
		if Covers(v, asOf) {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if !a.EffectiveStartDate.Equal(b.EffectiveStartDate) {
			return a.EffectiveStartDate.After(b.EffectiveStartDate)
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return candidates[0]
}
