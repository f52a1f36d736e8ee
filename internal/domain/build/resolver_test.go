package build_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/build"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func version(id string, start time.Time, end *time.Time, createdAt time.Time) *entity.BOMVersion {
	return &entity.BOMVersion{
		ID:                 id,
		SKUID:              "sku-1",
		VersionName:        id,
		EffectiveStartDate: start,
		EffectiveEndDate:   end,
		IsActive:           true,
		CreatedAt:          createdAt,
	}
}

func TestCovers_IntervaloAbierto(t *testing.T) {
	v := version("v1", date(2026, 1, 1), nil, date(2026, 1, 1))

	assert.True(t, build.Covers(v, date(2026, 1, 1)), "el día de inicio está cubierto")
	assert.True(t, build.Covers(v, date(2030, 12, 31)), "sin fecha de fin cubre cualquier fecha futura")
	assert.False(t, build.Covers(v, date(2025, 12, 31)), "antes del inicio no está cubierto")
}

func TestCovers_FechaDeFinInclusiva(t *testing.T) {
	v := version("v1", date(2026, 1, 1), datePtr(2026, 6, 30), date(2026, 1, 1))

	assert.True(t, build.Covers(v, date(2026, 6, 30)), "la fecha de fin es inclusiva")
	assert.False(t, build.Covers(v, date(2026, 7, 1)), "después del fin no está cubierto")
}

// Un build con fecha retroactiva usa la versión vigente a ESA fecha, no la
// actual: la receta vieja con la fecha vieja, la nueva con la fecha de hoy.
func TestResolveEffectiveVersion_FechaRetroactivaUsaRecetaVieja(t *testing.T) {
	vieja := version("vieja", date(2026, 1, 1), datePtr(2026, 8, 8), date(2026, 1, 1))
	nueva := version("nueva", date(2026, 8, 9), nil, date(2026, 8, 9))
	versions := []*entity.BOMVersion{nueva, vieja}

	hace20dias := date(2026, 8, 5)
	hoy := date(2026, 8, 25)

	require.NotNil(t, build.ResolveEffectiveVersion(versions, hace20dias))
	assert.Equal(t, "vieja", build.ResolveEffectiveVersion(versions, hace20dias).ID,
		"un build fechado hace 20 días debe usar la receta vigente entonces")
	assert.Equal(t, "nueva", build.ResolveEffectiveVersion(versions, hoy).ID,
		"un build fechado hoy debe usar la receta nueva")
}

func TestResolveEffectiveVersion_SinCandidatasDevuelveNil(t *testing.T) {
	v := version("v1", date(2026, 5, 1), nil, date(2026, 5, 1))

	got := build.ResolveEffectiveVersion([]*entity.BOMVersion{v}, date(2026, 4, 30))
	assert.Nil(t, got, "sin versión que cubra la fecha no hay resolución")
}

// Con intervalos solapados gana la versión con inicio más reciente.
func TestResolveEffectiveVersion_SolapadasGanaInicioMasReciente(t *testing.T) {
	amplia := version("amplia", date(2026, 1, 1), nil, date(2026, 1, 1))
	reciente := version("reciente", date(2026, 6, 1), nil, date(2026, 6, 1))

	got := build.ResolveEffectiveVersion([]*entity.BOMVersion{amplia, reciente}, date(2026, 7, 1))
	require.NotNil(t, got)
	assert.Equal(t, "reciente", got.ID)
}

// A igual fecha de inicio, gana la creada más recientemente.
func TestResolveEffectiveVersion_MismoInicioGanaCreatedAtMayor(t *testing.T) {
	primera := version("primera", date(2026, 6, 1), nil, date(2026, 6, 1))
	segunda := version("segunda", date(2026, 6, 1), nil, date(2026, 6, 2))

	got := build.ResolveEffectiveVersion([]*entity.BOMVersion{primera, segunda}, date(2026, 7, 1))
	require.NotNil(t, got)
	assert.Equal(t, "segunda", got.ID, "a igual inicio gana la versión creada después")
}

// La resolución es determinista: mismo input, mismo resultado, sin importar
// el orden de entrada.
func TestResolveEffectiveVersion_Determinista(t *testing.T) {
	a := version("a", date(2026, 6, 1), nil, date(2026, 6, 1))
	b := version("b", date(2026, 6, 1), nil, date(2026, 6, 2))
	c := version("c", date(2026, 3, 1), nil, date(2026, 3, 1))

	got1 := build.ResolveEffectiveVersion([]*entity.BOMVersion{a, b, c}, date(2026, 7, 1))
	got2 := build.ResolveEffectiveVersion([]*entity.BOMVersion{c, b, a}, date(2026, 7, 1))
	require.NotNil(t, got1)
	require.NotNil(t, got2)
	assert.Equal(t, got1.ID, got2.ID)
}
