package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/dto"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/usecase"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

const (
	empresaID = "empresa-1"
	otraID    = "empresa-2"
	skuID     = "sku-widget"
	compID    = "comp-tornillo"
)

type fakeSKURepo struct {
	repository.SKURepository
	skus map[string]*entity.SKU
}

func (r *fakeSKURepo) GetByID(id string) (*entity.SKU, error) { return r.skus[id], nil }

type fakeComponentRepo struct {
	repository.ComponentRepository
	components map[string]*entity.Component
}

func (r *fakeComponentRepo) GetByID(id string) (*entity.Component, error) {
	return r.components[id], nil
}

type fakeBOMRepo struct {
	repository.BOMVersionRepository
	versions map[string]*entity.BOMVersion
	lines    map[string][]entity.BOMLine
}

func (r *fakeBOMRepo) Create(v *entity.BOMVersion, lines []entity.BOMLine) error {
	r.versions[v.ID] = v
	r.lines[v.ID] = lines
	return nil
}

func (r *fakeBOMRepo) GetByID(id string) (*entity.BOMVersion, error) { return r.versions[id], nil }

func (r *fakeBOMRepo) ListBySKU(skuID string) ([]*entity.BOMVersion, error) {
	var out []*entity.BOMVersion
	for _, v := range r.versions {
		if v.SKUID == skuID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeBOMRepo) LinesByVersion(versionID string) ([]entity.BOMLine, error) {
	return r.lines[versionID], nil
}

func (r *fakeBOMRepo) EndDate(versionID string, end time.Time) error {
	v, ok := r.versions[versionID]
	if !ok {
		return domain.ErrNotFound
	}
	v.EffectiveEndDate = &end
	return nil
}

func (r *fakeBOMRepo) SetActive(versionID string, active bool) error {
	v, ok := r.versions[versionID]
	if !ok {
		return domain.ErrNotFound
	}
	v.IsActive = active
	return nil
}

type bomFixture struct {
	skus       *fakeSKURepo
	components *fakeComponentRepo
	boms       *fakeBOMRepo
	uc         *usecase.BOMUseCase
}

func newBOMFixture() *bomFixture {
	fx := &bomFixture{
		skus:       &fakeSKURepo{skus: map[string]*entity.SKU{}},
		components: &fakeComponentRepo{components: map[string]*entity.Component{}},
		boms:       &fakeBOMRepo{versions: map[string]*entity.BOMVersion{}, lines: map[string][]entity.BOMLine{}},
	}
	fx.skus.skus[skuID] = &entity.SKU{ID: skuID, CompanyID: empresaID, Code: "WID-01", Name: "Widget"}
	fx.components.components[compID] = &entity.Component{ID: compID, CompanyID: empresaID, SKUCode: "TOR-01", Name: "Tornillo"}
	fx.uc = usecase.NewBOMUseCase(fx.skus, fx.boms, fx.components)
	return fx
}

func baseRequest() dto.CreateBOMVersionRequest {
	return dto.CreateBOMVersionRequest{
		VersionName:        "v1",
		EffectiveStartDate: "2026-01-01",
		Lines: []dto.BOMLineRequest{
			{ComponentID: compID, QuantityPerUnit: decimal.NewFromInt(2)},
		},
	}
}

func TestCreateVersion_CreaVersionActiva(t *testing.T) {
	fx := newBOMFixture()

	out, err := fx.uc.CreateVersion(empresaID, skuID, baseRequest())
	require.NoError(t, err)

	assert.Equal(t, "v1", out.VersionName)
	assert.Equal(t, "2026-01-01", out.EffectiveStartDate)
	assert.Nil(t, out.EffectiveEndDate)
	assert.True(t, out.IsActive)
	require.Len(t, out.Lines, 1)
	assert.True(t, out.Lines[0].QuantityPerUnit.Equal(decimal.NewFromInt(2)))
}

// Supersede end-datea la versión abierta previa al día anterior del inicio de
// la nueva y la desactiva.
func TestCreateVersion_SupersedeEndDateaLaPrevia(t *testing.T) {
	fx := newBOMFixture()

	v1, err := fx.uc.CreateVersion(empresaID, skuID, baseRequest())
	require.NoError(t, err)

	req := baseRequest()
	req.VersionName = "v2"
	req.EffectiveStartDate = "2026-06-01"
	req.Supersede = true
	v2, err := fx.uc.CreateVersion(empresaID, skuID, req)
	require.NoError(t, err)

	previa := fx.boms.versions[v1.ID]
	require.NotNil(t, previa.EffectiveEndDate)
	assert.Equal(t, "2026-05-31", previa.EffectiveEndDate.Format("2006-01-02"))
	assert.False(t, previa.IsActive)

	nueva := fx.boms.versions[v2.ID]
	assert.True(t, nueva.IsActive)
	assert.Nil(t, nueva.EffectiveEndDate)
}

// Sin supersede las versiones coexisten; el desempate queda para build time.
func TestCreateVersion_SinSupersedeNoTocaLaPrevia(t *testing.T) {
	fx := newBOMFixture()

	v1, err := fx.uc.CreateVersion(empresaID, skuID, baseRequest())
	require.NoError(t, err)

	req := baseRequest()
	req.VersionName = "v2"
	req.EffectiveStartDate = "2026-06-01"
	_, err = fx.uc.CreateVersion(empresaID, skuID, req)
	require.NoError(t, err)

	previa := fx.boms.versions[v1.ID]
	assert.Nil(t, previa.EffectiveEndDate)
	assert.True(t, previa.IsActive)
}

func TestCreateVersion_ComponenteDeOtraEmpresa(t *testing.T) {
	fx := newBOMFixture()
	fx.components.components[compID].CompanyID = otraID

	_, err := fx.uc.CreateVersion(empresaID, skuID, baseRequest())
	assert.ErrorIs(t, err, domain.ErrNotFoundOrAccessDenied)
	assert.Empty(t, fx.boms.versions)
}

func TestCreateVersion_SKUDeOtraEmpresa(t *testing.T) {
	fx := newBOMFixture()
	fx.skus.skus[skuID].CompanyID = otraID

	_, err := fx.uc.CreateVersion(empresaID, skuID, baseRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateVersion_Validaciones(t *testing.T) {
	fx := newBOMFixture()

	casos := map[string]func(*dto.CreateBOMVersionRequest){
		"sin nombre":                  func(r *dto.CreateBOMVersionRequest) { r.VersionName = "" },
		"sin lineas":                  func(r *dto.CreateBOMVersionRequest) { r.Lines = nil },
		"fecha de inicio invalida":    func(r *dto.CreateBOMVersionRequest) { r.EffectiveStartDate = "01/01/2026" },
		"fin anterior al inicio":      func(r *dto.CreateBOMVersionRequest) { r.EffectiveEndDate = "2025-12-31" },
		"cantidad por unidad en cero": func(r *dto.CreateBOMVersionRequest) { r.Lines[0].QuantityPerUnit = decimal.Zero },
	}
	for nombre, mutar := range casos {
		t.Run(nombre, func(t *testing.T) {
			req := baseRequest()
			mutar(&req)
			_, err := fx.uc.CreateVersion(empresaID, skuID, req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestGetByID_VersionDeOtraEmpresaEsInvisible(t *testing.T) {
	fx := newBOMFixture()
	out, err := fx.uc.CreateVersion(empresaID, skuID, baseRequest())
	require.NoError(t, err)

	got, err := fx.uc.GetByID(otraID, out.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "cross-tenant responde igual que inexistente")
}
