package build_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbuild "github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/build"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/build"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture en memoria: repos fake + TxRunner con rollback simulado
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	companies    map[string]*entity.Company
	skus         map[string]*entity.SKU
	versions     map[string]*entity.BOMVersion
	linesByVer   map[string][]entity.BOMLine
	components   map[string]*entity.Component
	locations    map[string]*entity.Location
	lots         map[string]*entity.Lot
	lotBalances  map[string]decimal.Decimal // lotID → saldo
	lotExpiry    map[string]*time.Time
	balances     map[string]decimal.Decimal // componentID|locationID → saldo
	transactions []*entity.Transaction
}

func newFixture() *fixture {
	return &fixture{
		companies:   map[string]*entity.Company{},
		skus:        map[string]*entity.SKU{},
		versions:    map[string]*entity.BOMVersion{},
		linesByVer:  map[string][]entity.BOMLine{},
		components:  map[string]*entity.Component{},
		locations:   map[string]*entity.Location{},
		lots:        map[string]*entity.Lot{},
		lotBalances: map[string]decimal.Decimal{},
		lotExpiry:   map[string]*time.Time{},
		balances:    map[string]decimal.Decimal{},
	}
}

func balKey(componentID, locationID string) string { return componentID + "|" + locationID }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// fakeTxRunner simula la semántica todo-o-nada: snapshotea el estado mutable
// antes de fn y lo restaura si fn falla.
type fakeTxRunner struct {
	fx *fixture
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.TransactionRepository, repository.InventoryBalanceRepository, repository.LotRepository) error) error {
	balancesBefore := make(map[string]decimal.Decimal, len(r.fx.balances))
	for k, v := range r.fx.balances {
		balancesBefore[k] = v
	}
	lotBalancesBefore := make(map[string]decimal.Decimal, len(r.fx.lotBalances))
	for k, v := range r.fx.lotBalances {
		lotBalancesBefore[k] = v
	}
	txCountBefore := len(r.fx.transactions)

	err := fn(&fakeTxRepo{r.fx}, &fakeBalanceRepo{r.fx}, &fakeLotRepo{r.fx})
	if err != nil {
		r.fx.balances = balancesBefore
		r.fx.lotBalances = lotBalancesBefore
		r.fx.transactions = r.fx.transactions[:txCountBefore]
	}
	return err
}

// Los fakes embeben la interfaz: cualquier método no implementado que el caso
// de uso llegara a llamar revienta el test, que es lo que queremos.

type fakeCompanyRepo struct {
	repository.CompanyRepository
	fx *fixture
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) { return r.fx.companies[id], nil }

type fakeSKURepo struct {
	repository.SKURepository
	fx *fixture
}

func (r *fakeSKURepo) GetByID(id string) (*entity.SKU, error) { return r.fx.skus[id], nil }

type fakeBOMRepo struct {
	repository.BOMVersionRepository
	fx *fixture
}

func (r *fakeBOMRepo) GetByID(id string) (*entity.BOMVersion, error) { return r.fx.versions[id], nil }

func (r *fakeBOMRepo) ListBySKU(skuID string) ([]*entity.BOMVersion, error) {
	var out []*entity.BOMVersion
	for _, v := range r.fx.versions {
		if v.SKUID == skuID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeBOMRepo) LinesByVersion(versionID string) ([]entity.BOMLine, error) {
	return r.fx.linesByVer[versionID], nil
}

type fakeComponentRepo struct {
	repository.ComponentRepository
	fx *fixture
}

func (r *fakeComponentRepo) GetByIDs(ids []string) (map[string]*entity.Component, error) {
	out := make(map[string]*entity.Component, len(ids))
	for _, id := range ids {
		if c, ok := r.fx.components[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

type fakeLocationRepo struct {
	repository.LocationRepository
	fx *fixture
}

func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) { return r.fx.locations[id], nil }

func (r *fakeLocationRepo) GetDefaultByCompany(companyID string) (*entity.Location, error) {
	for _, l := range r.fx.locations {
		if l.CompanyID == companyID && l.IsDefault {
			return l, nil
		}
	}
	return nil, nil
}

type fakeLotRepo struct {
	fx *fixture
}

var _ repository.LotRepository = (*fakeLotRepo)(nil)

func (r *fakeLotRepo) CreateWithBalance(lot *entity.Lot, qty decimal.Decimal) error {
	r.fx.lots[lot.ID] = lot
	r.fx.lotBalances[lot.ID] = qty
	r.fx.lotExpiry[lot.ID] = lot.ExpiryDate
	return nil
}

func (r *fakeLotRepo) GetByID(id string) (*entity.Lot, error) { return r.fx.lots[id], nil }

func (r *fakeLotRepo) GetByComponentAndNumber(componentID, lotNumber string) (*entity.Lot, error) {
	for _, l := range r.fx.lots {
		if l.ComponentID == componentID && l.LotNumber == lotNumber {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLotRepo) HasLots(componentID string) (bool, error) {
	for _, l := range r.fx.lots {
		if l.ComponentID == componentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLotRepo) ListByComponent(componentID string) ([]*entity.LotAvailability, error) {
	var out []*entity.LotAvailability
	for id, l := range r.fx.lots {
		if l.ComponentID != componentID {
			continue
		}
		out = append(out, &entity.LotAvailability{
			LotID:      id,
			LotNumber:  l.LotNumber,
			ExpiryDate: r.fx.lotExpiry[id],
			Quantity:   r.fx.lotBalances[id],
		})
	}
	return build.OrderFEFO(out), nil
}

func (r *fakeLotRepo) ListForUpdateByComponent(componentID string) ([]*entity.LotAvailability, error) {
	return r.ListByComponent(componentID)
}

func (r *fakeLotRepo) AddReceipt(lotID string, qty decimal.Decimal) error {
	return r.AdjustBalance(lotID, qty)
}

func (r *fakeLotRepo) AdjustBalance(lotID string, delta decimal.Decimal) error {
	if _, ok := r.fx.lots[lotID]; !ok {
		return domain.ErrNotFound
	}
	r.fx.lotBalances[lotID] = r.fx.lotBalances[lotID].Add(delta)
	return nil
}

type fakeBalanceRepo struct {
	fx *fixture
}

var _ repository.InventoryBalanceRepository = (*fakeBalanceRepo)(nil)

func (r *fakeBalanceRepo) Get(componentID, locationID string) (*entity.InventoryBalance, error) {
	return r.GetForUpdate(componentID, locationID)
}

func (r *fakeBalanceRepo) GetForUpdate(componentID, locationID string) (*entity.InventoryBalance, error) {
	return &entity.InventoryBalance{
		ComponentID: componentID,
		LocationID:  locationID,
		Quantity:    r.fx.balances[balKey(componentID, locationID)],
	}, nil
}

func (r *fakeBalanceRepo) ApplyDelta(componentID, locationID string, delta decimal.Decimal) error {
	k := balKey(componentID, locationID)
	r.fx.balances[k] = r.fx.balances[k].Add(delta)
	return nil
}

func (r *fakeBalanceRepo) ListByCompany(string) ([]*entity.InventoryBalance, error) {
	return nil, nil
}

type fakeTxRepo struct {
	fx *fixture
}

var _ repository.TransactionRepository = (*fakeTxRepo)(nil)

func (r *fakeTxRepo) Create(tx *entity.Transaction) error {
	r.fx.transactions = append(r.fx.transactions, tx)
	return nil
}

func (r *fakeTxRepo) GetByID(string) (*entity.Transaction, error) { return nil, nil }
func (r *fakeTxRepo) ListByCompany(string, *time.Time, *time.Time, int, int) ([]*entity.Transaction, error) {
	return nil, nil
}
func (r *fakeTxRepo) CountByCompany(string) (int64, error) { return 0, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base
// ──────────────────────────────────────────────────────────────────────────────

const (
	empresaID  = "empresa-1"
	otraID     = "empresa-2"
	usuarioID  = "user-1"
	bodegaID   = "bodega-1"
	skuID      = "sku-widget"
	versionID  = "bom-v1"
	tornilloID = "comp-tornillo"
	harinaID   = "comp-harina"
)

// seed arma una empresa con su bodega por defecto, un SKU con BOM vigente de
// una línea (2 tornillos por unidad) y 100 tornillos pooled en la bodega.
func seed(allowNegative bool) *fixture {
	fx := newFixture()
	fx.companies[empresaID] = &entity.Company{ID: empresaID, Name: "Acme", Status: "active", AllowNegativeInventory: allowNegative}
	fx.companies[otraID] = &entity.Company{ID: otraID, Name: "Otra", Status: "active"}
	fx.locations[bodegaID] = &entity.Location{ID: bodegaID, CompanyID: empresaID, Name: "Bodega principal", Type: entity.LocationTypeWarehouse, IsDefault: true}
	fx.skus[skuID] = &entity.SKU{ID: skuID, CompanyID: empresaID, Code: "WIDGET", Name: "Widget", Status: "active"}
	fx.versions[versionID] = &entity.BOMVersion{
		ID: versionID, SKUID: skuID, VersionName: "v1",
		EffectiveStartDate: date(2026, 1, 1), IsActive: true, CreatedAt: date(2026, 1, 1),
	}
	fx.linesByVer[versionID] = []entity.BOMLine{
		{ID: "line-1", BOMVersionID: versionID, ComponentID: tornilloID, QuantityPerUnit: decimal.NewFromInt(2)},
	}
	fx.components[tornilloID] = &entity.Component{
		ID: tornilloID, CompanyID: empresaID, SKUCode: "TORN-01", Name: "Tornillo",
		CostPerUnit: decimal.RequireFromString("0.50"),
	}
	fx.balances[balKey(tornilloID, bodegaID)] = decimal.NewFromInt(100)
	return fx
}

func newUseCase(fx *fixture) *appbuild.BuildUseCase {
	return appbuild.NewBuildUseCase(
		&fakeTxRunner{fx},
		&fakeCompanyRepo{fx: fx},
		&fakeSKURepo{fx: fx},
		&fakeBOMRepo{fx: fx},
		&fakeComponentRepo{fx: fx},
		&fakeLocationRepo{fx: fx},
		&fakeLotRepo{fx: fx},
	)
}

func baseInput() appbuild.BuildInput {
	return appbuild.BuildInput{
		CompanyID:      empresaID,
		UserID:         usuarioID,
		SKUID:          skuID,
		UnitsToBuild:   10,
		Date:           date(2026, 8, 25),
		ShortagePolicy: build.ShortageInherit,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Build exitoso: 10 unidades × 2 tornillos = 20 consumidos, saldo 100 → 80,
// una línea negativa pooled, costo snapshoteado.
func TestExecute_BuildExitosoDecrementaSaldo(t *testing.T) {
	fx := seed(false)
	uc := newUseCase(fx)

	result, err := uc.Execute(context.Background(), baseInput())
	require.NoError(t, err)
	require.NotNil(t, result.Transaction)

	assert.False(t, result.Warning)
	assert.Empty(t, result.Shortages)

	tx := result.Transaction
	assert.Equal(t, entity.TxTypeBuild, tx.Type)
	assert.Equal(t, versionID, tx.BOMVersionID)
	assert.Equal(t, int64(10), tx.UnitsBuilt)
	assert.True(t, tx.UnitBomCost.Equal(decimal.NewFromInt(1)), "2 × 0.50 = 1.00 por unidad")
	assert.True(t, tx.TotalBomCost.Equal(decimal.NewFromInt(10)))

	require.Len(t, tx.Lines, 1)
	assert.Equal(t, tornilloID, tx.Lines[0].ComponentID)
	assert.Nil(t, tx.Lines[0].LotID, "componente sin lotes consume pooled")
	assert.True(t, tx.Lines[0].QuantityChange.Equal(decimal.NewFromInt(-20)))

	assert.True(t, fx.balances[balKey(tornilloID, bodegaID)].Equal(decimal.NewFromInt(80)),
		"el saldo materializado queda igual a la suma del ledger")
	assert.Len(t, fx.transactions, 1)
}

// El saldo materializado siempre se mueve por la suma de las líneas escritas.
func TestExecute_SaldoIgualASumaDeLineas(t *testing.T) {
	fx := seed(false)
	uc := newUseCase(fx)

	result, err := uc.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	var sum decimal.Decimal
	for _, line := range result.Transaction.Lines {
		if line.ComponentID == tornilloID {
			sum = sum.Add(line.QuantityChange)
		}
	}
	assert.True(t, fx.balances[balKey(tornilloID, bodegaID)].Equal(decimal.NewFromInt(100).Add(sum)))
}

// Faltante con política block efectiva: error con el detalle de TODOS los
// componentes cortos y cero escrituras.
func TestExecute_FaltanteBloqueadoNoEscribeNada(t *testing.T) {
	fx := seed(false) // empresa no permite negativos
	fx.balances[balKey(tornilloID, bodegaID)] = decimal.NewFromInt(5)
	uc := newUseCase(fx)

	_, err := uc.Execute(context.Background(), baseInput())

	var insufficient *domain.InsufficientInventoryError
	require.ErrorAs(t, err, &insufficient)
	require.Len(t, insufficient.Items, 1)
	item := insufficient.Items[0]
	assert.Equal(t, tornilloID, item.ComponentID)
	assert.True(t, item.Required.Equal(decimal.NewFromInt(20)))
	assert.True(t, item.Available.Equal(decimal.NewFromInt(5)))
	assert.True(t, item.Shortage.Equal(decimal.NewFromInt(15)))

	assert.Empty(t, fx.transactions, "un build fallido no persiste transacción")
	assert.True(t, fx.balances[balKey(tornilloID, bodegaID)].Equal(decimal.NewFromInt(5)),
		"el saldo no se toca")
}

// Con la política allow (o empresa permisiva) el build procede con warning y
// el saldo queda negativo.
func TestExecute_FaltantePermitidoGeneraWarning(t *testing.T) {
	fx := seed(false)
	fx.balances[balKey(tornilloID, bodegaID)] = decimal.NewFromInt(5)
	uc := newUseCase(fx)

	in := baseInput()
	in.ShortagePolicy = build.ShortageAllow
	result, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, result.Warning)
	require.Len(t, result.Shortages, 1)
	assert.True(t, result.Shortages[0].Shortage.Equal(decimal.NewFromInt(15)))
	assert.True(t, fx.balances[balKey(tornilloID, bodegaID)].Equal(decimal.NewFromInt(-15)),
		"el saldo queda negativo, auditable en el ledger")
}

// inherit toma la política de la empresa.
func TestExecute_InheritUsaPoliticaDeEmpresa(t *testing.T) {
	fx := seed(true) // allow_negative_inventory
	fx.balances[balKey(tornilloID, bodegaID)] = decimal.NewFromInt(5)
	uc := newUseCase(fx)

	result, err := uc.Execute(context.Background(), baseInput())
	require.NoError(t, err)
	assert.True(t, result.Warning)
}

// Componente loteado: consumo FEFO repartido entre lotes, decrementando cada
// LotBalance además del saldo del componente.
func TestExecute_ConsumoFEFOEntreLotes(t *testing.T) {
	fx := seed(false)
	fx.lots["lote-a"] = &entity.Lot{ID: "lote-a", ComponentID: tornilloID, LotNumber: "L-A"}
	fx.lotExpiry["lote-a"] = datePtr(2026, 9, 1)
	fx.lotBalances["lote-a"] = decimal.NewFromInt(15)
	fx.lots["lote-b"] = &entity.Lot{ID: "lote-b", ComponentID: tornilloID, LotNumber: "L-B"}
	fx.lotExpiry["lote-b"] = datePtr(2026, 12, 1)
	fx.lotBalances["lote-b"] = decimal.NewFromInt(85)
	uc := newUseCase(fx)

	result, err := uc.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	require.Len(t, result.Transaction.Lines, 2, "una línea por lote consumido")
	assert.True(t, fx.lotBalances["lote-a"].IsZero(), "el que vence primero se agota")
	assert.True(t, fx.lotBalances["lote-b"].Equal(decimal.NewFromInt(80)))
	assert.True(t, fx.balances[balKey(tornilloID, bodegaID)].Equal(decimal.NewFromInt(80)))
}

// El override manual reemplaza por completo la asignación FEFO.
func TestExecute_OverrideManualReemplazaFEFO(t *testing.T) {
	fx := seed(false)
	fx.lots["lote-a"] = &entity.Lot{ID: "lote-a", ComponentID: tornilloID, LotNumber: "L-A"}
	fx.lotExpiry["lote-a"] = datePtr(2026, 9, 1)
	fx.lotBalances["lote-a"] = decimal.NewFromInt(50)
	fx.lots["lote-b"] = &entity.Lot{ID: "lote-b", ComponentID: tornilloID, LotNumber: "L-B"}
	fx.lotExpiry["lote-b"] = datePtr(2026, 12, 1)
	fx.lotBalances["lote-b"] = decimal.NewFromInt(50)
	uc := newUseCase(fx)

	in := baseInput()
	in.LotOverrides = []appbuild.LotOverride{{
		ComponentID: tornilloID,
		Allocations: []appbuild.LotAllocation{{LotID: "lote-b", Quantity: decimal.NewFromInt(20)}},
	}}
	result, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, result.Transaction.Lines, 1)
	require.NotNil(t, result.Transaction.Lines[0].LotID)
	assert.Equal(t, "lote-b", *result.Transaction.Lines[0].LotID,
		"FEFO habría usado lote-a; el override manda")
	assert.True(t, fx.lotBalances["lote-a"].Equal(decimal.NewFromInt(50)))
	assert.True(t, fx.lotBalances["lote-b"].Equal(decimal.NewFromInt(30)))
}

// Un lote de otro componente (p. ej. adivinado de otra empresa) aborta el
// build completo sin consumo parcial.
func TestExecute_OverrideConLoteAjenoRechazado(t *testing.T) {
	fx := seed(false)
	fx.components[harinaID] = &entity.Component{ID: harinaID, CompanyID: otraID, SKUCode: "HAR-01", Name: "Harina"}
	fx.lots["lote-ajeno"] = &entity.Lot{ID: "lote-ajeno", ComponentID: harinaID, LotNumber: "L-X"}
	fx.lotBalances["lote-ajeno"] = decimal.NewFromInt(99)
	uc := newUseCase(fx)

	in := baseInput()
	in.LotOverrides = []appbuild.LotOverride{{
		ComponentID: tornilloID,
		Allocations: []appbuild.LotAllocation{{LotID: "lote-ajeno", Quantity: decimal.NewFromInt(20)}},
	}}
	_, err := uc.Execute(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrNotFoundOrAccessDenied)
	assert.Empty(t, fx.transactions)
	assert.True(t, fx.balances[balKey(tornilloID, bodegaID)].Equal(decimal.NewFromInt(100)))
}

// Override sobre un componente que no está en el BOM resuelto → entrada inválida.
func TestExecute_OverrideComponenteFueraDelBOM(t *testing.T) {
	fx := seed(false)
	fx.lots["lote-a"] = &entity.Lot{ID: "lote-a", ComponentID: tornilloID, LotNumber: "L-A"}
	fx.lotBalances["lote-a"] = decimal.NewFromInt(50)
	uc := newUseCase(fx)

	in := baseInput()
	in.LotOverrides = []appbuild.LotOverride{{
		ComponentID: "comp-inexistente",
		Allocations: []appbuild.LotAllocation{{LotID: "lote-a", Quantity: decimal.NewFromInt(1)}},
	}}
	_, err := uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// SKU de otra empresa: indistinguible de inexistente.
func TestExecute_SKUDeOtraEmpresaEsNotFound(t *testing.T) {
	fx := seed(false)
	fx.skus[skuID].CompanyID = otraID
	uc := newUseCase(fx)

	_, err := uc.Execute(context.Background(), baseInput())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// bom_version_id explícito de otro SKU → rechazado.
func TestExecute_BOMVersionDeOtroSKURechazada(t *testing.T) {
	fx := seed(false)
	fx.skus["sku-otro"] = &entity.SKU{ID: "sku-otro", CompanyID: empresaID, Code: "OTRO"}
	fx.versions["bom-ajena"] = &entity.BOMVersion{
		ID: "bom-ajena", SKUID: "sku-otro",
		EffectiveStartDate: date(2026, 1, 1), CreatedAt: date(2026, 1, 1),
	}
	uc := newUseCase(fx)

	in := baseInput()
	in.BOMVersionID = "bom-ajena"
	_, err := uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFoundOrAccessDenied)
}

// bom_version_id explícito gana aunque no esté vigente a la fecha del build.
func TestExecute_BOMVersionExplicitaIgnoraVigencia(t *testing.T) {
	fx := seed(false)
	expirada := datePtr(2026, 2, 1)
	fx.versions[versionID].EffectiveEndDate = expirada
	uc := newUseCase(fx)

	in := baseInput()
	in.BOMVersionID = versionID
	result, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, versionID, result.BOMVersion.ID)
}

// Sin versión que cubra la fecha → NoBOMEffectiveError con la fecha.
func TestExecute_SinBOMVigenteParaLaFecha(t *testing.T) {
	fx := seed(false)
	uc := newUseCase(fx)

	in := baseInput()
	in.Date = date(2025, 6, 1) // antes del inicio de v1
	_, err := uc.Execute(context.Background(), in)

	var noBOM *domain.NoBOMEffectiveError
	require.ErrorAs(t, err, &noBOM)
	assert.Equal(t, skuID, noBOM.SKUID)
	assert.Contains(t, noBOM.Error(), "2025-06-01")
}

// BOM sin líneas no es fabricable.
func TestExecute_BOMSinLineasEsInvalido(t *testing.T) {
	fx := seed(false)
	fx.linesByVer[versionID] = nil
	uc := newUseCase(fx)

	_, err := uc.Execute(context.Background(), baseInput())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Línea de producto terminado: acredita el SKU en la ubicación de salida con
// el costo unitario del build.
func TestExecute_LineaDeProductoTerminado(t *testing.T) {
	fx := seed(false)
	fx.locations["bodega-fg"] = &entity.Location{
		ID: "bodega-fg", CompanyID: empresaID, Name: "Terminados", Type: entity.LocationTypeFinishedGood,
	}
	uc := newUseCase(fx)

	in := baseInput()
	in.OutputLocationID = "bodega-fg"
	result, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, result.Transaction.Lines, 2)
	fg := result.Transaction.Lines[1]
	assert.Equal(t, skuID, fg.SKUID)
	assert.Equal(t, "bodega-fg", fg.LocationID)
	assert.True(t, fg.QuantityChange.Equal(decimal.NewFromInt(10)), "salida positiva por defecto = unidades")
	assert.True(t, fg.CostPerUnit.Equal(result.Transaction.UnitBomCost))
}

func TestExecute_ValidacionesDeEntrada(t *testing.T) {
	fx := seed(false)
	uc := newUseCase(fx)

	casos := map[string]func(*appbuild.BuildInput){
		"sin sku":            func(in *appbuild.BuildInput) { in.SKUID = "" },
		"unidades cero":      func(in *appbuild.BuildInput) { in.UnitsToBuild = 0 },
		"unidades negativas": func(in *appbuild.BuildInput) { in.UnitsToBuild = -1 },
		"sin fecha":          func(in *appbuild.BuildInput) { in.Date = time.Time{} },
		"política inválida":  func(in *appbuild.BuildInput) { in.ShortagePolicy = "maybe" },
		"salida negativa":    func(in *appbuild.BuildInput) { in.OutputQuantity = -5 },
	}
	for nombre, mutate := range casos {
		t.Run(nombre, func(t *testing.T) {
			in := baseInput()
			mutate(&in)
			_, err := uc.Execute(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Ubicación de otra empresa en el request → rechazada sin tocar nada.
func TestExecute_UbicacionDeOtraEmpresaRechazada(t *testing.T) {
	fx := seed(false)
	fx.locations["bodega-ajena"] = &entity.Location{ID: "bodega-ajena", CompanyID: otraID, Name: "Ajena"}
	uc := newUseCase(fx)

	in := baseInput()
	in.LocationID = "bodega-ajena"
	_, err := uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFoundOrAccessDenied)
	assert.Empty(t, fx.transactions)
}
