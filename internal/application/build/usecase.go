package build

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/build"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

// BuildUseCase es el Transaction Writer: orquesta el pipeline lineal
// Validar → Resolver BOM → Explotar requerimientos → Verificar disponibilidad
// → Asignar lotes → Persistir. La fase de persistencia (incluidos el check de
// disponibilidad y los decrementos de saldo, bloqueados con SELECT FOR UPDATE)
// corre completa dentro de una transacción de BD: o se aplica todo o nada.
type BuildUseCase struct {
	txRunner      TxRunner
	companyRepo   repository.CompanyRepository
	skuRepo       repository.SKURepository
	bomRepo       repository.BOMVersionRepository
	componentRepo repository.ComponentRepository
	locationRepo  repository.LocationRepository
	lotRepo       repository.LotRepository
}

// NewBuildUseCase construye el caso de uso.
func NewBuildUseCase(
	txRunner TxRunner,
	companyRepo repository.CompanyRepository,
	skuRepo repository.SKURepository,
	bomRepo repository.BOMVersionRepository,
	componentRepo repository.ComponentRepository,
	locationRepo repository.LocationRepository,
	lotRepo repository.LotRepository,
) *BuildUseCase {
	return &BuildUseCase{
		txRunner:      txRunner,
		companyRepo:   companyRepo,
		skuRepo:       skuRepo,
		bomRepo:       bomRepo,
		componentRepo: componentRepo,
		locationRepo:  locationRepo,
		lotRepo:       lotRepo,
	}
}

// LotOverride reemplaza la asignación FEFO automática de un componente.
type LotOverride struct {
	ComponentID string
	Allocations []LotAllocation
}

// LotAllocation cantidad explícita a consumir de un lote.
type LotAllocation struct {
	LotID    string
	Quantity decimal.Decimal
}

// BuildInput entrada para ejecutar un build.
type BuildInput struct {
	CompanyID    string
	UserID       string
	SKUID        string
	BOMVersionID string // override explícito; vacío = resolver por fecha
	UnitsToBuild int64
	Date         time.Time // fecha calendario a medianoche UTC

	LocationID       string // vacío = ubicación por defecto de la empresa
	OutputLocationID string
	OutputQuantity   int64 // 0 = UnitsToBuild

	SalesChannel   string
	Notes          string
	ShortagePolicy build.ShortagePolicy
	LotOverrides   []LotOverride
}

// BuildResult es la transacción persistida más el contexto de resolución.
type BuildResult struct {
	Transaction *entity.Transaction
	BOMVersion  *entity.BOMVersion
	Components  map[string]*entity.Component

	// Warning indica que hubo faltantes pero la política los permitió.
	Warning   bool
	Shortages []domain.ShortageItem
}

// Execute corre el pipeline completo de un build. Todos los errores de dominio
// (ErrNotFound, ErrNotFoundOrAccessDenied, NoBOMEffectiveError,
// InsufficientInventoryError, ErrInvalidInput) se detectan antes del commit:
// un build fallido nunca deja nada persistido.
func (uc *BuildUseCase) Execute(ctx context.Context, in BuildInput) (*BuildResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	// Tenant Guard del SKU objetivo. "No existe" y "es de otra empresa" se
	// responden igual.
	sku, err := uc.skuRepo.GetByID(in.SKUID)
	if err != nil {
		return nil, err
	}
	if sku == nil || sku.CompanyID != in.CompanyID {
		return nil, domain.ErrNotFound
	}

	location, err := uc.resolveLocation(in.CompanyID, in.LocationID)
	if err != nil {
		return nil, err
	}
	var outputLocation *entity.Location
	if in.OutputLocationID != "" {
		outputLocation, err = uc.resolveLocation(in.CompanyID, in.OutputLocationID)
		if err != nil {
			return nil, err
		}
	}

	version, lines, err := uc.resolveBOM(sku, in)
	if err != nil {
		return nil, err
	}

	reqs := build.Explode(lines, in.UnitsToBuild)
	componentIDs := build.SortedComponentIDs(reqs)
	components, err := uc.componentRepo.GetByIDs(componentIDs)
	if err != nil {
		return nil, err
	}
	costs := make(map[string]decimal.Decimal, len(componentIDs))
	for _, id := range componentIDs {
		comp, ok := components[id]
		if !ok || comp.CompanyID != in.CompanyID {
			return nil, domain.ErrNotFoundOrAccessDenied
		}
		costs[id] = comp.CostPerUnit
	}
	unitCost, totalCost := build.CostSnapshot(lines, costs, in.UnitsToBuild)

	overrides, err := uc.guardOverrides(in, reqs, components)
	if err != nil {
		return nil, err
	}

	allowShortage := in.ShortagePolicy.AllowsShortage(company.AllowNegativeInventory)

	outputQty := in.OutputQuantity
	if outputQty <= 0 {
		outputQty = in.UnitsToBuild
	}

	result := &BuildResult{BOMVersion: version, Components: components}
	now := time.Now()

	err = uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		balanceRepo repository.InventoryBalanceRepository,
		lotRepo repository.LotRepository,
	) error {
		// Fase 1: bloquear saldos en orden estable y verificar disponibilidad.
		// El orden determinista evita deadlocks entre builds concurrentes.
		var shortages []domain.ShortageItem
		for _, cid := range componentIDs {
			bal, err := balanceRepo.GetForUpdate(cid, location.ID)
			if err != nil {
				return err
			}
			required := reqs[cid]
			if bal.Quantity.LessThan(required) {
				comp := components[cid]
				shortages = append(shortages, domain.ShortageItem{
					ComponentID:   cid,
					ComponentName: comp.Name,
					SKUCode:       comp.SKUCode,
					Required:      required,
					Available:     bal.Quantity,
					Shortage:      required.Sub(bal.Quantity),
				})
			}
		}
		if len(shortages) > 0 && !allowShortage {
			return &domain.InsufficientInventoryError{Items: shortages}
		}
		result.Shortages = shortages
		result.Warning = len(shortages) > 0

		// Fase 2: asignar consumo por componente (override manual o FEFO).
		allocations := make(map[string][]build.Allocation, len(componentIDs))
		for _, cid := range componentIDs {
			if manual, ok := overrides[cid]; ok {
				allocations[cid] = manual
				continue
			}
			hasLots, err := lotRepo.HasLots(cid)
			if err != nil {
				return err
			}
			if !hasLots {
				// Modo pooled: una sola línea con lot_id nulo.
				allocations[cid] = []build.Allocation{{LotID: nil, Quantity: reqs[cid]}}
				continue
			}
			lots, err := lotRepo.ListForUpdateByComponent(cid)
			if err != nil {
				return err
			}
			allocations[cid] = build.AllocateFEFO(lots, reqs[cid])
		}

		// Fase 3: persistir header + líneas, decrementar LotBalance y aplicar
		// el delta materializado, todo en esta misma transacción.
		tx := &entity.Transaction{
			ID:           uuid.New().String(),
			CompanyID:    in.CompanyID,
			Type:         entity.TxTypeBuild,
			Date:         in.Date,
			LocationID:   location.ID,
			CreatedByID:  in.UserID,
			SalesChannel: in.SalesChannel,
			Notes:        in.Notes,
			CreatedAt:    now,
			SKUID:        sku.ID,
			BOMVersionID: version.ID,
			UnitsBuilt:   in.UnitsToBuild,
			UnitBomCost:  unitCost,
			TotalBomCost: totalCost,
		}
		for _, cid := range componentIDs {
			for _, alloc := range allocations[cid] {
				tx.Lines = append(tx.Lines, entity.TransactionLine{
					ID:             uuid.New().String(),
					TransactionID:  tx.ID,
					ComponentID:    cid,
					LotID:          alloc.LotID,
					LocationID:     location.ID,
					QuantityChange: alloc.Quantity.Neg(),
					CostPerUnit:    components[cid].CostPerUnit,
				})
			}
		}
		if outputLocation != nil {
			// Línea de producto terminado: acredita el SKU en la ubicación de salida.
			tx.Lines = append(tx.Lines, entity.TransactionLine{
				ID:             uuid.New().String(),
				TransactionID:  tx.ID,
				SKUID:          sku.ID,
				LocationID:     outputLocation.ID,
				QuantityChange: decimal.NewFromInt(outputQty),
				CostPerUnit:    unitCost,
			})
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}

		for _, cid := range componentIDs {
			consumed := decimal.Zero
			for _, alloc := range allocations[cid] {
				consumed = consumed.Add(alloc.Quantity)
				if alloc.LotID != nil {
					if err := lotRepo.AdjustBalance(*alloc.LotID, alloc.Quantity.Neg()); err != nil {
						return err
					}
				}
			}
			// Un solo delta por componente, igual a la suma de sus líneas:
			// el saldo materializado nunca diverge del ledger.
			if err := balanceRepo.ApplyDelta(cid, location.ID, consumed.Neg()); err != nil {
				return err
			}
		}

		result.Transaction = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func validateInput(in BuildInput) error {
	if in.CompanyID == "" || in.UserID == "" || in.SKUID == "" {
		return domain.ErrInvalidInput
	}
	if in.UnitsToBuild <= 0 || in.Date.IsZero() {
		return domain.ErrInvalidInput
	}
	if in.OutputQuantity < 0 {
		return domain.ErrInvalidInput
	}
	if !in.ShortagePolicy.Valid() {
		return domain.ErrInvalidInput
	}
	seen := make(map[string]bool, len(in.LotOverrides))
	for _, ov := range in.LotOverrides {
		if ov.ComponentID == "" || len(ov.Allocations) == 0 || seen[ov.ComponentID] {
			return domain.ErrInvalidInput
		}
		seen[ov.ComponentID] = true
		for _, alloc := range ov.Allocations {
			if alloc.LotID == "" || !alloc.Quantity.IsPositive() {
				return domain.ErrInvalidInput
			}
		}
	}
	return nil
}

// resolveLocation resuelve la ubicación por id (con Tenant Guard) o la por
// defecto de la empresa.
func (uc *BuildUseCase) resolveLocation(companyID, locationID string) (*entity.Location, error) {
	if locationID == "" {
		loc, err := uc.locationRepo.GetDefaultByCompany(companyID)
		if err != nil {
			return nil, err
		}
		if loc == nil {
			return nil, domain.ErrNotFound
		}
		return loc, nil
	}
	loc, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil || loc.CompanyID != companyID {
		return nil, domain.ErrNotFoundOrAccessDenied
	}
	return loc, nil
}

// resolveBOM aplica §BOM Resolver: el id explícito gana (aunque no esté
// vigente en la fecha) pero debe pertenecer al SKU objetivo; si no hay id,
// selección determinista entre las versiones que cubren la fecha.
func (uc *BuildUseCase) resolveBOM(sku *entity.SKU, in BuildInput) (*entity.BOMVersion, []entity.BOMLine, error) {
	var version *entity.BOMVersion
	if in.BOMVersionID != "" {
		v, err := uc.bomRepo.GetByID(in.BOMVersionID)
		if err != nil {
			return nil, nil, err
		}
		if v == nil || v.SKUID != sku.ID {
			return nil, nil, domain.ErrNotFoundOrAccessDenied
		}
		version = v
	} else {
		versions, err := uc.bomRepo.ListBySKU(sku.ID)
		if err != nil {
			return nil, nil, err
		}
		version = build.ResolveEffectiveVersion(versions, in.Date)
		if version == nil {
			return nil, nil, &domain.NoBOMEffectiveError{SKUID: sku.ID, Date: in.Date}
		}
	}
	lines, err := uc.bomRepo.LinesByVersion(version.ID)
	if err != nil {
		return nil, nil, err
	}
	if len(lines) == 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	return version, lines, nil
}

// guardOverrides valida cada override manual: el componente debe estar en el
// BOM resuelto y cada lote debe pertenecer a ese componente dentro de la
// empresa del caller. Cualquier fallo aborta el build completo sin consumo
// parcial. El override reemplaza por completo la asignación FEFO del
// componente; no hay top-up automático.
func (uc *BuildUseCase) guardOverrides(
	in BuildInput,
	reqs map[string]decimal.Decimal,
	components map[string]*entity.Component,
) (map[string][]build.Allocation, error) {
	if len(in.LotOverrides) == 0 {
		return nil, nil
	}
	overrides := make(map[string][]build.Allocation, len(in.LotOverrides))
	for _, ov := range in.LotOverrides {
		if _, ok := reqs[ov.ComponentID]; !ok {
			return nil, domain.ErrInvalidInput
		}
		comp := components[ov.ComponentID]
		if comp == nil || comp.CompanyID != in.CompanyID {
			return nil, domain.ErrNotFoundOrAccessDenied
		}
		allocs := make([]build.Allocation, 0, len(ov.Allocations))
		for _, a := range ov.Allocations {
			lot, err := uc.lotRepo.GetByID(a.LotID)
			if err != nil {
				return nil, err
			}
			// Adivinar un lot id ajeno no basta: el componente dueño del lote
			// también debe calzar, dentro de la empresa del caller.
			if lot == nil || lot.ComponentID != ov.ComponentID {
				return nil, domain.ErrNotFoundOrAccessDenied
			}
			lotID := lot.ID
			allocs = append(allocs, build.Allocation{LotID: &lotID, Quantity: a.Quantity})
		}
		overrides[ov.ComponentID] = allocs
	}
	return overrides, nil
}
