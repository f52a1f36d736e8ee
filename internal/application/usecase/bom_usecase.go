package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/dto"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

// BOMUseCase gestiona versiones de BOM. Las versiones son snapshots
// inmutables: editar un BOM crea una versión nueva; la anterior solo se
// end-datea (supersede) o se desactiva.
type BOMUseCase struct {
	skuRepo       repository.SKURepository
	bomRepo       repository.BOMVersionRepository
	componentRepo repository.ComponentRepository
}

// NewBOMUseCase construye el caso de uso.
func NewBOMUseCase(skuRepo repository.SKURepository, bomRepo repository.BOMVersionRepository, componentRepo repository.ComponentRepository) *BOMUseCase {
	return &BOMUseCase{skuRepo: skuRepo, bomRepo: bomRepo, componentRepo: componentRepo}
}

// CreateVersion crea una versión nueva para el SKU. Con Supersede=true, la
// versión activa previa se end-datea al día anterior del inicio de la nueva.
// No se valida el no-solape de intervalos: la resolución en build time
// desempata de forma determinista.
func (uc *BOMUseCase) CreateVersion(companyID, skuID string, in dto.CreateBOMVersionRequest) (*dto.BOMVersionResponse, error) {
	sku, err := uc.skuRepo.GetByID(skuID)
	if err != nil {
		return nil, err
	}
	if sku == nil || sku.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.VersionName == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	start, err := time.Parse("2006-01-02", in.EffectiveStartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var end *time.Time
	if in.EffectiveEndDate != "" {
		e, err := time.Parse("2006-01-02", in.EffectiveEndDate)
		if err != nil || e.Before(start) {
			return nil, domain.ErrInvalidInput
		}
		end = &e
	}

	version := &entity.BOMVersion{
		ID:                 uuid.New().String(),
		SKUID:              skuID,
		VersionName:        in.VersionName,
		EffectiveStartDate: start,
		EffectiveEndDate:   end,
		IsActive:           true,
		CreatedAt:          time.Now(),
	}
	lines := make([]entity.BOMLine, 0, len(in.Lines))
	for i, l := range in.Lines {
		if !l.QuantityPerUnit.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		component, err := uc.componentRepo.GetByID(l.ComponentID)
		if err != nil {
			return nil, err
		}
		if component == nil || component.CompanyID != companyID {
			return nil, domain.ErrNotFoundOrAccessDenied
		}
		lines = append(lines, entity.BOMLine{
			ID:              uuid.New().String(),
			BOMVersionID:    version.ID,
			ComponentID:     l.ComponentID,
			QuantityPerUnit: l.QuantityPerUnit,
			SortOrder:       i,
		})
	}

	if in.Supersede {
		previous, err := uc.bomRepo.ListBySKU(skuID)
		if err != nil {
			return nil, err
		}
		cutoff := start.AddDate(0, 0, -1)
		for _, p := range previous {
			if p.IsActive && p.EffectiveEndDate == nil {
				if err := uc.bomRepo.EndDate(p.ID, cutoff); err != nil {
					return nil, err
				}
				if err := uc.bomRepo.SetActive(p.ID, false); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := uc.bomRepo.Create(version, lines); err != nil {
		return nil, err
	}
	return toBOMVersionResponse(version, lines), nil
}

// ListBySKU lista las versiones (sin líneas) de un SKU de la empresa.
func (uc *BOMUseCase) ListBySKU(companyID, skuID string) ([]dto.BOMVersionResponse, error) {
	sku, err := uc.skuRepo.GetByID(skuID)
	if err != nil {
		return nil, err
	}
	if sku == nil || sku.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	versions, err := uc.bomRepo.ListBySKU(skuID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BOMVersionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, *toBOMVersionResponse(v, nil))
	}
	return out, nil
}

// GetByID obtiene una versión con sus líneas.
func (uc *BOMUseCase) GetByID(companyID, versionID string) (*dto.BOMVersionResponse, error) {
	version, err := uc.bomRepo.GetByID(versionID)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, nil
	}
	sku, err := uc.skuRepo.GetByID(version.SKUID)
	if err != nil {
		return nil, err
	}
	if sku == nil || sku.CompanyID != companyID {
		return nil, nil
	}
	lines, err := uc.bomRepo.LinesByVersion(version.ID)
	if err != nil {
		return nil, err
	}
	return toBOMVersionResponse(version, lines), nil
}

func toBOMVersionResponse(v *entity.BOMVersion, lines []entity.BOMLine) *dto.BOMVersionResponse {
	out := &dto.BOMVersionResponse{
		ID:                 v.ID,
		SKUID:              v.SKUID,
		VersionName:        v.VersionName,
		EffectiveStartDate: v.EffectiveStartDate.Format("2006-01-02"),
		IsActive:           v.IsActive,
	}
	if v.EffectiveEndDate != nil {
		s := v.EffectiveEndDate.Format("2006-01-02")
		out.EffectiveEndDate = &s
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.BOMLineResponse{
			ComponentID:     l.ComponentID,
			QuantityPerUnit: l.QuantityPerUnit,
		})
	}
	return out
}
