package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/dto"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

// CompanyUseCase casos de uso de empresas (tenants).
type CompanyUseCase struct {
	companyRepo  repository.CompanyRepository
	locationRepo repository.LocationRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyRepository, locationRepo repository.LocationRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo, locationRepo: locationRepo}
}

// Create crea la empresa junto con su ubicación por defecto (toda empresa
// tiene exactamente una).
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	company := &entity.Company{
		ID:                     uuid.New().String(),
		Name:                   in.Name,
		Status:                 "active",
		AllowNegativeInventory: in.AllowNegativeInventory,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	location := &entity.Location{
		ID:        uuid.New().String(),
		CompanyID: company.ID,
		Name:      "Bodega principal",
		Type:      entity.LocationTypeWarehouse,
		IsDefault: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.locationRepo.Create(location); err != nil {
		return nil, err
	}
	out := toCompanyResponse(company)
	out.DefaultLocationID = location.ID
	return out, nil
}

// GetByID obtiene una empresa con su ubicación por defecto.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	out := toCompanyResponse(company)
	if loc, err := uc.locationRepo.GetDefaultByCompany(id); err == nil && loc != nil {
		out.DefaultLocationID = loc.ID
	}
	return out, nil
}

// List devuelve empresas paginadas.
func (uc *CompanyUseCase) List(page dto.PageRequest) ([]dto.CompanyResponse, error) {
	page.DefaultPage()
	companies, err := uc.companyRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, *toCompanyResponse(c))
	}
	return out, nil
}

// UpdateSettings cambia la política de inventario negativo de la empresa.
func (uc *CompanyUseCase) UpdateSettings(companyID string, allowNegative bool) error {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.companyRepo.UpdateSettings(companyID, allowNegative)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:                     c.ID,
		Name:                   c.Name,
		Status:                 c.Status,
		AllowNegativeInventory: c.AllowNegativeInventory,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}
