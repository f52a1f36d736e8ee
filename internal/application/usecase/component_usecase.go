package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/dto"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

// ComponentUseCase casos de uso CRUD de componentes (materias primas).
type ComponentUseCase struct {
	componentRepo repository.ComponentRepository
	lotRepo       repository.LotRepository
}

// NewComponentUseCase construye el caso de uso.
func NewComponentUseCase(componentRepo repository.ComponentRepository, lotRepo repository.LotRepository) *ComponentUseCase {
	return &ComponentUseCase{componentRepo: componentRepo, lotRepo: lotRepo}
}

// Create crea un componente. El código debe ser único por empresa.
func (uc *ComponentUseCase) Create(companyID string, in dto.CreateComponentRequest) (*dto.ComponentResponse, error) {
	if in.SKUCode == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPerUnit.IsNegative() || in.ReorderPoint.IsNegative() || in.LeadTimeDays < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	component := &entity.Component{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		SKUCode:      in.SKUCode,
		Name:         in.Name,
		Description:  in.Description,
		CostPerUnit:  in.CostPerUnit,
		ReorderPoint: in.ReorderPoint,
		LeadTimeDays: in.LeadTimeDays,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.componentRepo.Create(component); err != nil {
		return nil, err
	}
	return toComponentResponse(component), nil
}

// GetByID obtiene un componente de la empresa (Tenant Guard incluido).
func (uc *ComponentUseCase) GetByID(companyID, id string) (*dto.ComponentResponse, error) {
	component, err := uc.componentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if component == nil || component.CompanyID != companyID {
		return nil, nil
	}
	return toComponentResponse(component), nil
}

// Update aplica cambios parciales a un componente.
func (uc *ComponentUseCase) Update(companyID, id string, in dto.UpdateComponentRequest) (*dto.ComponentResponse, error) {
	component, err := uc.componentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if component == nil || component.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		component.Name = *in.Name
	}
	if in.Description != nil {
		component.Description = *in.Description
	}
	if in.CostPerUnit != nil {
		component.CostPerUnit = *in.CostPerUnit
	}
	if in.ReorderPoint != nil {
		component.ReorderPoint = *in.ReorderPoint
	}
	if in.LeadTimeDays != nil {
		component.LeadTimeDays = *in.LeadTimeDays
	}
	component.UpdatedAt = time.Now()
	if err := uc.componentRepo.Update(component); err != nil {
		return nil, err
	}
	return toComponentResponse(component), nil
}

// ListByCompany lista componentes con paginación.
func (uc *ComponentUseCase) ListByCompany(companyID string, page dto.PageRequest) (*dto.ComponentListResponse, error) {
	page.DefaultPage()
	components, err := uc.componentRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ComponentListResponse{
		Items: make([]dto.ComponentResponse, 0, len(components)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, c := range components {
		out.Items = append(out.Items, *toComponentResponse(c))
	}
	return out, nil
}

// ListLots lista los lotes con saldo de un componente de la empresa.
func (uc *ComponentUseCase) ListLots(companyID, componentID string) ([]dto.LotResponse, error) {
	component, err := uc.componentRepo.GetByID(componentID)
	if err != nil {
		return nil, err
	}
	if component == nil || component.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	lots, err := uc.lotRepo.ListByComponent(componentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		resp := dto.LotResponse{LotID: l.LotID, LotNumber: l.LotNumber, Quantity: l.Quantity}
		if l.ExpiryDate != nil {
			s := l.ExpiryDate.Format("2006-01-02")
			resp.ExpiryDate = &s
		}
		out = append(out, resp)
	}
	return out, nil
}

func toComponentResponse(c *entity.Component) *dto.ComponentResponse {
	return &dto.ComponentResponse{
		ID:           c.ID,
		CompanyID:    c.CompanyID,
		SKUCode:      c.SKUCode,
		Name:         c.Name,
		Description:  c.Description,
		CostPerUnit:  c.CostPerUnit,
		ReorderPoint: c.ReorderPoint,
		LeadTimeDays: c.LeadTimeDays,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
