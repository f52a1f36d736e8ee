package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/dto"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

// SKUUseCase casos de uso CRUD de SKUs (productos terminados).
type SKUUseCase struct {
	skuRepo repository.SKURepository
}

// NewSKUUseCase construye el caso de uso.
func NewSKUUseCase(skuRepo repository.SKURepository) *SKUUseCase {
	return &SKUUseCase{skuRepo: skuRepo}
}

// Create crea un SKU. El código es único por empresa.
func (uc *SKUUseCase) Create(companyID string, in dto.CreateSKURequest) (*dto.SKUResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	sku := &entity.SKU{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Code:      in.Code,
		Name:      in.Name,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.skuRepo.Create(sku); err != nil {
		return nil, err
	}
	return toSKUResponse(sku), nil
}

// GetByID obtiene un SKU de la empresa.
func (uc *SKUUseCase) GetByID(companyID, id string) (*dto.SKUResponse, error) {
	sku, err := uc.skuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sku == nil || sku.CompanyID != companyID {
		return nil, nil
	}
	return toSKUResponse(sku), nil
}

// ListByCompany lista SKUs con paginación.
func (uc *SKUUseCase) ListByCompany(companyID string, page dto.PageRequest) (*dto.SKUListResponse, error) {
	page.DefaultPage()
	skus, err := uc.skuRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SKUListResponse{
		Items: make([]dto.SKUResponse, 0, len(skus)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, s := range skus {
		out.Items = append(out.Items, *toSKUResponse(s))
	}
	return out, nil
}

func toSKUResponse(s *entity.SKU) *dto.SKUResponse {
	return &dto.SKUResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Code:      s.Code,
		Name:      s.Name,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
