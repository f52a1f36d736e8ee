package repository

import "github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"

// SKURepository define el puerto de persistencia para SKU.
type SKURepository interface {
	Create(sku *entity.SKU) error
	GetByID(id string) (*entity.SKU, error)
	GetByCompanyAndCode(companyID, code string) (*entity.SKU, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.SKU, error)
}
