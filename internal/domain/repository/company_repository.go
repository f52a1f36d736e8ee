package repository

import "github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
	UpdateSettings(companyID string, allowNegativeInventory bool) error
}
