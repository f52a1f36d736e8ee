package repository

import "github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	GetDefaultByCompany(companyID string) (*entity.Location, error)
	ListByCompany(companyID string) ([]*entity.Location, error)
}
