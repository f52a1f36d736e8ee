package repository

import (
	"github.com/shopspring/decimal"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
)

// ComponentRepository define el puerto de persistencia para Component.
type ComponentRepository interface {
	Create(component *entity.Component) error
	GetByID(id string) (*entity.Component, error)
	GetByIDs(ids []string) (map[string]*entity.Component, error)
	GetByCompanyAndCode(companyID, skuCode string) (*entity.Component, error)
	Update(component *entity.Component) error
	UpdateCost(componentID string, cost decimal.Decimal) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Component, error)
}
