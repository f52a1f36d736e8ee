package repository

import (
	"github.com/shopspring/decimal"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
)

// InventoryBalanceRepository define el puerto para la proyección materializada
// (componente, ubicación) → cantidad. Nunca se actualiza fuera de la
// transacción que escribe las líneas del ledger.
type InventoryBalanceRepository interface {
	Get(componentID, locationID string) (*entity.InventoryBalance, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE). Devuelve saldo cero si
	// la fila aún no existe.
	GetForUpdate(componentID, locationID string) (*entity.InventoryBalance, error)
	// ApplyDelta hace upsert incremental del saldo (quantity = quantity + delta).
	ApplyDelta(componentID, locationID string, delta decimal.Decimal) error
	ListByCompany(companyID string) ([]*entity.InventoryBalance, error)
}
