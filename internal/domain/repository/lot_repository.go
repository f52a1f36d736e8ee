package repository

import (
	"github.com/shopspring/decimal"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para lotes y sus saldos.
// Usado dentro de transacciones para garantizar consistencia entre el ledger
// y lot_balances.
type LotRepository interface {
	// CreateWithBalance persiste el lote y su LotBalance inicial juntos.
	CreateWithBalance(lot *entity.Lot, initialQuantity decimal.Decimal) error
	GetByID(id string) (*entity.Lot, error)
	GetByComponentAndNumber(componentID, lotNumber string) (*entity.Lot, error)
	// HasLots indica si el componente opera en modo loteado (≥1 fila en lots).
	HasLots(componentID string) (bool, error)
	ListByComponent(componentID string) ([]*entity.LotAvailability, error)
	// ListForUpdateByComponent bloquea los saldos del componente (SELECT FOR
	// UPDATE) y los devuelve en orden FEFO: expiry asc, sin vencimiento al final.
	ListForUpdateByComponent(componentID string) ([]*entity.LotAvailability, error)
	// AddReceipt incrementa received_quantity del lote y su saldo.
	AddReceipt(lotID string, quantity decimal.Decimal) error
	// AdjustBalance aplica un delta firmado al saldo del lote. Solo el motor de
	// builds puede dejarlo negativo (override de disponibilidad).
	AdjustBalance(lotID string, delta decimal.Decimal) error
}
