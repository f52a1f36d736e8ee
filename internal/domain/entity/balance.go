package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryBalance es la cache materializada de (componente, ubicación) →
// cantidad. Debe ser siempre igual a la suma firmada de las TransactionLine
// de ese componente en esa ubicación; el Transaction Writer mantiene el
// invariante actualizándola dentro de la misma transacción que el ledger.
type InventoryBalance struct {
	ComponentID string
	LocationID  string
	Quantity    decimal.Decimal
	UpdatedAt   time.Time
}
