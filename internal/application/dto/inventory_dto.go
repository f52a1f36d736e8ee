package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// Para initial/receipt/adjustment: component_id, location_id, quantity.
// Para transfer: component_id, from_location_id, to_location_id, quantity.
// En recepciones con lote: lot_number (+ expiry_date opcional).
type RegisterMovementRequest struct {
	ComponentID    string           `json:"component_id"`
	LocationID     string           `json:"location_id,omitempty"`
	FromLocationID string           `json:"from_location_id,omitempty"`
	ToLocationID   string           `json:"to_location_id,omitempty"`
	Type           string           `json:"type"`
	Date           string           `json:"date,omitempty"` // YYYY-MM-DD, default hoy
	Quantity       decimal.Decimal  `json:"quantity"`
	UnitCost       *decimal.Decimal `json:"unit_cost,omitempty"`
	LotID          string           `json:"lot_id,omitempty"`     // ajustes sobre un lote existente
	LotNumber      string           `json:"lot_number,omitempty"` // recepciones loteadas
	ExpiryDate     string           `json:"expiry_date,omitempty"` // YYYY-MM-DD
	Supplier       string           `json:"supplier,omitempty"`
	Reason         string           `json:"reason,omitempty"`
	Notes          string           `json:"notes,omitempty"`
}

// MovementResponse respuesta de un movimiento registrado.
type MovementResponse struct {
	TransactionID string    `json:"transaction_id"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"created_at"`
}

// BalanceResponse saldo materializado de un componente en una ubicación.
type BalanceResponse struct {
	ComponentID string          `json:"component_id"`
	LocationID  string          `json:"location_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// LotResponse lote con su saldo actual.
type LotResponse struct {
	LotID      string          `json:"lot_id"`
	LotNumber  string          `json:"lot_number"`
	ExpiryDate *string         `json:"expiry_date"`
	Quantity   decimal.Decimal `json:"quantity"`
}
