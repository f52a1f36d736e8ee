package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot representa un batch recibido de un componente, con vencimiento opcional.
// Un componente sin lotes opera en modo "pooled" (suma plana de líneas);
// al crearse el primer lote se activa el consumo por lote sin romper el
// historial pooled previo.
type Lot struct {
	ID               string
	ComponentID      string
	LotNumber        string // único por componente
	ExpiryDate       *time.Time
	ReceivedQuantity decimal.Decimal // acumulado de recepciones
	CreatedAt        time.Time
}

// LotBalance es la cantidad restante de un lote (1:1 con Lot). Solo crece con
// nuevas recepciones; los builds la decrementan dentro de la misma transacción
// que escribe el ledger.
type LotBalance struct {
	LotID     string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}

// LotAvailability es la vista lote+saldo que consume el asignador FEFO.
type LotAvailability struct {
	LotID      string
	LotNumber  string
	ExpiryDate *time.Time
	Quantity   decimal.Decimal
}
