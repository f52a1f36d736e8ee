package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario (conjunto cerrado; CHECK en la tabla).
const (
	TxTypeInitial    = "initial"
	TxTypeReceipt    = "receipt"
	TxTypeAdjustment = "adjustment"
	TxTypeBuild      = "build"
	TxTypeTransfer   = "transfer"
)

// Transaction es un evento inmutable del ledger: una vez creada nunca se edita;
// las correcciones son nuevas transacciones de ajuste. Posee exclusivamente sus
// TransactionLine (se crean juntas, nunca se borran individualmente).
//
// Campos por tipo: build requiere BOMVersionID y UnitsBuilt; transfer requiere
// FromLocationID y ToLocationID; el resto usa LocationID.
type Transaction struct {
	ID             string
	CompanyID      string
	Type           string // ver constantes TxType*
	Date           time.Time
	LocationID     string
	FromLocationID string // solo transfer
	ToLocationID   string // solo transfer
	CreatedByID    string
	SalesChannel   string
	Supplier       string
	Reason         string
	Notes          string
	CreatedAt      time.Time

	// Solo build.
	SKUID        string
	BOMVersionID string
	UnitsBuilt   int64
	UnitBomCost  decimal.Decimal // snapshot inmutable al momento de resolución
	TotalBomCost decimal.Decimal

	Lines []TransactionLine
}

// TransactionLine es un cambio firmado de cantidad contra un componente (o,
// para la línea de producto terminado de un build, contra el SKU). LotID nil
// significa consumo pooled. Para builds hay una línea por combinación
// (componente, lote-o-ninguno), siempre negativa.
type TransactionLine struct {
	ID            string
	TransactionID string
	ComponentID   string  // vacío en la línea de producto terminado
	SKUID         string  // solo línea de producto terminado
	LotID         *string // nil = pooled
	LocationID    string
	QuantityChange decimal.Decimal
	CostPerUnit    decimal.Decimal
}
