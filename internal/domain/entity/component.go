package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Component representa una materia prima o parte comprada. El stock vive en
// InventoryBalance (por ubicación) y, si está loteado, en LotBalance.
type Component struct {
	ID           string
	CompanyID    string
	SKUCode      string // código único por empresa
	Name         string
	Description  string
	CostPerUnit  decimal.Decimal // costo por defecto, mutable; los builds lo snapshotean
	ReorderPoint decimal.Decimal // 0 = sin seguimiento de reorden (no exime del check de disponibilidad)
	LeadTimeDays int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
