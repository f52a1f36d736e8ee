package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
)

// LotAllocationRequest asigna explícitamente cantidad de un lote concreto.
type LotAllocationRequest struct {
	LotID    string          `json:"lot_id" validate:"required,uuid"`
	Quantity decimal.Decimal `json:"quantity" validate:"required,gt=0"`
}

// LotOverrideRequest reemplaza por completo la asignación FEFO automática de
// un componente (sin top-up: se consume exactamente lo indicado).
type LotOverrideRequest struct {
	ComponentID string                 `json:"component_id" validate:"required,uuid"`
	Allocations []LotAllocationRequest `json:"allocations" validate:"required,min=1"`
}

// BuildRequest body para POST /api/builds.
type BuildRequest struct {
	SKUID        string `json:"sku_id" validate:"required,uuid"`
	BOMVersionID string `json:"bom_version_id,omitempty"` // override explícito de la resolución por fecha
	UnitsToBuild int64  `json:"units_to_build" validate:"required,gt=0"`
	Date         string `json:"date" validate:"required"` // YYYY-MM-DD, fecha calendario sin hora

	LocationID       string `json:"location_id,omitempty"` // default: ubicación por defecto de la empresa
	OutputLocationID string `json:"output_location_id,omitempty"`
	OutputQuantity   int64  `json:"output_quantity,omitempty"` // default: units_to_build

	SalesChannel string `json:"sales_channel,omitempty"`
	Notes        string `json:"notes,omitempty"`

	// Política de faltantes: "inherit" (default), "block" o "allow".
	// allow_insufficient_inventory=true es el flag legado equivalente a "allow".
	ShortagePolicy             string `json:"shortage_policy,omitempty"`
	AllowInsufficientInventory bool   `json:"allow_insufficient_inventory,omitempty"`

	LotOverrides []LotOverrideRequest `json:"lot_overrides,omitempty"`
}

// BOMVersionRef referencia mínima a la versión resuelta.
type BOMVersionRef struct {
	ID          string `json:"id"`
	VersionName string `json:"version_name"`
}

// TransactionLineResponse línea del ledger en respuestas.
type TransactionLineResponse struct {
	Component      *ComponentRef   `json:"component,omitempty"`
	SKUID          string          `json:"sku_id,omitempty"`
	LotID          *string         `json:"lot_id"`
	LocationID     string          `json:"location_id"`
	QuantityChange decimal.Decimal `json:"quantity_change"`
	CostPerUnit    decimal.Decimal `json:"cost_per_unit"`
}

// ComponentRef referencia mínima a un componente en una línea.
type ComponentRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BuildResponse respuesta 201 de un build exitoso.
type BuildResponse struct {
	ID           string                    `json:"id"`
	Type         string                    `json:"type"` // siempre "build"
	Date         string                    `json:"date"`
	LocationID   string                    `json:"location_id"`
	BOMVersion   BOMVersionRef             `json:"bom_version"`
	UnitsBuilt   int64                     `json:"units_built"`
	Lines        []TransactionLineResponse `json:"lines"`
	UnitBomCost  decimal.Decimal           `json:"unit_bom_cost"`
	TotalBomCost decimal.Decimal           `json:"total_bom_cost"`
	CreatedAt    time.Time                 `json:"created_at"`

	Warning           bool                  `json:"warning,omitempty"`
	InsufficientItems []domain.ShortageItem `json:"insufficient_items,omitempty"`
}
