package dto

import "github.com/shopspring/decimal"

// BOMLineRequest línea (componente, cantidad por unidad) de una versión nueva.
type BOMLineRequest struct {
	ComponentID     string          `json:"component_id" validate:"required,uuid"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit" validate:"required,gt=0"`
}

// CreateBOMVersionRequest entrada para crear una versión de BOM. Si Supersede
// es true, la versión activa previa se end-datea al día anterior del inicio.
type CreateBOMVersionRequest struct {
	VersionName        string           `json:"version_name" validate:"required,min=1,max=100"`
	EffectiveStartDate string           `json:"effective_start_date" validate:"required"` // YYYY-MM-DD
	EffectiveEndDate   string           `json:"effective_end_date,omitempty"`             // vacío = sin fin
	Supersede          bool             `json:"supersede,omitempty"`
	Lines              []BOMLineRequest `json:"lines" validate:"required,min=1"`
}

// BOMLineResponse línea de una versión.
type BOMLineResponse struct {
	ComponentID     string          `json:"component_id"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
}

// BOMVersionResponse salida de una versión de BOM.
type BOMVersionResponse struct {
	ID                 string            `json:"id"`
	SKUID              string            `json:"sku_id"`
	VersionName        string            `json:"version_name"`
	EffectiveStartDate string            `json:"effective_start_date"`
	EffectiveEndDate   *string           `json:"effective_end_date"`
	IsActive           bool              `json:"is_active"`
	Lines              []BOMLineResponse `json:"lines,omitempty"`
}
