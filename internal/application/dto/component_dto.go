package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateComponentRequest entrada para crear un componente.
type CreateComponentRequest struct {
	SKUCode      string          `json:"sku_code" validate:"required,min=1,max=100"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Description  string          `json:"description"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
	LeadTimeDays int             `json:"lead_time_days"`
}

// UpdateComponentRequest entrada para actualizar un componente.
type UpdateComponentRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description"`
	CostPerUnit  *decimal.Decimal `json:"cost_per_unit"`
	ReorderPoint *decimal.Decimal `json:"reorder_point"`
	LeadTimeDays *int             `json:"lead_time_days"`
}

// ComponentResponse salida de un componente.
type ComponentResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	SKUCode      string          `json:"sku_code"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
	LeadTimeDays int             `json:"lead_time_days"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ComponentListResponse lista paginada de componentes.
type ComponentListResponse struct {
	Items []ComponentResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
