package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa. Crea también su
// ubicación por defecto.
type CreateCompanyRequest struct {
	Name                   string `json:"name" validate:"required,min=1,max=200"`
	AllowNegativeInventory bool   `json:"allow_negative_inventory"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Status                 string    `json:"status"`
	AllowNegativeInventory bool      `json:"allow_negative_inventory"`
	DefaultLocationID      string    `json:"default_location_id,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Type string `json:"type" validate:"omitempty,oneof=warehouse 3pl fba finished_goods"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}
