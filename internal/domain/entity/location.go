package entity

import "time"

// Tipos de ubicación.
const (
	LocationTypeWarehouse    = "warehouse"
	LocationType3PL          = "3pl"
	LocationTypeFBA          = "fba"
	LocationTypeFinishedGood = "finished_goods"
)

// Location representa una bodega o bucket de inventario. Cada empresa tiene
// exactamente una ubicación por defecto (IsDefault).
type Location struct {
	ID        string
	CompanyID string
	Name      string
	Type      string // ver constantes LocationType*
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
