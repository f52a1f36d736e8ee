package entity

import "time"

// SKU representa un producto terminado fabricable; tiene cero o más BOMVersion.
type SKU struct {
	ID        string
	CompanyID string
	Code      string // único por empresa
	Name      string
	Status    string // active, discontinued
	CreatedAt time.Time
	UpdatedAt time.Time
}
