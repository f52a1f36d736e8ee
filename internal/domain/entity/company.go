package entity

import "time"

// Company representa una organización/tenant del sistema. Toda entidad del
// inventario pertenece, directa o transitivamente, a exactamente una Company.
type Company struct {
	ID        string
	Name      string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time

	// AllowNegativeInventory permite que los builds dejen balances negativos
	// sin override por request (política a nivel de empresa).
	AllowNegativeInventory bool
}

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
	RoleConsulta = "consulta"
)
