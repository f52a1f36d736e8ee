package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrNotFoundOrAccessDenied se devuelve tanto cuando la entidad no existe
	// como cuando pertenece a otra empresa. Ambos casos deben ser indistinguibles
	// para el caller (evita enumeración de tenants).
	ErrNotFoundOrAccessDenied = errors.New("recurso no encontrado o acceso denegado")
)

// NoBOMEffectiveError indica que ningún BOM de la referencia cubre la fecha solicitada.
// Fatal para el build completo; la fecha viaja en el mensaje para que el caller corrija.
type NoBOMEffectiveError struct {
	SKUID string
	Date  time.Time
}

func (e *NoBOMEffectiveError) Error() string {
	return fmt.Sprintf("ningún BOM vigente para la fecha %s", e.Date.Format("2006-01-02"))
}

// ShortageItem detalla un componente con inventario insuficiente.
type ShortageItem struct {
	ComponentID   string          `json:"component_id"`
	ComponentName string          `json:"component_name"`
	SKUCode       string          `json:"sku_code"`
	Required      decimal.Decimal `json:"required"`
	Available     decimal.Decimal `json:"available"`
	Shortage      decimal.Decimal `json:"shortage"`
}

// InsufficientInventoryError lista TODOS los componentes cortos, no solo el primero.
type InsufficientInventoryError struct {
	Items []ShortageItem
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("inventario insuficiente para %d componente(s)", len(e.Items))
}
