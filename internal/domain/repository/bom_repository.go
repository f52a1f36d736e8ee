package repository

import (
	"time"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
)

// BOMVersionRepository define el puerto de persistencia para versiones de BOM.
// Las versiones son inmutables después de creadas: solo se permite end-datear
// y cambiar el flag de activación.
type BOMVersionRepository interface {
	// Create persiste la versión y sus líneas juntas.
	Create(version *entity.BOMVersion, lines []entity.BOMLine) error
	GetByID(id string) (*entity.BOMVersion, error)
	ListBySKU(skuID string) ([]*entity.BOMVersion, error)
	LinesByVersion(versionID string) ([]entity.BOMLine, error)
	// EndDate cierra el intervalo de vigencia de una versión (supersede).
	EndDate(versionID string, end time.Time) error
	SetActive(versionID string, active bool) error
}
