package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOMVersion es un snapshot inmutable del bill of materials de un SKU.
// Después de creada solo cambian IsActive y EffectiveEndDate (al ser superseded).
// Los intervalos de vigencia de un mismo SKU PUEDEN solaparse en storage; la
// resolución en build time desempata de forma determinista (ver domain/build).
type BOMVersion struct {
	ID                 string
	SKUID              string
	VersionName        string
	EffectiveStartDate time.Time
	EffectiveEndDate   *time.Time // nil = vigente sin fecha de fin
	IsActive           bool
	CreatedAt          time.Time
}

// BOMLine es un par (componente, cantidad por unidad) dentro de una versión.
// QuantityPerUnit > 0. Un BOM puede referenciar el mismo componente en varias
// líneas; el cálculo de requerimientos las suma.
type BOMLine struct {
	ID              string
	BOMVersionID    string
	ComponentID     string
	QuantityPerUnit decimal.Decimal
	SortOrder       int
}
