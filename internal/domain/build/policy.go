package build

// ShortagePolicy decide qué pasa cuando required > available. El request
// puede forzar en ambos sentidos; "inherit" delega en la configuración de la
// empresa (allow_negative_inventory). Nota: un "block" explícito por request
// SÍ suprime el allow a nivel de empresa (decisión registrada en DESIGN.md).
type ShortagePolicy string

const (
	ShortageInherit ShortagePolicy = "inherit"
	ShortageBlock   ShortagePolicy = "block"
	ShortageAllow   ShortagePolicy = "allow"
)

// Valid indica si el valor es un miembro del enum.
func (p ShortagePolicy) Valid() bool {
	switch p {
	case ShortageInherit, ShortageBlock, ShortageAllow:
		return true
	}
	return false
}

// AllowsShortage resuelve la política efectiva contra el setting de la empresa.
func (p ShortagePolicy) AllowsShortage(companyAllowsNegative bool) bool {
	switch p {
	case ShortageAllow:
		return true
	case ShortageBlock:
		return false
	default:
		return companyAllowsNegative
	}
}
