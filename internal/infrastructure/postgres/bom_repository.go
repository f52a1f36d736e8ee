package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

var _ repository.BOMVersionRepository = (*BOMVersionRepo)(nil)

// BOMVersionRepo implementación del puerto BOMVersionRepository sobre PostgreSQL.
type BOMVersionRepo struct {
	q Querier
}

// NewBOMVersionRepository construye el adaptador de persistencia para versiones de BOM.
func NewBOMVersionRepository(q Querier) *BOMVersionRepo {
	return &BOMVersionRepo{q: q}
}

// Create persiste la versión y todas sus líneas. Debe invocarse dentro de una
// transacción cuando importa la atomicidad versión+líneas.
func (r *BOMVersionRepo) Create(version *entity.BOMVersion, lines []entity.BOMLine) error {
	query := `
		INSERT INTO bom_versions (id, sku_id, version_name, effective_start_date, effective_end_date, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		version.ID, version.SKUID, version.VersionName, version.EffectiveStartDate,
		version.EffectiveEndDate, version.IsActive, version.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bom version: %w", err)
	}

	lineQuery := `
		INSERT INTO bom_lines (id, bom_version_id, component_id, quantity_per_unit, sort_order)
		VALUES ($1, $2, $3, $4, $5)`
	for _, line := range lines {
		if _, err := r.q.Exec(context.Background(), lineQuery,
			line.ID, line.BOMVersionID, line.ComponentID, line.QuantityPerUnit, line.SortOrder,
		); err != nil {
			return fmt.Errorf("insert bom line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una versión de BOM por ID.
func (r *BOMVersionRepo) GetByID(id string) (*entity.BOMVersion, error) {
	query := `
		SELECT id, sku_id, version_name, effective_start_date, effective_end_date, is_active, created_at
		FROM bom_versions WHERE id = $1`
	var v entity.BOMVersion
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.SKUID, &v.VersionName, &v.EffectiveStartDate, &v.EffectiveEndDate, &v.IsActive, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bom version: %w", err)
	}
	return &v, nil
}

// ListBySKU lista todas las versiones de un SKU (activas e inactivas), más
// reciente primero por fecha de vigencia.
func (r *BOMVersionRepo) ListBySKU(skuID string) ([]*entity.BOMVersion, error) {
	query := `
		SELECT id, sku_id, version_name, effective_start_date, effective_end_date, is_active, created_at
		FROM bom_versions WHERE sku_id = $1
		ORDER BY effective_start_date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, skuID)
	if err != nil {
		return nil, fmt.Errorf("list bom versions: %w", err)
	}
	defer rows.Close()

	var versions []*entity.BOMVersion
	for rows.Next() {
		var v entity.BOMVersion
		if err := rows.Scan(&v.ID, &v.SKUID, &v.VersionName, &v.EffectiveStartDate, &v.EffectiveEndDate, &v.IsActive, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bom version: %w", err)
		}
		versions = append(versions, &v)
	}
	return versions, rows.Err()
}

// LinesByVersion devuelve las líneas de una versión en su orden declarado.
func (r *BOMVersionRepo) LinesByVersion(versionID string) ([]entity.BOMLine, error) {
	query := `
		SELECT id, bom_version_id, component_id, quantity_per_unit, sort_order
		FROM bom_lines WHERE bom_version_id = $1 ORDER BY sort_order, id`
	rows, err := r.q.Query(context.Background(), query, versionID)
	if err != nil {
		return nil, fmt.Errorf("list bom lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.BOMLine
	for rows.Next() {
		var line entity.BOMLine
		if err := rows.Scan(&line.ID, &line.BOMVersionID, &line.ComponentID, &line.QuantityPerUnit, &line.SortOrder); err != nil {
			return nil, fmt.Errorf("scan bom line: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// EndDate cierra el intervalo de vigencia de una versión.
func (r *BOMVersionRepo) EndDate(versionID string, end time.Time) error {
	query := `UPDATE bom_versions SET effective_end_date = $2 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, versionID, end)
	if err != nil {
		return fmt.Errorf("end-date bom version: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActive cambia el flag de activación de una versión.
func (r *BOMVersionRepo) SetActive(versionID string, active bool) error {
	query := `UPDATE bom_versions SET is_active = $2 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, versionID, active)
	if err != nil {
		return fmt.Errorf("set bom version active: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
