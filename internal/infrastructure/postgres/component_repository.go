package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

var _ repository.ComponentRepository = (*ComponentRepo)(nil)

// ComponentRepo implementación del puerto ComponentRepository sobre PostgreSQL (usable con pool o tx).
type ComponentRepo struct {
	q Querier
}

// NewComponentRepository construye el adaptador de persistencia para componentes. Pasar pool o tx (Querier).
func NewComponentRepository(q Querier) *ComponentRepo {
	return &ComponentRepo{q: q}
}

const componentColumns = `id, company_id, sku_code, name, description, cost_per_unit, reorder_point, lead_time_days, created_at, updated_at`

// Create persiste un nuevo componente. SKUCode es único por empresa.
func (r *ComponentRepo) Create(component *entity.Component) error {
	query := `
		INSERT INTO components (` + componentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		component.ID, component.CompanyID, component.SKUCode, component.Name, component.Description,
		component.CostPerUnit, component.ReorderPoint, component.LeadTimeDays,
		component.CreatedAt, component.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert component: %w", err)
	}
	return nil
}

// GetByID obtiene un componente por ID.
func (r *ComponentRepo) GetByID(id string) (*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE id = $1`
	var c entity.Component
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.SKUCode, &c.Name, &c.Description,
		&c.CostPerUnit, &c.ReorderPoint, &c.LeadTimeDays, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get component: %w", err)
	}
	return &c, nil
}

// GetByIDs obtiene varios componentes en un solo round-trip. IDs no
// encontrados simplemente no aparecen en el mapa resultado.
func (r *ComponentRepo) GetByIDs(ids []string) (map[string]*entity.Component, error) {
	result := make(map[string]*entity.Component, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	query := `SELECT ` + componentColumns + ` FROM components WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get components by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c entity.Component
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.SKUCode, &c.Name, &c.Description,
			&c.CostPerUnit, &c.ReorderPoint, &c.LeadTimeDays, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		result[c.ID] = &c
	}
	return result, rows.Err()
}

// GetByCompanyAndCode obtiene un componente por empresa y código.
func (r *ComponentRepo) GetByCompanyAndCode(companyID, skuCode string) (*entity.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE company_id = $1 AND sku_code = $2`
	var c entity.Component
	err := r.q.QueryRow(context.Background(), query, companyID, skuCode).Scan(
		&c.ID, &c.CompanyID, &c.SKUCode, &c.Name, &c.Description,
		&c.CostPerUnit, &c.ReorderPoint, &c.LeadTimeDays, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get component by code: %w", err)
	}
	return &c, nil
}

// Update actualiza los campos editables del componente. El stock no se toca
// aquí (se maneja vía movimientos).
func (r *ComponentRepo) Update(component *entity.Component) error {
	query := `
		UPDATE components
		SET name = $2, description = $3, cost_per_unit = $4, reorder_point = $5, lead_time_days = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		component.ID, component.Name, component.Description, component.CostPerUnit,
		component.ReorderPoint, component.LeadTimeDays, component.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update component: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateCost actualiza solo el costo promedio (usado por recepciones).
func (r *ComponentRepo) UpdateCost(componentID string, cost decimal.Decimal) error {
	query := `UPDATE components SET cost_per_unit = $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, componentID, cost)
	if err != nil {
		return fmt.Errorf("update component cost: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista componentes de una empresa con paginación.
func (r *ComponentRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Component, error) {
	query := `
		SELECT ` + componentColumns + ` FROM components
		WHERE company_id = $1 ORDER BY sku_code LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	defer rows.Close()

	var components []*entity.Component
	for rows.Next() {
		var c entity.Component
		if err := rows.Scan(
			&c.ID, &c.CompanyID, &c.SKUCode, &c.Name, &c.Description,
			&c.CostPerUnit, &c.ReorderPoint, &c.LeadTimeDays, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		components = append(components, &c)
	}
	return components, rows.Err()
}
