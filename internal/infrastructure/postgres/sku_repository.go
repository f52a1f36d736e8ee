package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

var _ repository.SKURepository = (*SKURepo)(nil)

// SKURepo implementación del puerto SKURepository sobre PostgreSQL.
type SKURepo struct {
	q Querier
}

// NewSKURepository construye el adaptador de persistencia para SKUs.
func NewSKURepository(q Querier) *SKURepo {
	return &SKURepo{q: q}
}

// Create persiste un nuevo SKU. Code es único por empresa.
func (r *SKURepo) Create(sku *entity.SKU) error {
	query := `
		INSERT INTO skus (id, company_id, code, name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sku.ID, sku.CompanyID, sku.Code, sku.Name, sku.Status, sku.CreatedAt, sku.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

// GetByID obtiene un SKU por ID.
func (r *SKURepo) GetByID(id string) (*entity.SKU, error) {
	query := `
		SELECT id, company_id, code, name, status, created_at, updated_at
		FROM skus WHERE id = $1`
	var s entity.SKU
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.Code, &s.Name, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return &s, nil
}

// GetByCompanyAndCode obtiene un SKU por empresa y código.
func (r *SKURepo) GetByCompanyAndCode(companyID, code string) (*entity.SKU, error) {
	query := `
		SELECT id, company_id, code, name, status, created_at, updated_at
		FROM skus WHERE company_id = $1 AND code = $2`
	var s entity.SKU
	err := r.q.QueryRow(context.Background(), query, companyID, code).Scan(
		&s.ID, &s.CompanyID, &s.Code, &s.Name, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku by code: %w", err)
	}
	return &s, nil
}

// ListByCompany lista SKUs de una empresa con paginación.
func (r *SKURepo) ListByCompany(companyID string, limit, offset int) ([]*entity.SKU, error) {
	query := `
		SELECT id, company_id, code, name, status, created_at, updated_at
		FROM skus WHERE company_id = $1 ORDER BY code LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()

	var skus []*entity.SKU
	for rows.Next() {
		var s entity.SKU
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Code, &s.Name, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		skus = append(skus, &s)
	}
	return skus, rows.Err()
}
