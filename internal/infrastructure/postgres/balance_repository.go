package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

var _ repository.InventoryBalanceRepository = (*InventoryBalanceRepo)(nil)

// InventoryBalanceRepo implementación del puerto InventoryBalanceRepository
// sobre PostgreSQL (usable con pool o tx).
type InventoryBalanceRepo struct {
	q Querier
}

// NewInventoryBalanceRepository construye el adaptador de persistencia para
// la proyección de saldos. Pasar pool o tx (Querier).
func NewInventoryBalanceRepository(q Querier) *InventoryBalanceRepo {
	return &InventoryBalanceRepo{q: q}
}

// Get devuelve el saldo (componente, ubicación), o saldo cero si no hay fila.
func (r *InventoryBalanceRepo) Get(componentID, locationID string) (*entity.InventoryBalance, error) {
	return r.get(componentID, locationID, "")
}

// GetForUpdate bloquea la fila del saldo (SELECT FOR UPDATE). Si la fila aún
// no existe devuelve saldo cero; el upsert de ApplyDelta la creará.
func (r *InventoryBalanceRepo) GetForUpdate(componentID, locationID string) (*entity.InventoryBalance, error) {
	return r.get(componentID, locationID, " FOR UPDATE")
}

func (r *InventoryBalanceRepo) get(componentID, locationID, lock string) (*entity.InventoryBalance, error) {
	query := `
		SELECT component_id, location_id, quantity, updated_at
		FROM inventory_balances WHERE component_id = $1 AND location_id = $2` + lock
	var b entity.InventoryBalance
	err := r.q.QueryRow(context.Background(), query, componentID, locationID).Scan(
		&b.ComponentID, &b.LocationID, &b.Quantity, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryBalance{
				ComponentID: componentID,
				LocationID:  locationID,
				Quantity:    decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("get inventory balance: %w", err)
	}
	return &b, nil
}

// ApplyDelta hace upsert incremental del saldo: crea la fila si no existe,
// si no suma el delta. Debe llamarse en la misma transacción que escribe las
// líneas del ledger para mantener la proyección consistente.
func (r *InventoryBalanceRepo) ApplyDelta(componentID, locationID string, delta decimal.Decimal) error {
	query := `
		INSERT INTO inventory_balances (component_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (component_id, location_id)
		DO UPDATE SET quantity = inventory_balances.quantity + EXCLUDED.quantity, updated_at = NOW()`
	if _, err := r.q.Exec(context.Background(), query, componentID, locationID, delta); err != nil {
		return fmt.Errorf("apply balance delta: %w", err)
	}
	return nil
}

// ListByCompany lista todos los saldos de los componentes de una empresa.
func (r *InventoryBalanceRepo) ListByCompany(companyID string) ([]*entity.InventoryBalance, error) {
	query := `
		SELECT b.component_id, b.location_id, b.quantity, b.updated_at
		FROM inventory_balances b
		JOIN components c ON c.id = b.component_id
		WHERE c.company_id = $1
		ORDER BY c.sku_code, b.location_id`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list inventory balances: %w", err)
	}
	defer rows.Close()

	var balances []*entity.InventoryBalance
	for rows.Next() {
		var b entity.InventoryBalance
		if err := rows.Scan(&b.ComponentID, &b.LocationID, &b.Quantity, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory balance: %w", err)
		}
		balances = append(balances, &b)
	}
	return balances, rows.Err()
}
