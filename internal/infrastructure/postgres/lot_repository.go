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

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación del puerto LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de persistencia para lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// CreateWithBalance persiste el lote y su saldo inicial juntos.
func (r *LotRepo) CreateWithBalance(lot *entity.Lot, initialQuantity decimal.Decimal) error {
	query := `
		INSERT INTO lots (id, component_id, lot_number, expiry_date, received_quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.ComponentID, lot.LotNumber, lot.ExpiryDate, lot.ReceivedQuantity, lot.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lot: %w", err)
	}

	balanceQuery := `INSERT INTO lot_balances (lot_id, quantity, updated_at) VALUES ($1, $2, NOW())`
	if _, err := r.q.Exec(context.Background(), balanceQuery, lot.ID, initialQuantity); err != nil {
		return fmt.Errorf("insert lot balance: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	query := `
		SELECT id, component_id, lot_number, expiry_date, received_quantity, created_at
		FROM lots WHERE id = $1`
	var l entity.Lot
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.ComponentID, &l.LotNumber, &l.ExpiryDate, &l.ReceivedQuantity, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}

// GetByComponentAndNumber busca un lote por componente y número de lote.
func (r *LotRepo) GetByComponentAndNumber(componentID, lotNumber string) (*entity.Lot, error) {
	query := `
		SELECT id, component_id, lot_number, expiry_date, received_quantity, created_at
		FROM lots WHERE component_id = $1 AND lot_number = $2`
	var l entity.Lot
	err := r.q.QueryRow(context.Background(), query, componentID, lotNumber).Scan(
		&l.ID, &l.ComponentID, &l.LotNumber, &l.ExpiryDate, &l.ReceivedQuantity, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot by number: %w", err)
	}
	return &l, nil
}

// HasLots indica si el componente opera en modo loteado.
func (r *LotRepo) HasLots(componentID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM lots WHERE component_id = $1)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, componentID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check lots: %w", err)
	}
	return exists, nil
}

const lotAvailabilityQuery = `
	SELECT l.id, l.lot_number, l.expiry_date, b.quantity
	FROM lots l JOIN lot_balances b ON b.lot_id = l.id
	WHERE l.component_id = $1
	ORDER BY l.expiry_date ASC NULLS LAST, l.lot_number ASC`

// ListByComponent devuelve lote+saldo de un componente en orden FEFO (sin lock).
func (r *LotRepo) ListByComponent(componentID string) ([]*entity.LotAvailability, error) {
	return r.listAvailability(componentID, lotAvailabilityQuery)
}

// ListForUpdateByComponent bloquea los saldos del componente y los devuelve en
// orden FEFO. El lock va sobre lot_balances para serializar asignaciones
// concurrentes del mismo componente.
func (r *LotRepo) ListForUpdateByComponent(componentID string) ([]*entity.LotAvailability, error) {
	return r.listAvailability(componentID, lotAvailabilityQuery+` FOR UPDATE OF b`)
}

func (r *LotRepo) listAvailability(componentID, query string) ([]*entity.LotAvailability, error) {
	rows, err := r.q.Query(context.Background(), query, componentID)
	if err != nil {
		return nil, fmt.Errorf("list lot availability: %w", err)
	}
	defer rows.Close()

	var lots []*entity.LotAvailability
	for rows.Next() {
		var la entity.LotAvailability
		if err := rows.Scan(&la.LotID, &la.LotNumber, &la.ExpiryDate, &la.Quantity); err != nil {
			return nil, fmt.Errorf("scan lot availability: %w", err)
		}
		lots = append(lots, &la)
	}
	return lots, rows.Err()
}

// AddReceipt incrementa received_quantity del lote y su saldo.
func (r *LotRepo) AddReceipt(lotID string, quantity decimal.Decimal) error {
	query := `UPDATE lots SET received_quantity = received_quantity + $2 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, lotID, quantity)
	if err != nil {
		return fmt.Errorf("add lot receipt: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return r.AdjustBalance(lotID, quantity)
}

// AdjustBalance aplica un delta firmado al saldo del lote.
func (r *LotRepo) AdjustBalance(lotID string, delta decimal.Decimal) error {
	query := `UPDATE lot_balances SET quantity = quantity + $2, updated_at = NOW() WHERE lot_id = $1`
	cmd, err := r.q.Exec(context.Background(), query, lotID, delta)
	if err != nil {
		return fmt.Errorf("adjust lot balance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
