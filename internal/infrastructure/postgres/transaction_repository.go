package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre
// PostgreSQL. El ledger es append-only: no hay Update ni Delete.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de persistencia del ledger. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const txColumns = `id, company_id, type, date, location_id, from_location_id, to_location_id,
		created_by_id, sales_channel, supplier, reason, notes,
		sku_id, bom_version_id, units_built, unit_bom_cost, total_bom_cost, created_at`

// Create persiste el header de la transacción y todas sus líneas. Debe
// invocarse dentro de una transacción de base de datos (vía TxRunner).
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + txColumns + `)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''),
			$8, $9, $10, $11, $12,
			NULLIF($13, ''), NULLIF($14, ''), $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.CompanyID, tx.Type, tx.Date, tx.LocationID, tx.FromLocationID, tx.ToLocationID,
		tx.CreatedByID, tx.SalesChannel, tx.Supplier, tx.Reason, tx.Notes,
		tx.SKUID, tx.BOMVersionID, tx.UnitsBuilt, tx.UnitBomCost, tx.TotalBomCost, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	lineQuery := `
		INSERT INTO transaction_lines (id, transaction_id, component_id, sku_id, lot_id, location_id, quantity_change, cost_per_unit)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8)`
	for _, line := range tx.Lines {
		if _, err := r.q.Exec(context.Background(), lineQuery,
			line.ID, line.TransactionID, line.ComponentID, line.SKUID,
			line.LotID, line.LocationID, line.QuantityChange, line.CostPerUnit,
		); err != nil {
			return fmt.Errorf("insert transaction line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una transacción con sus líneas.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions WHERE id = $1`
	tx, err := r.scanTransaction(r.q.QueryRow(context.Background(), query, id))
	if err != nil || tx == nil {
		return tx, err
	}

	lineQuery := `
		SELECT id, transaction_id, COALESCE(component_id, ''), COALESCE(sku_id, ''), lot_id, location_id, quantity_change, cost_per_unit
		FROM transaction_lines WHERE transaction_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), lineQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list transaction lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line entity.TransactionLine
		if err := rows.Scan(
			&line.ID, &line.TransactionID, &line.ComponentID, &line.SKUID,
			&line.LotID, &line.LocationID, &line.QuantityChange, &line.CostPerUnit,
		); err != nil {
			return nil, fmt.Errorf("scan transaction line: %w", err)
		}
		tx.Lines = append(tx.Lines, line)
	}
	return tx, rows.Err()
}

// ListByCompany lista transacciones de una empresa (sin líneas), con filtro
// opcional de rango de fechas, más reciente primero.
func (r *TransactionRepo) ListByCompany(companyID string, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions WHERE company_id = $1`
	args := []any{companyID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []*entity.Transaction
	for rows.Next() {
		tx, err := r.scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// CountByCompany cuenta las transacciones de una empresa.
func (r *TransactionRepo) CountByCompany(companyID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM transactions WHERE company_id = $1`, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

func (r *TransactionRepo) scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var tx entity.Transaction
	var locationID, fromLocationID, toLocationID, skuID, bomVersionID *string
	err := row.Scan(
		&tx.ID, &tx.CompanyID, &tx.Type, &tx.Date, &locationID, &fromLocationID, &toLocationID,
		&tx.CreatedByID, &tx.SalesChannel, &tx.Supplier, &tx.Reason, &tx.Notes,
		&skuID, &bomVersionID, &tx.UnitsBuilt, &tx.UnitBomCost, &tx.TotalBomCost, &tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	if locationID != nil {
		tx.LocationID = *locationID
	}
	if fromLocationID != nil {
		tx.FromLocationID = *fromLocationID
	}
	if toLocationID != nil {
		tx.ToLocationID = *toLocationID
	}
	if skuID != nil {
		tx.SKUID = *skuID
	}
	if bomVersionID != nil {
		tx.BOMVersionID = *bomVersionID
	}
	return &tx, nil
}
