package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appbuild "github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/build"
	appinventory "github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/inventory"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

// TxRunner ejecuta funciones dentro de una transacción de base de datos,
// construyendo repositorios ligados a esa transacción. Si fn retorna error,
// la transacción completa se revierte (sin escrituras parciales).
type TxRunner struct {
	pool *pgxpool.Pool
}

var _ appbuild.TxRunner = (*TxRunner)(nil)
var _ appinventory.TxRunner = (*TxRunner)(nil)

// NewTxRunner crea un TxRunner sobre el pool dado.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run ejecuta fn dentro de una transacción con los repositorios que necesita
// el flujo de build: transacciones, saldos y lotes.
func (r *TxRunner) Run(ctx context.Context, fn func(txRepo repository.TransactionRepository, balanceRepo repository.InventoryBalanceRepository, lotRepo repository.LotRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("iniciar transacción: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback tras commit es no-op

	txRepo := NewTransactionRepository(tx)
	balanceRepo := NewInventoryBalanceRepository(tx)
	lotRepo := NewLotRepository(tx)

	if err := fn(txRepo, balanceRepo, lotRepo); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("confirmar transacción: %w", err)
	}
	return nil
}

// RunMovement ejecuta fn dentro de una transacción con los repositorios que
// necesita el registro de movimientos (incluye componentes para actualizar
// el costo promedio).
func (r *TxRunner) RunMovement(ctx context.Context, fn func(txRepo repository.TransactionRepository, balanceRepo repository.InventoryBalanceRepository, lotRepo repository.LotRepository, componentRepo repository.ComponentRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("iniciar transacción: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	txRepo := NewTransactionRepository(tx)
	balanceRepo := NewInventoryBalanceRepository(tx)
	lotRepo := NewLotRepository(tx)
	componentRepo := NewComponentRepository(tx)

	if err := fn(txRepo, balanceRepo, lotRepo, componentRepo); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("confirmar transacción: %w", err)
	}
	return nil
}
