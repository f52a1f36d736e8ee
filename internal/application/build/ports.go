package build

import (
	"context"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que ledger, lot_balances e
// inventory_balances se escriban como una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.TransactionRepository,
		balanceRepo repository.InventoryBalanceRepository,
		lotRepo repository.LotRepository,
	) error) error
}
