package inventory

import (
	"context"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Los movimientos necesitan además el repo de
// componentes (actualización de costo promedio en recepciones).
type TxRunner interface {
	RunMovement(ctx context.Context, fn func(
		txRepo repository.TransactionRepository,
		balanceRepo repository.InventoryBalanceRepository,
		lotRepo repository.LotRepository,
		componentRepo repository.ComponentRepository,
	) error) error
}
