package repository

import (
	"time"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia del ledger.
// Las transacciones son inmutables: no hay Update ni Delete.
type TransactionRepository interface {
	// Create persiste el header y todas sus líneas juntas.
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	ListByCompany(companyID string, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error)
	CountByCompany(companyID string) (int64, error)
}
