package inventory

import (
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/dto"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

// BalanceQueryUseCase consultas de solo lectura sobre la proyección de saldos.
type BalanceQueryUseCase struct {
	balanceRepo repository.InventoryBalanceRepository
}

// NewBalanceQueryUseCase construye el caso de uso de consulta de saldos.
func NewBalanceQueryUseCase(balanceRepo repository.InventoryBalanceRepository) *BalanceQueryUseCase {
	return &BalanceQueryUseCase{balanceRepo: balanceRepo}
}

// ListByCompany devuelve todos los saldos materializados de la empresa.
func (uc *BalanceQueryUseCase) ListByCompany(companyID string) ([]dto.BalanceResponse, error) {
	balances, err := uc.balanceRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, dto.BalanceResponse{
			ComponentID: b.ComponentID,
			LocationID:  b.LocationID,
			Quantity:    b.Quantity,
			UpdatedAt:   b.UpdatedAt,
		})
	}
	return out, nil
}
