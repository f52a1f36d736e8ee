package usecase

import (
	"time"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/dto"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

// TransactionUseCase consultas de solo lectura sobre el ledger.
type TransactionUseCase struct {
	txRepo        repository.TransactionRepository
	componentRepo repository.ComponentRepository
}

// NewTransactionUseCase construye el caso de uso de consulta del ledger.
func NewTransactionUseCase(txRepo repository.TransactionRepository, componentRepo repository.ComponentRepository) *TransactionUseCase {
	return &TransactionUseCase{txRepo: txRepo, componentRepo: componentRepo}
}

// ListByCompany devuelve transacciones de la empresa (sin líneas), con filtro
// opcional de rango de fechas.
func (uc *TransactionUseCase) ListByCompany(companyID string, from, to *time.Time, page dto.PageRequest) (*dto.TransactionListResponse, error) {
	page.DefaultPage()
	txs, err := uc.txRepo.ListByCompany(companyID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.txRepo.CountByCompany(companyID)
	if err != nil {
		return nil, err
	}

	out := &dto.TransactionListResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(txs)),
		Page:         dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: int(total)},
	}
	for _, tx := range txs {
		out.Transactions = append(out.Transactions, toTransactionResponse(tx, nil))
	}
	return out, nil
}

// GetByID devuelve una transacción con sus líneas, solo si pertenece a la empresa.
func (uc *TransactionUseCase) GetByID(companyID, id string) (*dto.TransactionResponse, error) {
	tx, err := uc.txRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil || tx.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	componentIDs := make([]string, 0, len(tx.Lines))
	for _, line := range tx.Lines {
		if line.ComponentID != "" {
			componentIDs = append(componentIDs, line.ComponentID)
		}
	}
	components, err := uc.componentRepo.GetByIDs(componentIDs)
	if err != nil {
		return nil, err
	}

	resp := toTransactionResponse(tx, components)
	return &resp, nil
}

func toTransactionResponse(tx *entity.Transaction, components map[string]*entity.Component) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:             tx.ID,
		Type:           tx.Type,
		Date:           tx.Date.Format("2006-01-02"),
		LocationID:     tx.LocationID,
		FromLocationID: tx.FromLocationID,
		ToLocationID:   tx.ToLocationID,
		SKUID:          tx.SKUID,
		BOMVersionID:   tx.BOMVersionID,
		UnitsBuilt:     tx.UnitsBuilt,
		UnitBomCost:    tx.UnitBomCost,
		TotalBomCost:   tx.TotalBomCost,
		SalesChannel:   tx.SalesChannel,
		Supplier:       tx.Supplier,
		Reason:         tx.Reason,
		Notes:          tx.Notes,
		CreatedAt:      tx.CreatedAt,
	}
	for _, line := range tx.Lines {
		lr := dto.TransactionLineResponse{
			SKUID:          line.SKUID,
			LotID:          line.LotID,
			LocationID:     line.LocationID,
			QuantityChange: line.QuantityChange,
			CostPerUnit:    line.CostPerUnit,
		}
		if comp := components[line.ComponentID]; comp != nil {
			lr.Component = &dto.ComponentRef{ID: comp.ID, Name: comp.Name}
		}
		resp.Lines = append(resp.Lines, lr)
	}
	return resp
}
