package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/inventory"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de inventario de forma
// transaccional (initial, receipt, adjustment, transfer) con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback. Los builds tienen su propio caso de
// uso en application/build.
type RegisterMovementUseCase struct {
	txRunner      TxRunner
	companyRepo   repository.CompanyRepository
	componentRepo repository.ComponentRepository
	locationRepo  repository.LocationRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	companyRepo repository.CompanyRepository,
	componentRepo repository.ComponentRepository,
	locationRepo repository.LocationRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:      txRunner,
		companyRepo:   companyRepo,
		componentRepo: componentRepo,
		locationRepo:  locationRepo,
	}
}

// MovementInput entrada para registrar un movimiento.
// Para initial/receipt/adjustment: ComponentID, LocationID, Quantity;
// UnitCost obligatorio en initial/receipt. Para transfer: ComponentID,
// FromLocationID, ToLocationID, Quantity > 0. LotNumber solo en recepciones;
// LotID solo en ajustes sobre un lote existente.
type MovementInput struct {
	CompanyID      string
	UserID         string
	ComponentID    string
	LocationID     string
	FromLocationID string
	ToLocationID   string
	Type           string
	Date           time.Time
	Quantity       decimal.Decimal
	UnitCost       *decimal.Decimal
	LotID          string
	LotNumber      string
	ExpiryDate     *time.Time
	Supplier       string
	Reason         string
	Notes          string
}

// RegisterMovement valida la entrada, aplica el Tenant Guard sobre componente
// y ubicaciones, y ejecuta la escritura (ledger + saldos) en una transacción.
// Devuelve el ID de la transacción creada.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in MovementInput) (*entity.Transaction, error) {
	switch in.Type {
	case entity.TxTypeInitial, entity.TxTypeReceipt:
		if in.ComponentID == "" || !in.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		if in.UnitCost == nil || in.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if in.LotID != "" {
			return nil, domain.ErrInvalidInput
		}
	case entity.TxTypeAdjustment:
		if in.ComponentID == "" || in.Quantity.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		if in.LotNumber != "" {
			return nil, domain.ErrInvalidInput
		}
	case entity.TxTypeTransfer:
		if in.ComponentID == "" || in.FromLocationID == "" || in.ToLocationID == "" {
			return nil, domain.ErrInvalidInput
		}
		if in.FromLocationID == in.ToLocationID || !in.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	component, err := uc.componentRepo.GetByID(in.ComponentID)
	if err != nil {
		return nil, err
	}
	// Inexistente y cross-tenant responden igual.
	if component == nil || component.CompanyID != in.CompanyID {
		return nil, domain.ErrNotFound
	}

	if in.Type == entity.TxTypeTransfer {
		if err := uc.guardLocation(in.CompanyID, in.FromLocationID); err != nil {
			return nil, err
		}
		if err := uc.guardLocation(in.CompanyID, in.ToLocationID); err != nil {
			return nil, err
		}
	} else {
		if in.LocationID == "" {
			loc, err := uc.locationRepo.GetDefaultByCompany(in.CompanyID)
			if err != nil {
				return nil, err
			}
			if loc == nil {
				return nil, domain.ErrNotFound
			}
			in.LocationID = loc.ID
		} else if err := uc.guardLocation(in.CompanyID, in.LocationID); err != nil {
			return nil, err
		}
	}

	if in.Date.IsZero() {
		in.Date = time.Now().UTC().Truncate(24 * time.Hour)
	}

	var created *entity.Transaction
	err = uc.txRunner.RunMovement(ctx, func(
		txRepo repository.TransactionRepository,
		balanceRepo repository.InventoryBalanceRepository,
		lotRepo repository.LotRepository,
		componentRepo repository.ComponentRepository,
	) error {
		var err error
		switch in.Type {
		case entity.TxTypeInitial, entity.TxTypeReceipt:
			created, err = uc.doReceipt(txRepo, balanceRepo, lotRepo, componentRepo, component, in)
		case entity.TxTypeAdjustment:
			created, err = uc.doAdjustment(txRepo, balanceRepo, lotRepo, component, company, in)
		case entity.TxTypeTransfer:
			created, err = uc.doTransfer(txRepo, balanceRepo, component, in)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *RegisterMovementUseCase) guardLocation(companyID, locationID string) error {
	loc, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return err
	}
	if loc == nil || loc.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return nil
}

// doReceipt: bloquea el saldo, recalcula costo promedio ponderado, crea o
// acumula el lote si viene lot_number, agrega la línea positiva y aplica el
// delta materializado.
func (uc *RegisterMovementUseCase) doReceipt(
	txRepo repository.TransactionRepository,
	balanceRepo repository.InventoryBalanceRepository,
	lotRepo repository.LotRepository,
	componentRepo repository.ComponentRepository,
	component *entity.Component,
	in MovementInput,
) (*entity.Transaction, error) {
	bal, err := balanceRepo.GetForUpdate(in.ComponentID, in.LocationID)
	if err != nil {
		return nil, err
	}
	unitCost := *in.UnitCost

	newCost := inventory.WeightedAverageCost(bal.Quantity, component.CostPerUnit, in.Quantity, unitCost)
	if err := componentRepo.UpdateCost(in.ComponentID, newCost); err != nil {
		return nil, err
	}

	var lotID *string
	if in.LotNumber != "" {
		lot, err := lotRepo.GetByComponentAndNumber(in.ComponentID, in.LotNumber)
		if err != nil {
			return nil, err
		}
		if lot == nil {
			lot = &entity.Lot{
				ID:               uuid.New().String(),
				ComponentID:      in.ComponentID,
				LotNumber:        in.LotNumber,
				ExpiryDate:       in.ExpiryDate,
				ReceivedQuantity: in.Quantity,
				CreatedAt:        time.Now(),
			}
			if err := lotRepo.CreateWithBalance(lot, in.Quantity); err != nil {
				return nil, err
			}
		} else if err := lotRepo.AddReceipt(lot.ID, in.Quantity); err != nil {
			return nil, err
		}
		lotID = &lot.ID
	}

	tx := uc.newTransaction(in)
	tx.Lines = []entity.TransactionLine{{
		ID:             uuid.New().String(),
		TransactionID:  tx.ID,
		ComponentID:    in.ComponentID,
		LotID:          lotID,
		LocationID:     in.LocationID,
		QuantityChange: in.Quantity,
		CostPerUnit:    unitCost,
	}}
	if err := txRepo.Create(tx); err != nil {
		return nil, err
	}
	if err := balanceRepo.ApplyDelta(in.ComponentID, in.LocationID, in.Quantity); err != nil {
		return nil, err
	}
	return tx, nil
}

// doAdjustment: delta firmado, opcionalmente contra un lote del componente.
// Solo puede dejar el saldo negativo si la empresa lo permite.
func (uc *RegisterMovementUseCase) doAdjustment(
	txRepo repository.TransactionRepository,
	balanceRepo repository.InventoryBalanceRepository,
	lotRepo repository.LotRepository,
	component *entity.Component,
	company *entity.Company,
	in MovementInput,
) (*entity.Transaction, error) {
	bal, err := balanceRepo.GetForUpdate(in.ComponentID, in.LocationID)
	if err != nil {
		return nil, err
	}
	if bal.Quantity.Add(in.Quantity).IsNegative() && !company.AllowNegativeInventory {
		return nil, &domain.InsufficientInventoryError{Items: []domain.ShortageItem{{
			ComponentID:   component.ID,
			ComponentName: component.Name,
			SKUCode:       component.SKUCode,
			Required:      in.Quantity.Neg(),
			Available:     bal.Quantity,
			Shortage:      in.Quantity.Neg().Sub(bal.Quantity),
		}}}
	}

	var lotID *string
	if in.LotID != "" {
		lot, err := lotRepo.GetByID(in.LotID)
		if err != nil {
			return nil, err
		}
		if lot == nil || lot.ComponentID != in.ComponentID {
			return nil, domain.ErrNotFoundOrAccessDenied
		}
		if err := lotRepo.AdjustBalance(lot.ID, in.Quantity); err != nil {
			return nil, err
		}
		lotID = &lot.ID
	}

	unitCost := component.CostPerUnit
	if in.UnitCost != nil {
		unitCost = *in.UnitCost
	}
	tx := uc.newTransaction(in)
	tx.Lines = []entity.TransactionLine{{
		ID:             uuid.New().String(),
		TransactionID:  tx.ID,
		ComponentID:    in.ComponentID,
		LotID:          lotID,
		LocationID:     in.LocationID,
		QuantityChange: in.Quantity,
		CostPerUnit:    unitCost,
	}}
	if err := txRepo.Create(tx); err != nil {
		return nil, err
	}
	if err := balanceRepo.ApplyDelta(in.ComponentID, in.LocationID, in.Quantity); err != nil {
		return nil, err
	}
	return tx, nil
}

// doTransfer: resta en origen y suma en destino, misma transacción, dos
// líneas. Los lotes son globales por componente, así que el traslado es
// siempre pooled.
func (uc *RegisterMovementUseCase) doTransfer(
	txRepo repository.TransactionRepository,
	balanceRepo repository.InventoryBalanceRepository,
	component *entity.Component,
	in MovementInput,
) (*entity.Transaction, error) {
	origin, err := balanceRepo.GetForUpdate(in.ComponentID, in.FromLocationID)
	if err != nil {
		return nil, err
	}
	if origin.Quantity.LessThan(in.Quantity) {
		return nil, &domain.InsufficientInventoryError{Items: []domain.ShortageItem{{
			ComponentID:   component.ID,
			ComponentName: component.Name,
			SKUCode:       component.SKUCode,
			Required:      in.Quantity,
			Available:     origin.Quantity,
			Shortage:      in.Quantity.Sub(origin.Quantity),
		}}}
	}

	unitCost := component.CostPerUnit
	tx := uc.newTransaction(in)
	tx.LocationID = in.FromLocationID
	tx.FromLocationID = in.FromLocationID
	tx.ToLocationID = in.ToLocationID
	tx.Lines = []entity.TransactionLine{
		{
			ID:             uuid.New().String(),
			TransactionID:  tx.ID,
			ComponentID:    in.ComponentID,
			LocationID:     in.FromLocationID,
			QuantityChange: in.Quantity.Neg(),
			CostPerUnit:    unitCost,
		},
		{
			ID:             uuid.New().String(),
			TransactionID:  tx.ID,
			ComponentID:    in.ComponentID,
			LocationID:     in.ToLocationID,
			QuantityChange: in.Quantity,
			CostPerUnit:    unitCost,
		},
	}
	if err := txRepo.Create(tx); err != nil {
		return nil, err
	}
	if err := balanceRepo.ApplyDelta(in.ComponentID, in.FromLocationID, in.Quantity.Neg()); err != nil {
		return nil, err
	}
	if err := balanceRepo.ApplyDelta(in.ComponentID, in.ToLocationID, in.Quantity); err != nil {
		return nil, err
	}
	return tx, nil
}

func (uc *RegisterMovementUseCase) newTransaction(in MovementInput) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New().String(),
		CompanyID:   in.CompanyID,
		Type:        in.Type,
		Date:        in.Date,
		LocationID:  in.LocationID,
		CreatedByID: in.UserID,
		Supplier:    in.Supplier,
		Reason:      in.Reason,
		Notes:       in.Notes,
		CreatedAt:   time.Now(),
	}
}
