package inventory

import (
	"context"
	"time"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/dto"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/entity"
)

// RegisterMovementFromRequest adapta el request HTTP al caso de uso
// RegisterMovement. Usar desde handlers que ya tienen companyID y userID.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, companyID, userID string, in dto.RegisterMovementRequest) (*entity.Transaction, error) {
	input := MovementInput{
		CompanyID:      companyID,
		UserID:         userID,
		ComponentID:    in.ComponentID,
		LocationID:     in.LocationID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Type:           in.Type,
		Quantity:       in.Quantity,
		UnitCost:       in.UnitCost,
		LotID:          in.LotID,
		LotNumber:      in.LotNumber,
		Supplier:       in.Supplier,
		Reason:         in.Reason,
		Notes:          in.Notes,
	}
	if in.Date != "" {
		d, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		input.Date = d
	}
	if in.ExpiryDate != "" {
		d, err := time.Parse("2006-01-02", in.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		input.ExpiryDate = &d
	}
	return uc.RegisterMovement(ctx, input)
}
