package build

import (
	"context"
	"time"

	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/application/dto"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain"
	"github.com/PaultheAICoder/SkuInventoryDatabase-sub001/internal/domain/build"
)

// ExecuteFromRequest adapta el request HTTP al caso de uso Execute. Parsea la
// fecha calendario (YYYY-MM-DD, sin componente horario) y normaliza la
// política de faltantes, incluido el flag legado allow_insufficient_inventory.
func (uc *BuildUseCase) ExecuteFromRequest(ctx context.Context, companyID, userID string, in dto.BuildRequest) (*BuildResult, error) {
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	policy := build.ShortagePolicy(in.ShortagePolicy)
	if policy == "" {
		policy = build.ShortageInherit
		if in.AllowInsufficientInventory {
			policy = build.ShortageAllow
		}
	}

	overrides := make([]LotOverride, 0, len(in.LotOverrides))
	for _, ov := range in.LotOverrides {
		allocs := make([]LotAllocation, 0, len(ov.Allocations))
		for _, a := range ov.Allocations {
			allocs = append(allocs, LotAllocation{LotID: a.LotID, Quantity: a.Quantity})
		}
		overrides = append(overrides, LotOverride{ComponentID: ov.ComponentID, Allocations: allocs})
	}

	return uc.Execute(ctx, BuildInput{
		CompanyID:        companyID,
		UserID:           userID,
		SKUID:            in.SKUID,
		BOMVersionID:     in.BOMVersionID,
		UnitsToBuild:     in.UnitsToBuild,
		Date:             date,
		LocationID:       in.LocationID,
		OutputLocationID: in.OutputLocationID,
		OutputQuantity:   in.OutputQuantity,
		SalesChannel:     in.SalesChannel,
		Notes:            in.Notes,
		ShortagePolicy:   policy,
		LotOverrides:     overrides,
	})
}

// ToResponse proyecta el resultado al contrato HTTP (201).
func (r *BuildResult) ToResponse() *dto.BuildResponse {
	tx := r.Transaction
	out := &dto.BuildResponse{
		ID:           tx.ID,
		Type:         tx.Type,
		Date:         tx.Date.Format("2006-01-02"),
		LocationID:   tx.LocationID,
		BOMVersion:   dto.BOMVersionRef{ID: r.BOMVersion.ID, VersionName: r.BOMVersion.VersionName},
		UnitsBuilt:   tx.UnitsBuilt,
		UnitBomCost:  tx.UnitBomCost,
		TotalBomCost: tx.TotalBomCost,
		CreatedAt:    tx.CreatedAt,
		Warning:      r.Warning,
	}
	if r.Warning {
		out.InsufficientItems = r.Shortages
	}
	for _, line := range tx.Lines {
		lr := dto.TransactionLineResponse{
			SKUID:          line.SKUID,
			LotID:          line.LotID,
			LocationID:     line.LocationID,
			QuantityChange: line.QuantityChange,
			CostPerUnit:    line.CostPerUnit,
		}
		if comp := r.Components[line.ComponentID]; comp != nil {
			lr.Component = &dto.ComponentRef{ID: comp.ID, Name: comp.Name}
		}
		out.Lines = append(out.Lines, lr)
	}
	return out
}
