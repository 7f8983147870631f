package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/domain/port"
	"github.com/finora/liability-service/internal/domain/service"
	"github.com/finora/liability-service/internal/domain/valueobject"
)

// GetSettlementStatusUseCase computes the close-out snapshot for a liability
// and, when adjustments are supplied, the projected state after them. The
// wizard calls this after every adjustment add/remove.
type GetSettlementStatusUseCase struct {
	liabilityRepo port.LiabilityRepository
	ledger        port.LedgerReader
	reconciler    *service.SettlementReconciler
}

// NewGetSettlementStatusUseCase wires dependencies.
func NewGetSettlementStatusUseCase(
	liabilityRepo port.LiabilityRepository,
	ledger port.LedgerReader,
	reconciler *service.SettlementReconciler,
) *GetSettlementStatusUseCase {
	return &GetSettlementStatusUseCase{
		liabilityRepo: liabilityRepo,
		ledger:        ledger,
		reconciler:    reconciler,
	}
}

// Execute computes snapshot and projection.
func (uc *GetSettlementStatusUseCase) Execute(
	ctx context.Context,
	req dto.GetSettlementStatusRequest,
) (dto.SettlementStatusResponse, error) {
	// 1. Retrieve the liability.
	liability, err := uc.liabilityRepo.FindByID(ctx, req.LiabilityID)
	if err != nil {
		return dto.SettlementStatusResponse{}, fmt.Errorf("find liability: %w", err)
	}

	// 2. Sum the liability-tagged funds across accounts.
	funds, err := uc.ledger.LiabilityFunds(ctx, req.LiabilityID)
	if err != nil {
		return dto.SettlementStatusResponse{}, fmt.Errorf("read ledger: %w", err)
	}
	fundsTotal := decimal.Zero
	for _, f := range funds {
		fundsTotal = fundsTotal.Add(f.Balance)
	}

	// 3. Snapshot.
	status := uc.reconciler.ComputeStatus(liability.OriginalAmount(), liability.RemainingOwed(), fundsTotal)

	// 4. Project the supplied adjustments.
	adjustments, err := parseAdjustments(req.Adjustments)
	if err != nil {
		return dto.SettlementStatusResponse{}, err
	}
	projection, err := uc.reconciler.Project(status, adjustments)
	if err != nil {
		return dto.SettlementStatusResponse{}, fmt.Errorf("project adjustments: %w", err)
	}

	return dto.SettlementStatusResponse{
		LiabilityID:        liability.ID(),
		TotalLoan:          status.TotalLoan,
		RemainingOwed:      status.RemainingOwed,
		FundsInAccounts:    status.FundsInAccounts,
		OverfundedBy:       status.OverfundedBy,
		ProjectedRemaining: projection.RemainingOwed,
		ProjectedFunds:     projection.FundsInAccounts,
		Unaccounted:        projection.Unaccounted,
		Balanced:           projection.Balanced,
	}, nil
}

// parseAdjustments maps adjustment inputs to domain values, validating each
// type string.
func parseAdjustments(inputs []dto.SettlementAdjustmentInput) ([]service.SettlementAdjustment, error) {
	out := make([]service.SettlementAdjustment, 0, len(inputs))
	for _, in := range inputs {
		kind, err := valueobject.NewAdjustmentType(in.Type)
		if err != nil {
			return nil, fmt.Errorf("parse adjustment type: %w", err)
		}
		out = append(out, service.SettlementAdjustment{
			Type:      kind,
			Amount:    in.Amount,
			Date:      in.Date,
			AccountID: in.AccountID,
			Note:      in.Note,
		})
	}
	return out, nil
}
