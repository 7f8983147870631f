package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/domain/event"
	"github.com/finora/liability-service/internal/domain/model"
	"github.com/finora/liability-service/internal/domain/port"
	"github.com/finora/liability-service/internal/domain/service"
	"github.com/finora/liability-service/internal/domain/valueobject"
)

// ExecuteSettlementUseCase commits a close-out: materializes every
// adjustment as a ledger movement and deletes the liability with its
// schedule, all in one transaction. A storage failure leaves the liability
// exactly as it was and the caller may retry.
type ExecuteSettlementUseCase struct {
	liabilityRepo port.LiabilityRepository
	ledger        port.LedgerReader
	executor      port.SettlementExecutor
	publisher     port.EventPublisher
	reconciler    *service.SettlementReconciler
	logger        *slog.Logger
}

// NewExecuteSettlementUseCase wires dependencies.
func NewExecuteSettlementUseCase(
	liabilityRepo port.LiabilityRepository,
	ledger port.LedgerReader,
	executor port.SettlementExecutor,
	publisher port.EventPublisher,
	reconciler *service.SettlementReconciler,
	logger *slog.Logger,
) *ExecuteSettlementUseCase {
	return &ExecuteSettlementUseCase{
		liabilityRepo: liabilityRepo,
		ledger:        ledger,
		executor:      executor,
		publisher:     publisher,
		reconciler:    reconciler,
		logger:        logger,
	}
}

// Execute runs the close-out.
func (uc *ExecuteSettlementUseCase) Execute(
	ctx context.Context,
	req dto.ExecuteSettlementRequest,
) (dto.ExecuteSettlementResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the liability.
	liability, err := uc.liabilityRepo.FindByID(ctx, req.LiabilityID)
	if err != nil {
		return dto.ExecuteSettlementResponse{}, fmt.Errorf("find liability: %w", err)
	}

	// 2. Verify the typed confirmation against the liability name.
	if err := uc.reconciler.ConfirmDeletion(req.Confirmation, liability.Name()); err != nil {
		return dto.ExecuteSettlementResponse{}, err
	}

	// 3. Snapshot owed and funds.
	funds, err := uc.ledger.LiabilityFunds(ctx, req.LiabilityID)
	if err != nil {
		return dto.ExecuteSettlementResponse{}, fmt.Errorf("read ledger: %w", err)
	}
	fundsTotal := decimal.Zero
	for _, f := range funds {
		fundsTotal = fundsTotal.Add(f.Balance)
	}
	status := uc.reconciler.ComputeStatus(liability.OriginalAmount(), liability.RemainingOwed(), fundsTotal)

	// 4. Project the adjustments and check the unaccounted remainder.
	adjustments, err := parseAdjustments(req.Adjustments)
	if err != nil {
		return dto.ExecuteSettlementResponse{}, err
	}
	projection, err := uc.reconciler.Project(status, adjustments)
	if err != nil {
		return dto.ExecuteSettlementResponse{}, fmt.Errorf("project adjustments: %w", err)
	}

	finalAction := valueobject.FinalAction{}
	if req.FinalAction != "" {
		finalAction, err = valueobject.NewFinalAction(req.FinalAction)
		if err != nil {
			return dto.ExecuteSettlementResponse{}, fmt.Errorf("parse final action: %w", err)
		}
	}
	if err := uc.reconciler.CheckExecutable(projection, finalAction); err != nil {
		return dto.ExecuteSettlementResponse{}, err
	}

	// 5. Materialize adjustments and the final action as ledger movements.
	movements := uc.buildMovements(liability, adjustments, projection, finalAction, funds, now)

	// 6. Commit atomically: movements, installment deletion, liability
	// deletion. Nothing is kept on failure.
	if err := uc.executor.ExecuteSettlement(ctx, liability.ID(), movements); err != nil {
		return dto.ExecuteSettlementResponse{}, fmt.Errorf("execute settlement: %w", err)
	}

	// 7. Publish. The deletion is already committed, so a publish failure
	// is logged rather than surfaced.
	settled := event.NewLiabilitySettled(liability.ID(), liability.UserID(), len(adjustments), finalAction.String())
	if err := uc.publisher.Publish(ctx, settled); err != nil {
		uc.logger.Warn("settlement committed but event publish failed",
			"liability_id", liability.ID(),
			"error", err,
		)
	}

	return dto.ExecuteSettlementResponse{
		LiabilityID: liability.ID(),
		Deleted:     true,
		Movements:   len(movements),
	}, nil
}

// buildMovements turns the adjustment list plus the chosen final action into
// the ledger rows the executor will write. Funds leaving the liability's
// scope are negative.
func (uc *ExecuteSettlementUseCase) buildMovements(
	liability model.Liability,
	adjustments []service.SettlementAdjustment,
	projection service.SettlementProjection,
	finalAction valueobject.FinalAction,
	funds []port.AccountFunds,
	now time.Time,
) []model.AccountMovement {
	movements := make([]model.AccountMovement, 0, len(adjustments)+len(funds))

	for _, adj := range adjustments {
		occurredAt := adj.Date
		if occurredAt.IsZero() {
			occurredAt = now
		}
		movements = append(movements, model.NewAccountMovement(
			adj.AccountID, liability.ID(), adj.Type, adj.Amount.Neg(), liability.Currency(), adj.Note, occurredAt,
		))
	}

	switch {
	case finalAction.Equal(valueobject.FinalActionForgiveDebt):
		// Owed exceeds funds: the remainder is forgiven, recorded as a
		// conversion to personal funds with no account movement.
		if projection.Unaccounted.Sign() > 0 {
			movements = append(movements, model.NewAccountMovement(
				"", liability.ID(), valueobject.AdjustmentConvertToPersonal,
				projection.Unaccounted, liability.Currency(), "debt forgiven at settlement", now,
			))
		}

	case finalAction.Equal(valueobject.FinalActionEraseFunds):
		// Funds exceed owed: deduct the remainder from the accounts
		// holding it, largest balance first.
		remaining := projection.Unaccounted.Neg()
		for _, f := range funds {
			if remaining.Sign() <= 0 {
				break
			}
			take := f.Balance
			if take.GreaterThan(remaining) {
				take = remaining
			}
			if take.Sign() <= 0 {
				continue
			}
			movements = append(movements, model.NewAccountMovement(
				f.AccountID, liability.ID(), valueobject.AdjustmentExpenseWriteoff,
				take.Neg(), liability.Currency(), "funds erased at settlement", now,
			))
			remaining = remaining.Sub(take)
		}
	}

	return movements
}
