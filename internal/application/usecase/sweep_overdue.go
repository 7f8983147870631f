package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/domain/port"
)

// SweepOverdueUseCase flips past-due pending installments (and their
// liabilities) to overdue. It runs on a cron schedule.
type SweepOverdueUseCase struct {
	liabilityRepo port.LiabilityRepository
	publisher     port.EventPublisher
	logger        *slog.Logger
}

// NewSweepOverdueUseCase wires dependencies.
func NewSweepOverdueUseCase(
	liabilityRepo port.LiabilityRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *SweepOverdueUseCase {
	return &SweepOverdueUseCase{
		liabilityRepo: liabilityRepo,
		publisher:     publisher,
		logger:        logger,
	}
}

// Execute runs one sweep. A failure on one liability does not stop the
// others; the first error is reported after the sweep finishes.
func (uc *SweepOverdueUseCase) Execute(ctx context.Context) (dto.SweepOverdueResponse, error) {
	now := time.Now().UTC()

	// 1. Find liabilities with pending installments past their due date.
	liabilities, err := uc.liabilityRepo.FindWithInstallmentsDueBefore(ctx, now)
	if err != nil {
		return dto.SweepOverdueResponse{}, fmt.Errorf("find past-due liabilities: %w", err)
	}

	var (
		resp     dto.SweepOverdueResponse
		firstErr error
	)

	// 2. Flip each one and persist.
	for _, liability := range liabilities {
		flipped, count := liability.MarkOverdue(now)
		if count == 0 {
			continue
		}
		if err := uc.liabilityRepo.Save(ctx, flipped); err != nil {
			uc.logger.Error("overdue sweep: save failed",
				"liability_id", liability.ID(),
				"error", err,
			)
			if firstErr == nil {
				firstErr = fmt.Errorf("save liability %s: %w", liability.ID(), err)
			}
			continue
		}
		if err := uc.publisher.Publish(ctx, flipped.DomainEvents()...); err != nil {
			uc.logger.Warn("overdue sweep: event publish failed",
				"liability_id", liability.ID(),
				"error", err,
			)
		}
		resp.LiabilitiesFlagged++
		resp.InstallmentsFlagged += count
	}

	return resp, firstErr
}
