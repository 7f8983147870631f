package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/domain/port"
)

// RecalculateScheduleUseCase commits changed payment/rate/end-date terms and
// replaces the open installment tail in one save.
type RecalculateScheduleUseCase struct {
	liabilityRepo port.LiabilityRepository
	publisher     port.EventPublisher
}

// NewRecalculateScheduleUseCase wires dependencies.
func NewRecalculateScheduleUseCase(
	liabilityRepo port.LiabilityRepository,
	publisher port.EventPublisher,
) *RecalculateScheduleUseCase {
	return &RecalculateScheduleUseCase{
		liabilityRepo: liabilityRepo,
		publisher:     publisher,
	}
}

// Execute regenerates the schedule.
func (uc *RecalculateScheduleUseCase) Execute(
	ctx context.Context,
	req dto.RecalculateScheduleRequest,
) (dto.LiabilityResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the liability.
	liability, err := uc.liabilityRepo.FindByID(ctx, req.LiabilityID)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("find liability: %w", err)
	}

	// 2. Regenerate the open tail from the committed terms.
	liability, err = liability.RecalculateSchedule(req.NewPayment, req.NewRatePct, req.NewEndDate, now)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("recalculate schedule: %w", err)
	}

	// 3. Persist the whole schedule atomically.
	if err := uc.liabilityRepo.Save(ctx, liability); err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("save liability: %w", err)
	}

	// 4. Publish events.
	if err := uc.publisher.Publish(ctx, liability.DomainEvents()...); err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.NewLiabilityResponse(liability), nil
}
