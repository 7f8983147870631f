package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/domain/model"
	"github.com/finora/liability-service/internal/domain/port"
	"github.com/finora/liability-service/internal/domain/valueobject"
)

// CreateLiabilityUseCase registers a new liability and generates its initial
// installment schedule.
type CreateLiabilityUseCase struct {
	liabilityRepo port.LiabilityRepository
	publisher     port.EventPublisher
}

// NewCreateLiabilityUseCase wires dependencies.
func NewCreateLiabilityUseCase(
	liabilityRepo port.LiabilityRepository,
	publisher port.EventPublisher,
) *CreateLiabilityUseCase {
	return &CreateLiabilityUseCase{
		liabilityRepo: liabilityRepo,
		publisher:     publisher,
	}
}

// Execute creates the liability.
func (uc *CreateLiabilityUseCase) Execute(
	ctx context.Context,
	req dto.CreateLiabilityRequest,
) (dto.LiabilityResponse, error) {
	now := time.Now().UTC()

	// 1. Resolve the interest type (empty defaults to reducing).
	interestType := valueobject.InterestType{}
	if req.InterestType != "" {
		var err error
		interestType, err = valueobject.NewInterestType(req.InterestType)
		if err != nil {
			return dto.LiabilityResponse{}, fmt.Errorf("parse interest type: %w", err)
		}
	}

	// 2. Create the aggregate with its schedule.
	liability, err := model.NewLiability(
		req.UserID, req.Name, req.Currency,
		req.Amount, req.AnnualRatePct,
		interestType, req.PeriodicalPayment,
		req.StartDate, req.TargetedPayoffDate,
		now,
	)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("create liability: %w", err)
	}

	// 3. Persist.
	if err := uc.liabilityRepo.Save(ctx, liability); err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("save liability: %w", err)
	}

	// 4. Publish events.
	if err := uc.publisher.Publish(ctx, liability.DomainEvents()...); err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.NewLiabilityResponse(liability), nil
}
