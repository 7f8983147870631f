package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/domain/port"
	"github.com/finora/liability-service/internal/domain/valueobject"
)

// ChangeInstallmentAmountUseCase edits one installment's amount under a
// propagation policy.
type ChangeInstallmentAmountUseCase struct {
	liabilityRepo port.LiabilityRepository
	publisher     port.EventPublisher
}

// NewChangeInstallmentAmountUseCase wires dependencies.
func NewChangeInstallmentAmountUseCase(
	liabilityRepo port.LiabilityRepository,
	publisher port.EventPublisher,
) *ChangeInstallmentAmountUseCase {
	return &ChangeInstallmentAmountUseCase{
		liabilityRepo: liabilityRepo,
		publisher:     publisher,
	}
}

// Execute changes the installment amount.
func (uc *ChangeInstallmentAmountUseCase) Execute(
	ctx context.Context,
	req dto.ChangeInstallmentAmountRequest,
) (dto.LiabilityResponse, error) {
	now := time.Now().UTC()

	// 1. Parse the policy.
	policy, err := valueobject.NewAmountChangePolicy(req.Policy)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("parse amount change policy: %w", err)
	}

	// 2. Retrieve the liability.
	liability, err := uc.liabilityRepo.FindByID(ctx, req.LiabilityID)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("find liability: %w", err)
	}

	// 3. Apply the edit.
	liability, err = liability.ChangeInstallmentAmount(req.InstallmentID, req.NewAmount, policy, now)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("change installment amount: %w", err)
	}

	// 4. Persist.
	if err := uc.liabilityRepo.Save(ctx, liability); err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("save liability: %w", err)
	}

	// 5. Publish events.
	if err := uc.publisher.Publish(ctx, liability.DomainEvents()...); err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.NewLiabilityResponse(liability), nil
}
