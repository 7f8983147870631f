package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/domain/port"
	"github.com/finora/liability-service/internal/domain/valueobject"
)

// SkipInstallmentUseCase cancels one installment and redistributes its
// amount under the chosen policy.
type SkipInstallmentUseCase struct {
	liabilityRepo port.LiabilityRepository
	publisher     port.EventPublisher
}

// NewSkipInstallmentUseCase wires dependencies.
func NewSkipInstallmentUseCase(
	liabilityRepo port.LiabilityRepository,
	publisher port.EventPublisher,
) *SkipInstallmentUseCase {
	return &SkipInstallmentUseCase{
		liabilityRepo: liabilityRepo,
		publisher:     publisher,
	}
}

// Execute skips the installment.
func (uc *SkipInstallmentUseCase) Execute(
	ctx context.Context,
	req dto.SkipInstallmentRequest,
) (dto.LiabilityResponse, error) {
	now := time.Now().UTC()

	// 1. Parse the policy.
	policy, err := valueobject.NewSkipPolicy(req.Policy)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("parse skip policy: %w", err)
	}

	// 2. Retrieve the liability.
	liability, err := uc.liabilityRepo.FindByID(ctx, req.LiabilityID)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("find liability: %w", err)
	}

	// 3. Apply the skip.
	liability, err = liability.SkipInstallment(req.InstallmentID, policy, now)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("skip installment: %w", err)
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
