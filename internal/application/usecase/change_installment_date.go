package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/domain/port"
)

// ChangeInstallmentDateUseCase moves one installment's due date within the
// liability's bounds.
type ChangeInstallmentDateUseCase struct {
	liabilityRepo port.LiabilityRepository
	publisher     port.EventPublisher
}

// NewChangeInstallmentDateUseCase wires dependencies.
func NewChangeInstallmentDateUseCase(
	liabilityRepo port.LiabilityRepository,
	publisher port.EventPublisher,
) *ChangeInstallmentDateUseCase {
	return &ChangeInstallmentDateUseCase{
		liabilityRepo: liabilityRepo,
		publisher:     publisher,
	}
}

// Execute changes the due date.
func (uc *ChangeInstallmentDateUseCase) Execute(
	ctx context.Context,
	req dto.ChangeInstallmentDateRequest,
) (dto.LiabilityResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the liability.
	liability, err := uc.liabilityRepo.FindByID(ctx, req.LiabilityID)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("find liability: %w", err)
	}

	// 2. Move the date (bounds-checked by the aggregate).
	liability, err = liability.ChangeInstallmentDate(req.InstallmentID, req.NewDate, now)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("change installment date: %w", err)
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
