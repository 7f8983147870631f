package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/domain/port"
)

// MarkInstallmentPaidUseCase completes one open installment and reduces the
// liability balance by its principal component.
type MarkInstallmentPaidUseCase struct {
	liabilityRepo port.LiabilityRepository
	publisher     port.EventPublisher
}

// NewMarkInstallmentPaidUseCase wires dependencies.
func NewMarkInstallmentPaidUseCase(
	liabilityRepo port.LiabilityRepository,
	publisher port.EventPublisher,
) *MarkInstallmentPaidUseCase {
	return &MarkInstallmentPaidUseCase{
		liabilityRepo: liabilityRepo,
		publisher:     publisher,
	}
}

// Execute marks the installment paid.
func (uc *MarkInstallmentPaidUseCase) Execute(
	ctx context.Context,
	req dto.MarkInstallmentPaidRequest,
) (dto.LiabilityResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the liability.
	liability, err := uc.liabilityRepo.FindByID(ctx, req.LiabilityID)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("find liability: %w", err)
	}

	// 2. Complete the installment.
	liability, err = liability.MarkInstallmentPaid(req.InstallmentID, now)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("mark installment paid: %w", err)
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
