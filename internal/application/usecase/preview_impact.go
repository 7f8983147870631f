package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/domain/port"
	"github.com/finora/liability-service/internal/domain/service"
	"github.com/finora/liability-service/internal/domain/valueobject"
)

// PreviewImpactUseCase answers "what happens if I change X" for one
// liability without mutating anything. It is called on every interactive
// edit; callers debounce.
type PreviewImpactUseCase struct {
	liabilityRepo port.LiabilityRepository
	analyzer      *service.ImpactAnalyzer
}

// NewPreviewImpactUseCase wires dependencies.
func NewPreviewImpactUseCase(
	liabilityRepo port.LiabilityRepository,
	analyzer *service.ImpactAnalyzer,
) *PreviewImpactUseCase {
	return &PreviewImpactUseCase{
		liabilityRepo: liabilityRepo,
		analyzer:      analyzer,
	}
}

// Execute computes the preview.
func (uc *PreviewImpactUseCase) Execute(
	ctx context.Context,
	req dto.PreviewImpactRequest,
) (dto.ImpactPreviewResponse, error) {
	now := time.Now().UTC()

	// 1. Parse the proposed field and constraint mode.
	field, err := valueobject.NewProposedField(req.ProposedField)
	if err != nil {
		return dto.ImpactPreviewResponse{}, fmt.Errorf("parse proposed field: %w", err)
	}
	mode := valueobject.ConstraintMode{}
	if req.ConstraintMode != "" {
		mode, err = valueobject.NewConstraintMode(req.ConstraintMode)
		if err != nil {
			return dto.ImpactPreviewResponse{}, fmt.Errorf("parse constraint mode: %w", err)
		}
	}

	// 2. Retrieve the liability's current terms.
	liability, err := uc.liabilityRepo.FindByID(ctx, req.LiabilityID)
	if err != nil {
		return dto.ImpactPreviewResponse{}, fmt.Errorf("find liability: %w", err)
	}

	// 3. Analyze.
	preview, err := uc.analyzer.Analyze(
		service.CurrentTerms{
			Balance:       liability.CurrentBalance(),
			Payment:       liability.PeriodicalPayment(),
			AnnualRatePct: liability.InterestRateAPY(),
			EndDate:       liability.TargetedPayoffDate(),
			AsOf:          now,
		},
		service.ProposedChange{
			Field:         field,
			Amount:        req.Amount,
			Date:          req.Date,
			Mode:          mode,
			CustomPayment: req.CustomPayment,
		},
	)
	if err != nil {
		return dto.ImpactPreviewResponse{}, fmt.Errorf("analyze impact: %w", err)
	}

	return dto.ImpactPreviewResponse{
		NewPayment:       preview.NewPayment,
		NewTermMonths:    preview.NewTermMonths,
		NewEndDate:       preview.NewEndDate,
		NewTotalInterest: preview.NewTotalInterest,
		PaymentChange:    preview.PaymentChange,
		TermChangeMonths: preview.TermChangeMonths,
		InterestChange:   preview.InterestChange,
	}, nil
}
