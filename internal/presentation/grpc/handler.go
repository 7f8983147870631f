package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/application/usecase"
	"github.com/finora/liability-service/internal/domain/model"
)

// LiabilityHandler implements LiabilityServiceServer on top of the use
// cases.
type LiabilityHandler struct {
	UnimplementedLiabilityServiceServer

	createLiability   *usecase.CreateLiabilityUseCase
	getLiability      *usecase.GetLiabilityUseCase
	listLiabilities   *usecase.ListLiabilitiesUseCase
	previewImpact     *usecase.PreviewImpactUseCase
	recalculate       *usecase.RecalculateScheduleUseCase
	skipInstallment   *usecase.SkipInstallmentUseCase
	changeAmount      *usecase.ChangeInstallmentAmountUseCase
	changeDate        *usecase.ChangeInstallmentDateUseCase
	markPaid          *usecase.MarkInstallmentPaidUseCase
	settlementStatus  *usecase.GetSettlementStatusUseCase
	executeSettlement *usecase.ExecuteSettlementUseCase
}

// NewLiabilityHandler creates a new handler with all use-case dependencies.
func NewLiabilityHandler(
	createLiability *usecase.CreateLiabilityUseCase,
	getLiability *usecase.GetLiabilityUseCase,
	listLiabilities *usecase.ListLiabilitiesUseCase,
	previewImpact *usecase.PreviewImpactUseCase,
	recalculate *usecase.RecalculateScheduleUseCase,
	skipInstallment *usecase.SkipInstallmentUseCase,
	changeAmount *usecase.ChangeInstallmentAmountUseCase,
	changeDate *usecase.ChangeInstallmentDateUseCase,
	markPaid *usecase.MarkInstallmentPaidUseCase,
	settlementStatus *usecase.GetSettlementStatusUseCase,
	executeSettlement *usecase.ExecuteSettlementUseCase,
) *LiabilityHandler {
	return &LiabilityHandler{
		createLiability:   createLiability,
		getLiability:      getLiability,
		listLiabilities:   listLiabilities,
		previewImpact:     previewImpact,
		recalculate:       recalculate,
		skipInstallment:   skipInstallment,
		changeAmount:      changeAmount,
		changeDate:        changeDate,
		markPaid:          markPaid,
		settlementStatus:  settlementStatus,
		executeSettlement: executeSettlement,
	}
}

// CreateLiability registers a new liability.
func (h *LiabilityHandler) CreateLiability(ctx context.Context, req *CreateLiabilityRequest) (*CreateLiabilityResponse, error) {
	amount, err := parseDecimal("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	rate, err := parseOptionalDecimal("annual_rate_pct", req.AnnualRatePct)
	if err != nil {
		return nil, err
	}
	payment, err := parseOptionalDecimal("periodical_payment", req.PeriodicalPayment)
	if err != nil {
		return nil, err
	}
	startDate, err := parseTime("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	payoffDate, err := parseTime("targeted_payoff_date", req.TargetedPayoffDate)
	if err != nil {
		return nil, err
	}

	resp, err := h.createLiability.Execute(ctx, dto.CreateLiabilityRequest{
		UserID:             req.UserID,
		Name:               req.Name,
		Currency:           req.Currency,
		Amount:             amount,
		AnnualRatePct:      rate,
		InterestType:       req.InterestType,
		PeriodicalPayment:  payment,
		StartDate:          startDate,
		TargetedPayoffDate: payoffDate,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &CreateLiabilityResponse{Liability: resp}, nil
}

// GetLiability retrieves one liability with its schedule.
func (h *LiabilityHandler) GetLiability(ctx context.Context, req *GetLiabilityRequest) (*GetLiabilityResponse, error) {
	resp, err := h.getLiability.Execute(ctx, dto.GetLiabilityRequest{LiabilityID: req.LiabilityID})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetLiabilityResponse{Liability: resp}, nil
}

// ListLiabilities retrieves all liabilities of one user.
func (h *LiabilityHandler) ListLiabilities(ctx context.Context, req *ListLiabilitiesRequest) (*ListLiabilitiesResponse, error) {
	resp, err := h.listLiabilities.Execute(ctx, dto.ListLiabilitiesRequest{UserID: req.UserID})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ListLiabilitiesResponse{Liabilities: resp}, nil
}

// PreviewImpact computes the impact of one proposed parameter change.
func (h *LiabilityHandler) PreviewImpact(ctx context.Context, req *PreviewImpactRequest) (*PreviewImpactResponse, error) {
	amount, err := parseOptionalDecimal("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	customPayment, err := parseOptionalDecimal("custom_payment", req.CustomPayment)
	if err != nil {
		return nil, err
	}
	date, err := parseOptionalTime("date", req.Date)
	if err != nil {
		return nil, err
	}

	resp, err := h.previewImpact.Execute(ctx, dto.PreviewImpactRequest{
		LiabilityID:    req.LiabilityID,
		ProposedField:  req.ProposedField,
		Amount:         amount,
		Date:           date,
		ConstraintMode: req.ConstraintMode,
		CustomPayment:  customPayment,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &PreviewImpactResponse{Preview: resp}, nil
}

// RecalculateSchedule commits new terms and regenerates the open tail.
func (h *LiabilityHandler) RecalculateSchedule(ctx context.Context, req *RecalculateScheduleRequest) (*RecalculateScheduleResponse, error) {
	payment, err := parseDecimal("new_payment", req.NewPayment)
	if err != nil {
		return nil, err
	}
	rate, err := parseOptionalDecimal("new_rate_pct", req.NewRatePct)
	if err != nil {
		return nil, err
	}
	endDate, err := parseTime("new_end_date", req.NewEndDate)
	if err != nil {
		return nil, err
	}

	resp, err := h.recalculate.Execute(ctx, dto.RecalculateScheduleRequest{
		LiabilityID: req.LiabilityID,
		NewPayment:  payment,
		NewRatePct:  rate,
		NewEndDate:  endDate,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &RecalculateScheduleResponse{Liability: resp}, nil
}

// SkipInstallment cancels one installment under a redistribution policy.
func (h *LiabilityHandler) SkipInstallment(ctx context.Context, req *SkipInstallmentRequest) (*SkipInstallmentResponse, error) {
	resp, err := h.skipInstallment.Execute(ctx, dto.SkipInstallmentRequest{
		LiabilityID:   req.LiabilityID,
		InstallmentID: req.InstallmentID,
		Policy:        req.Policy,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &SkipInstallmentResponse{Liability: resp}, nil
}

// ChangeInstallmentAmount edits one installment's amount.
func (h *LiabilityHandler) ChangeInstallmentAmount(ctx context.Context, req *ChangeInstallmentAmountRequest) (*ChangeInstallmentAmountResponse, error) {
	amount, err := parseDecimal("new_amount", req.NewAmount)
	if err != nil {
		return nil, err
	}

	resp, err := h.changeAmount.Execute(ctx, dto.ChangeInstallmentAmountRequest{
		LiabilityID:   req.LiabilityID,
		InstallmentID: req.InstallmentID,
		NewAmount:     amount,
		Policy:        req.Policy,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ChangeInstallmentAmountResponse{Liability: resp}, nil
}

// ChangeInstallmentDate moves one installment's due date.
func (h *LiabilityHandler) ChangeInstallmentDate(ctx context.Context, req *ChangeInstallmentDateRequest) (*ChangeInstallmentDateResponse, error) {
	date, err := parseTime("new_date", req.NewDate)
	if err != nil {
		return nil, err
	}

	resp, err := h.changeDate.Execute(ctx, dto.ChangeInstallmentDateRequest{
		LiabilityID:   req.LiabilityID,
		InstallmentID: req.InstallmentID,
		NewDate:       date,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ChangeInstallmentDateResponse{Liability: resp}, nil
}

// MarkInstallmentPaid completes one open installment.
func (h *LiabilityHandler) MarkInstallmentPaid(ctx context.Context, req *MarkInstallmentPaidRequest) (*MarkInstallmentPaidResponse, error) {
	resp, err := h.markPaid.Execute(ctx, dto.MarkInstallmentPaidRequest{
		LiabilityID:   req.LiabilityID,
		InstallmentID: req.InstallmentID,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &MarkInstallmentPaidResponse{Liability: resp}, nil
}

// GetSettlementStatus computes the close-out snapshot and projection.
func (h *LiabilityHandler) GetSettlementStatus(ctx context.Context, req *GetSettlementStatusRequest) (*GetSettlementStatusResponse, error) {
	adjustments, err := parseAdjustmentInputs(req.Adjustments)
	if err != nil {
		return nil, err
	}

	resp, err := h.settlementStatus.Execute(ctx, dto.GetSettlementStatusRequest{
		LiabilityID: req.LiabilityID,
		Adjustments: adjustments,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetSettlementStatusResponse{Status: resp}, nil
}

// ExecuteSettlement commits the close-out and deletes the liability.
func (h *LiabilityHandler) ExecuteSettlement(ctx context.Context, req *ExecuteSettlementRequest) (*ExecuteSettlementResponse, error) {
	adjustments, err := parseAdjustmentInputs(req.Adjustments)
	if err != nil {
		return nil, err
	}

	resp, err := h.executeSettlement.Execute(ctx, dto.ExecuteSettlementRequest{
		LiabilityID:  req.LiabilityID,
		Adjustments:  adjustments,
		FinalAction:  req.FinalAction,
		Confirmation: req.Confirmation,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ExecuteSettlementResponse{Result: resp}, nil
}

// ---------------------------------------------------------------------------
// parsing and error mapping
// ---------------------------------------------------------------------------

func parseDecimal(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return d, nil
}

func parseOptionalDecimal(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return parseDecimal(field, s)
}

func parseTime(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return t, nil
}

func parseOptionalTime(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return parseTime(field, s)
}

func parseAdjustmentInputs(in []SettlementAdjustment) ([]dto.SettlementAdjustmentInput, error) {
	out := make([]dto.SettlementAdjustmentInput, 0, len(in))
	for _, adj := range in {
		amount, err := parseDecimal("adjustment amount", adj.Amount)
		if err != nil {
			return nil, err
		}
		date, err := parseOptionalTime("adjustment date", adj.Date)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.SettlementAdjustmentInput{
			Type:      adj.Type,
			Amount:    amount,
			Date:      date,
			AccountID: adj.AccountID,
			Note:      adj.Note,
		})
	}
	return out, nil
}

// toStatusError translates domain sentinels into gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, model.ErrLiabilityNotFound),
		errors.Is(err, model.ErrInstallmentNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrInvalidTerm),
		errors.Is(err, model.ErrBelowCurrentBalance),
		errors.Is(err, model.ErrOutOfRange),
		errors.Is(err, model.ErrMissingAccount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrNonAmortizing),
		errors.Is(err, model.ErrUnbalanced),
		errors.Is(err, model.ErrFinalActionMismatch),
		errors.Is(err, model.ErrConfirmationMismatch),
		errors.Is(err, model.ErrInstallmentNotOpen),
		errors.Is(err, model.ErrNoFollowingInstallment):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, model.ErrStorageFailure):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
