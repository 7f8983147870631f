package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finora/liability-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateLiabilityRequest carries the data needed to register a new liability.
// PeriodicalPayment may be zero, in which case the annuity payment for the
// full term is derived.
type CreateLiabilityRequest struct {
	UserID             string          `json:"user_id"`
	Name               string          `json:"name"`
	Currency           string          `json:"currency"`
	Amount             decimal.Decimal `json:"amount"`
	AnnualRatePct      decimal.Decimal `json:"annual_rate_pct"`
	InterestType       string          `json:"interest_type"`
	PeriodicalPayment  decimal.Decimal `json:"periodical_payment"`
	StartDate          time.Time       `json:"start_date"`
	TargetedPayoffDate time.Time       `json:"targeted_payoff_date"`
}

// GetLiabilityRequest identifies a liability to retrieve.
type GetLiabilityRequest struct {
	LiabilityID string `json:"liability_id"`
}

// ListLiabilitiesRequest identifies a user whose liabilities to list.
type ListLiabilitiesRequest struct {
	UserID string `json:"user_id"`
}

// PreviewImpactRequest carries one proposed parameter edit. Amount is read
// for the total_amount, rate and payment fields; Date for end_date.
type PreviewImpactRequest struct {
	LiabilityID    string          `json:"liability_id"`
	ProposedField  string          `json:"proposed_field"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	ConstraintMode string          `json:"constraint_mode"`
	CustomPayment  decimal.Decimal `json:"custom_payment"`
}

// RecalculateScheduleRequest commits new terms and replaces the open
// installment tail.
type RecalculateScheduleRequest struct {
	LiabilityID string          `json:"liability_id"`
	NewPayment  decimal.Decimal `json:"new_payment"`
	NewRatePct  decimal.Decimal `json:"new_rate_pct"`
	NewEndDate  time.Time       `json:"new_end_date"`
}

// SkipInstallmentRequest cancels one installment under a redistribution
// policy.
type SkipInstallmentRequest struct {
	LiabilityID   string `json:"liability_id"`
	InstallmentID string `json:"installment_id"`
	Policy        string `json:"policy"`
}

// ChangeInstallmentAmountRequest edits one installment's amount under a
// propagation policy.
type ChangeInstallmentAmountRequest struct {
	LiabilityID   string          `json:"liability_id"`
	InstallmentID string          `json:"installment_id"`
	NewAmount     decimal.Decimal `json:"new_amount"`
	Policy        string          `json:"policy"`
}

// ChangeInstallmentDateRequest moves one installment's due date.
type ChangeInstallmentDateRequest struct {
	LiabilityID   string    `json:"liability_id"`
	InstallmentID string    `json:"installment_id"`
	NewDate       time.Time `json:"new_date"`
}

// MarkInstallmentPaidRequest completes one open installment.
type MarkInstallmentPaidRequest struct {
	LiabilityID   string `json:"liability_id"`
	InstallmentID string `json:"installment_id"`
}

// SettlementAdjustmentInput is one user-entered settlement correction.
type SettlementAdjustmentInput struct {
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	AccountID string          `json:"account_id"`
	Note      string          `json:"note"`
}

// GetSettlementStatusRequest fetches the close-out snapshot; when
// adjustments are supplied the projected state is returned alongside it.
type GetSettlementStatusRequest struct {
	LiabilityID string                      `json:"liability_id"`
	Adjustments []SettlementAdjustmentInput `json:"adjustments"`
}

// ExecuteSettlementRequest commits the close-out. Confirmation must match
// the liability's name exactly. FinalAction is required only when the
// adjusted sides do not balance.
type ExecuteSettlementRequest struct {
	LiabilityID  string                      `json:"liability_id"`
	Adjustments  []SettlementAdjustmentInput `json:"adjustments"`
	FinalAction  string                      `json:"final_action"`
	Confirmation string                      `json:"confirmation"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// InstallmentResponse is the external representation of a scheduled
// installment.
type InstallmentResponse struct {
	ID                 string          `json:"id"`
	LiabilityID        string          `json:"liability_id"`
	DueDate            time.Time       `json:"due_date"`
	Amount             decimal.Decimal `json:"amount"`
	Status             string          `json:"status"`
	PrincipalComponent decimal.Decimal `json:"principal_component"`
	InterestComponent  decimal.Decimal `json:"interest_component"`
	PaymentNumber      int             `json:"payment_number"`
	TotalPayments      int             `json:"total_payments"`
}

// LiabilityResponse is the external representation of a liability and its
// schedule.
type LiabilityResponse struct {
	ID                 string                `json:"id"`
	UserID             string                `json:"user_id"`
	Name               string                `json:"name"`
	Currency           string                `json:"currency"`
	OriginalAmount     decimal.Decimal       `json:"original_amount"`
	CurrentBalance     decimal.Decimal       `json:"current_balance"`
	InterestRateAPY    decimal.Decimal       `json:"interest_rate_apy"`
	InterestType       string                `json:"interest_type"`
	PeriodicalPayment  decimal.Decimal       `json:"periodical_payment"`
	StartDate          time.Time             `json:"start_date"`
	TargetedPayoffDate time.Time             `json:"targeted_payoff_date"`
	Status             string                `json:"status"`
	Schedule           []InstallmentResponse `json:"schedule"`
	Version            int                   `json:"version"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// ImpactPreviewResponse carries the computed preview with signed deltas.
type ImpactPreviewResponse struct {
	NewPayment       decimal.Decimal `json:"new_payment"`
	NewTermMonths    int             `json:"new_term_months"`
	NewEndDate       time.Time       `json:"new_end_date"`
	NewTotalInterest decimal.Decimal `json:"new_total_interest"`
	PaymentChange    decimal.Decimal `json:"payment_change"`
	TermChangeMonths int             `json:"term_change_months"`
	InterestChange   decimal.Decimal `json:"interest_change"`
}

// SettlementStatusResponse is the close-out snapshot plus the projection
// after the supplied adjustments.
type SettlementStatusResponse struct {
	LiabilityID        string          `json:"liability_id"`
	TotalLoan          decimal.Decimal `json:"total_loan"`
	RemainingOwed      decimal.Decimal `json:"remaining_owed"`
	FundsInAccounts    decimal.Decimal `json:"funds_in_accounts"`
	OverfundedBy       decimal.Decimal `json:"overfunded_by"`
	ProjectedRemaining decimal.Decimal `json:"projected_remaining"`
	ProjectedFunds     decimal.Decimal `json:"projected_funds"`
	Unaccounted        decimal.Decimal `json:"unaccounted"`
	Balanced           bool            `json:"balanced"`
}

// ExecuteSettlementResponse reports a committed close-out.
type ExecuteSettlementResponse struct {
	LiabilityID string `json:"liability_id"`
	Deleted     bool   `json:"deleted"`
	Movements   int    `json:"movements"`
}

// SweepOverdueResponse reports one run of the overdue sweep.
type SweepOverdueResponse struct {
	LiabilitiesFlagged  int `json:"liabilities_flagged"`
	InstallmentsFlagged int `json:"installments_flagged"`
}

// ---------------------------------------------------------------------------
// Mappers
// ---------------------------------------------------------------------------

// NewInstallmentResponse maps an installment entity to its DTO.
func NewInstallmentResponse(inst model.Installment) InstallmentResponse {
	return InstallmentResponse{
		ID:                 inst.ID(),
		LiabilityID:        inst.LiabilityID(),
		DueDate:            inst.DueDate(),
		Amount:             inst.Amount(),
		Status:             inst.Status().String(),
		PrincipalComponent: inst.PrincipalComponent(),
		InterestComponent:  inst.InterestComponent(),
		PaymentNumber:      inst.PaymentNumber(),
		TotalPayments:      inst.TotalPayments(),
	}
}

// NewLiabilityResponse maps a liability aggregate to its DTO.
func NewLiabilityResponse(l model.Liability) LiabilityResponse {
	schedule := l.Schedule()
	installments := make([]InstallmentResponse, 0, len(schedule))
	for _, inst := range schedule {
		installments = append(installments, NewInstallmentResponse(inst))
	}
	return LiabilityResponse{
		ID:                 l.ID(),
		UserID:             l.UserID(),
		Name:               l.Name(),
		Currency:           l.Currency(),
		OriginalAmount:     l.OriginalAmount(),
		CurrentBalance:     l.CurrentBalance(),
		InterestRateAPY:    l.InterestRateAPY(),
		InterestType:       l.InterestType().String(),
		PeriodicalPayment:  l.PeriodicalPayment(),
		StartDate:          l.StartDate(),
		TargetedPayoffDate: l.TargetedPayoffDate(),
		Status:             l.Status().String(),
		Schedule:           installments,
		Version:            l.Version(),
		CreatedAt:          l.CreatedAt(),
		UpdatedAt:          l.UpdatedAt(),
	}
}
