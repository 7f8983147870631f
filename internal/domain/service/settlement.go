package service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finora/liability-service/internal/domain/model"
	"github.com/finora/liability-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// SettlementReconciler – domain service for closing out a liability
// ---------------------------------------------------------------------------

// SettlementStatus is the snapshot the close-out wizard starts from.
type SettlementStatus struct {
	TotalLoan       decimal.Decimal
	RemainingOwed   decimal.Decimal
	FundsInAccounts decimal.Decimal
	OverfundedBy    decimal.Decimal
}

// SettlementAdjustment is one user-entered correction. Repayment reduces the
// owed side; refund, convert_to_personal and expense_writeoff reduce the
// funds side and must name the account the money moves through.
type SettlementAdjustment struct {
	Type      valueobject.AdjustmentType
	Amount    decimal.Decimal
	Date      time.Time
	AccountID string
	Note      string
}

// SettlementProjection is the state after applying all adjustments to the
// snapshot. Unaccounted is signed (owed minus funds). Balanced means both
// sides reached exactly zero; two equal non-zero sides are not balanced.
type SettlementProjection struct {
	RemainingOwed   decimal.Decimal
	FundsInAccounts decimal.Decimal
	Unaccounted     decimal.Decimal
	Balanced        bool
}

// SettlementReconciler runs the snapshot -> adjustments -> unaccounted check
// sequence. It is pure; the atomic execute step lives at the storage
// boundary.
type SettlementReconciler struct{}

// NewSettlementReconciler returns a new reconciler instance.
func NewSettlementReconciler() *SettlementReconciler {
	return &SettlementReconciler{}
}

// ComputeStatus builds the snapshot from the liability balance and the
// ledger total tagged to it.
func (r *SettlementReconciler) ComputeStatus(totalLoan, remainingOwed, fundsInAccounts decimal.Decimal) SettlementStatus {
	overfunded := fundsInAccounts.Sub(remainingOwed)
	if overfunded.IsNegative() {
		overfunded = decimal.Zero
	}
	return SettlementStatus{
		TotalLoan:       totalLoan,
		RemainingOwed:   remainingOwed,
		FundsInAccounts: fundsInAccounts,
		OverfundedBy:    overfunded,
	}
}

// ValidateAdjustment rejects an adjustment before it ever joins the list.
func (r *SettlementReconciler) ValidateAdjustment(adj SettlementAdjustment) error {
	if adj.Type.IsZero() {
		return errors.New("adjustment type is required")
	}
	if adj.Amount.Sign() <= 0 {
		return errors.New("adjustment amount must be positive")
	}
	if adj.Type.RequiresAccount() && adj.AccountID == "" {
		return model.ErrMissingAccount
	}
	return nil
}

// Project applies the adjustments to the snapshot. Projected values are
// clamped at zero, they never go negative.
func (r *SettlementReconciler) Project(status SettlementStatus, adjustments []SettlementAdjustment) (SettlementProjection, error) {
	owed := status.RemainingOwed
	funds := status.FundsInAccounts

	for _, adj := range adjustments {
		if err := r.ValidateAdjustment(adj); err != nil {
			return SettlementProjection{}, err
		}
		if adj.Type.ReducesOwed() {
			owed = owed.Sub(adj.Amount)
			if owed.IsNegative() {
				owed = decimal.Zero
			}
		} else {
			funds = funds.Sub(adj.Amount)
			if funds.IsNegative() {
				funds = decimal.Zero
			}
		}
	}

	return SettlementProjection{
		RemainingOwed:   owed,
		FundsInAccounts: funds,
		Unaccounted:     owed.Sub(funds),
		Balanced:        owed.IsZero() && funds.IsZero(),
	}, nil
}

// CheckExecutable decides whether the wizard may proceed to the atomic
// execute step. An unbalanced projection needs an explicit final action
// matching the side of the remainder; the reconciler never infers one. Equal
// non-zero sides cannot be disposed of by a final action at all, they need
// adjustments.
func (r *SettlementReconciler) CheckExecutable(projection SettlementProjection, finalAction valueobject.FinalAction) error {
	if projection.Balanced {
		return nil
	}
	if finalAction.IsZero() {
		return model.ErrUnbalanced
	}
	switch projection.Unaccounted.Sign() {
	case 1:
		if !finalAction.Equal(valueobject.FinalActionForgiveDebt) {
			return model.ErrFinalActionMismatch
		}
	case -1:
		if !finalAction.Equal(valueobject.FinalActionEraseFunds) {
			return model.ErrFinalActionMismatch
		}
	default:
		return model.ErrUnbalanced
	}
	return nil
}

// ConfirmDeletion enforces the literal, case-sensitive confirmation token.
// The token is the liability's exact name.
func (r *SettlementReconciler) ConfirmDeletion(confirmation, liabilityName string) error {
	if confirmation != liabilityName {
		return model.ErrConfirmationMismatch
	}
	return nil
}
