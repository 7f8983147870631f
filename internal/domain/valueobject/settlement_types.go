package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// AdjustmentType – immutable value object
// ---------------------------------------------------------------------------

// AdjustmentType classifies a settlement adjustment. Repayment reduces the
// amount still owed; the other three reduce the liability funds sitting in
// accounts.
type AdjustmentType struct {
	value string
}

const (
	adjustmentRepayment         = "REPAYMENT"
	adjustmentRefund            = "REFUND"
	adjustmentConvertToPersonal = "CONVERT_TO_PERSONAL"
	adjustmentExpenseWriteoff   = "EXPENSE_WRITEOFF"
)

var (
	AdjustmentRepayment         = AdjustmentType{value: adjustmentRepayment}
	AdjustmentRefund            = AdjustmentType{value: adjustmentRefund}
	AdjustmentConvertToPersonal = AdjustmentType{value: adjustmentConvertToPersonal}
	AdjustmentExpenseWriteoff   = AdjustmentType{value: adjustmentExpenseWriteoff}
)

var validAdjustmentTypes = map[string]AdjustmentType{
	adjustmentRepayment:         AdjustmentRepayment,
	adjustmentRefund:            AdjustmentRefund,
	adjustmentConvertToPersonal: AdjustmentConvertToPersonal,
	adjustmentExpenseWriteoff:   AdjustmentExpenseWriteoff,
}

// NewAdjustmentType creates an AdjustmentType from a raw string.
func NewAdjustmentType(s string) (AdjustmentType, error) {
	v, ok := validAdjustmentTypes[s]
	if !ok {
		return AdjustmentType{}, fmt.Errorf("invalid adjustment type: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (t AdjustmentType) String() string { return t.value }

// IsZero returns true when not initialised.
func (t AdjustmentType) IsZero() bool { return t.value == "" }

// Equal returns true when both types match.
func (t AdjustmentType) Equal(other AdjustmentType) bool { return t.value == other.value }

// ReducesOwed reports whether this adjustment type reduces the remaining
// owed side of the settlement (as opposed to the funds side).
func (t AdjustmentType) ReducesOwed() bool { return t.value == adjustmentRepayment }

// RequiresAccount reports whether this adjustment type must name the account
// the money moves through.
func (t AdjustmentType) RequiresAccount() bool { return t.value != adjustmentRepayment }

// ---------------------------------------------------------------------------
// FinalAction – immutable value object
// ---------------------------------------------------------------------------

// FinalAction is the explicit disposition of an unaccounted settlement
// remainder. It is never inferred; execution without one fails while the two
// sides differ.
type FinalAction struct {
	value string
}

const (
	finalActionForgiveDebt = "FORGIVE_DEBT"
	finalActionEraseFunds  = "ERASE_FUNDS"
)

var (
	FinalActionForgiveDebt = FinalAction{value: finalActionForgiveDebt}
	FinalActionEraseFunds  = FinalAction{value: finalActionEraseFunds}
)

var validFinalActions = map[string]FinalAction{
	finalActionForgiveDebt: FinalActionForgiveDebt,
	finalActionEraseFunds:  FinalActionEraseFunds,
}

// NewFinalAction creates a FinalAction from a raw string.
func NewFinalAction(s string) (FinalAction, error) {
	v, ok := validFinalActions[s]
	if !ok {
		return FinalAction{}, fmt.Errorf("invalid final action: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (a FinalAction) String() string { return a.value }

// IsZero returns true when not initialised.
func (a FinalAction) IsZero() bool { return a.value == "" }

// Equal returns true when both actions match.
func (a FinalAction) Equal(other FinalAction) bool { return a.value == other.value }
