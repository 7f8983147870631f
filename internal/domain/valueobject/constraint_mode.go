package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// ConstraintMode – immutable value object
// ---------------------------------------------------------------------------

// ConstraintMode states which side of the payment/term trade-off is held
// fixed when a liability's financial parameters change. It is a closed
// variant set dispatched exactly once by the impact analyzer; adding a new
// mode means touching that single dispatch point.
type ConstraintMode struct {
	value string
}

const (
	constraintKeepPaymentSame = "KEEP_PAYMENT_SAME"
	constraintKeepEndDateSame = "KEEP_END_DATE_SAME"
	constraintCustomPayment   = "CUSTOM_PAYMENT"
)

var (
	ConstraintKeepPaymentSame = ConstraintMode{value: constraintKeepPaymentSame}
	ConstraintKeepEndDateSame = ConstraintMode{value: constraintKeepEndDateSame}
	ConstraintCustomPayment   = ConstraintMode{value: constraintCustomPayment}
)

var validConstraintModes = map[string]ConstraintMode{
	constraintKeepPaymentSame: ConstraintKeepPaymentSame,
	constraintKeepEndDateSame: ConstraintKeepEndDateSame,
	constraintCustomPayment:   ConstraintCustomPayment,
}

// NewConstraintMode creates a ConstraintMode from a raw string.
func NewConstraintMode(s string) (ConstraintMode, error) {
	v, ok := validConstraintModes[s]
	if !ok {
		return ConstraintMode{}, fmt.Errorf("invalid constraint mode: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (m ConstraintMode) String() string { return m.value }

// IsZero returns true when not initialised.
func (m ConstraintMode) IsZero() bool { return m.value == "" }

// Equal returns true when both modes match.
func (m ConstraintMode) Equal(other ConstraintMode) bool { return m.value == other.value }

// ---------------------------------------------------------------------------
// ProposedField – immutable value object
// ---------------------------------------------------------------------------

// ProposedField identifies which single financial parameter a preview edit
// proposes to change.
type ProposedField struct {
	value string
}

const (
	proposedFieldTotalAmount = "TOTAL_AMOUNT"
	proposedFieldRate        = "RATE"
	proposedFieldPayment     = "PAYMENT"
	proposedFieldEndDate     = "END_DATE"
)

var (
	ProposedFieldTotalAmount = ProposedField{value: proposedFieldTotalAmount}
	ProposedFieldRate        = ProposedField{value: proposedFieldRate}
	ProposedFieldPayment     = ProposedField{value: proposedFieldPayment}
	ProposedFieldEndDate     = ProposedField{value: proposedFieldEndDate}
)

var validProposedFields = map[string]ProposedField{
	proposedFieldTotalAmount: ProposedFieldTotalAmount,
	proposedFieldRate:        ProposedFieldRate,
	proposedFieldPayment:     ProposedFieldPayment,
	proposedFieldEndDate:     ProposedFieldEndDate,
}

// NewProposedField creates a ProposedField from a raw string.
func NewProposedField(s string) (ProposedField, error) {
	v, ok := validProposedFields[s]
	if !ok {
		return ProposedField{}, fmt.Errorf("invalid proposed field: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (f ProposedField) String() string { return f.value }

// IsZero returns true when not initialised.
func (f ProposedField) IsZero() bool { return f.value == "" }

// Equal returns true when both fields match.
func (f ProposedField) Equal(other ProposedField) bool { return f.value == other.value }
