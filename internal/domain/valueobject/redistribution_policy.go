package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// SkipPolicy – immutable value object
// ---------------------------------------------------------------------------

// SkipPolicy states where a skipped installment's amount goes.
type SkipPolicy struct {
	value string
}

const (
	skipPolicyAddToNext    = "ADD_TO_NEXT"
	skipPolicyAddToEnd     = "ADD_TO_END"
	skipPolicySpreadAcross = "SPREAD_ACROSS"
)

var (
	SkipPolicyAddToNext    = SkipPolicy{value: skipPolicyAddToNext}
	SkipPolicyAddToEnd     = SkipPolicy{value: skipPolicyAddToEnd}
	SkipPolicySpreadAcross = SkipPolicy{value: skipPolicySpreadAcross}
)

var validSkipPolicies = map[string]SkipPolicy{
	skipPolicyAddToNext:    SkipPolicyAddToNext,
	skipPolicyAddToEnd:     SkipPolicyAddToEnd,
	skipPolicySpreadAcross: SkipPolicySpreadAcross,
}

// NewSkipPolicy creates a SkipPolicy from a raw string.
func NewSkipPolicy(s string) (SkipPolicy, error) {
	v, ok := validSkipPolicies[s]
	if !ok {
		return SkipPolicy{}, fmt.Errorf("invalid skip policy: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (p SkipPolicy) String() string { return p.value }

// IsZero returns true when not initialised.
func (p SkipPolicy) IsZero() bool { return p.value == "" }

// Equal returns true when both policies match.
func (p SkipPolicy) Equal(other SkipPolicy) bool { return p.value == other.value }

// ---------------------------------------------------------------------------
// AmountChangePolicy – immutable value object
// ---------------------------------------------------------------------------

// AmountChangePolicy states how an edited installment amount propagates to
// the rest of the schedule.
type AmountChangePolicy struct {
	value string
}

const (
	amountPolicyOneTime   = "ONE_TIME"
	amountPolicyUpdateAll = "UPDATE_ALL"
	amountPolicyAddToNext = "ADD_TO_NEXT"
)

var (
	AmountPolicyOneTime   = AmountChangePolicy{value: amountPolicyOneTime}
	AmountPolicyUpdateAll = AmountChangePolicy{value: amountPolicyUpdateAll}
	AmountPolicyAddToNext = AmountChangePolicy{value: amountPolicyAddToNext}
)

var validAmountChangePolicies = map[string]AmountChangePolicy{
	amountPolicyOneTime:   AmountPolicyOneTime,
	amountPolicyUpdateAll: AmountPolicyUpdateAll,
	amountPolicyAddToNext: AmountPolicyAddToNext,
}

// NewAmountChangePolicy creates an AmountChangePolicy from a raw string.
func NewAmountChangePolicy(s string) (AmountChangePolicy, error) {
	v, ok := validAmountChangePolicies[s]
	if !ok {
		return AmountChangePolicy{}, fmt.Errorf("invalid amount change policy: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (p AmountChangePolicy) String() string { return p.value }

// IsZero returns true when not initialised.
func (p AmountChangePolicy) IsZero() bool { return p.value == "" }

// Equal returns true when both policies match.
func (p AmountChangePolicy) Equal(other AmountChangePolicy) bool { return p.value == other.value }
