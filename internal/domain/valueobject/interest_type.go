package valueobject

import "fmt"

// InterestType selects how per-period interest is computed for a liability.
type InterestType struct {
	value string
}

const (
	// interestTypeReducing charges interest on the outstanding balance each
	// period (standard amortizing loan).
	interestTypeReducing = "REDUCING"
	// interestTypeFixed charges a flat interest amount computed on the
	// starting balance every period.
	interestTypeFixed = "FIXED"
	// interestTypeNone charges no interest at all.
	interestTypeNone = "NONE"
)

var (
	InterestTypeReducing = InterestType{value: interestTypeReducing}
	InterestTypeFixed    = InterestType{value: interestTypeFixed}
	InterestTypeNone     = InterestType{value: interestTypeNone}
)

var validInterestTypes = map[string]InterestType{
	interestTypeReducing: InterestTypeReducing,
	interestTypeFixed:    InterestTypeFixed,
	interestTypeNone:     InterestTypeNone,
}

// NewInterestType creates an InterestType from a raw string.
func NewInterestType(s string) (InterestType, error) {
	v, ok := validInterestTypes[s]
	if !ok {
		return InterestType{}, fmt.Errorf("invalid interest type: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (t InterestType) String() string { return t.value }

// IsZero returns true when not initialised.
func (t InterestType) IsZero() bool { return t.value == "" }

// Equal returns true when both types match.
func (t InterestType) Equal(other InterestType) bool { return t.value == other.value }
