package service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finora/liability-service/internal/domain/model"
	"github.com/finora/liability-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ImpactAnalyzer – domain service for previewing parameter changes
// ---------------------------------------------------------------------------

// CurrentTerms is the snapshot of a liability the preview starts from.
type CurrentTerms struct {
	Balance       decimal.Decimal
	Payment       decimal.Decimal
	AnnualRatePct decimal.Decimal
	EndDate       time.Time
	AsOf          time.Time
}

// ProposedChange carries exactly one edited field plus the constraint mode
// that decides which side of the payment/term trade-off stays fixed.
// CustomPayment is only read when the mode is customPayment.
type ProposedChange struct {
	Field         valueobject.ProposedField
	Amount        decimal.Decimal
	Date          time.Time
	Mode          valueobject.ConstraintMode
	CustomPayment decimal.Decimal
}

// ImpactPreview is the computed outcome with signed deltas against the
// current terms, so callers can render "+/-" without re-deriving anything.
type ImpactPreview struct {
	NewPayment       decimal.Decimal
	NewTermMonths    int
	NewEndDate       time.Time
	NewTotalInterest decimal.Decimal
	PaymentChange    decimal.Decimal
	TermChangeMonths int
	InterestChange   decimal.Decimal
}

// ImpactAnalyzer answers "what happens if I change X" without touching the
// liability. It is pure and cheap; callers on an interactive edit stream are
// expected to debounce, the analyzer itself imposes no rate limit.
type ImpactAnalyzer struct{}

// NewImpactAnalyzer returns a new analyzer instance.
func NewImpactAnalyzer() *ImpactAnalyzer {
	return &ImpactAnalyzer{}
}

// Analyze computes the preview for one proposed change.
func (a *ImpactAnalyzer) Analyze(current CurrentTerms, change ProposedChange) (ImpactPreview, error) {
	if change.Field.IsZero() {
		return ImpactPreview{}, errors.New("proposed field is required")
	}

	oldTerm := model.MonthsBetween(current.AsOf, current.EndDate)
	if oldTerm <= 0 {
		return ImpactPreview{}, model.ErrInvalidTerm
	}
	oldInterest := totalInterest(current.Payment, oldTerm, current.Balance)

	balance := current.Balance
	rate := current.AnnualRatePct

	var (
		newPayment decimal.Decimal
		newTerm    int
		newEndDate time.Time
		err        error
	)

	switch {
	case change.Field.Equal(valueobject.ProposedFieldPayment):
		// Editing the payment directly: term always follows from the
		// current balance and rate.
		if change.Amount.Sign() <= 0 {
			return ImpactPreview{}, errors.New("payment must be positive")
		}
		newPayment = change.Amount
		newTerm, err = model.RemainingPayments(balance, newPayment, rate)
		if err != nil {
			return ImpactPreview{}, err
		}
		newEndDate = current.AsOf.AddDate(0, newTerm, 0)

	case change.Field.Equal(valueobject.ProposedFieldEndDate):
		// Editing the end date directly: payment always follows.
		newTerm = model.MonthsBetween(current.AsOf, change.Date)
		if newTerm <= 0 {
			return ImpactPreview{}, model.ErrInvalidTerm
		}
		newEndDate = change.Date
		newPayment, err = model.MonthlyPayment(balance, rate, newTerm)
		if err != nil {
			return ImpactPreview{}, err
		}

	case change.Field.Equal(valueobject.ProposedFieldTotalAmount),
		change.Field.Equal(valueobject.ProposedFieldRate):
		if change.Field.Equal(valueobject.ProposedFieldTotalAmount) {
			if change.Amount.LessThan(current.Balance) {
				return ImpactPreview{}, model.ErrBelowCurrentBalance
			}
			balance = change.Amount
		} else {
			if change.Amount.IsNegative() {
				return ImpactPreview{}, errors.New("interest rate cannot be negative")
			}
			rate = change.Amount
		}
		newPayment, newTerm, newEndDate, err = a.resolveConstraint(current, change, balance, rate)
		if err != nil {
			return ImpactPreview{}, err
		}

	default:
		return ImpactPreview{}, errors.New("unknown proposed field")
	}

	newInterest := totalInterest(newPayment, newTerm, balance)

	return ImpactPreview{
		NewPayment:       newPayment,
		NewTermMonths:    newTerm,
		NewEndDate:       newEndDate,
		NewTotalInterest: newInterest,
		PaymentChange:    newPayment.Sub(current.Payment),
		TermChangeMonths: newTerm - oldTerm,
		InterestChange:   newInterest.Sub(oldInterest),
	}, nil
}

// resolveConstraint applies the constraint mode for amount/rate edits.
func (a *ImpactAnalyzer) resolveConstraint(
	current CurrentTerms,
	change ProposedChange,
	balance, rate decimal.Decimal,
) (decimal.Decimal, int, time.Time, error) {
	switch {
	case change.Mode.Equal(valueobject.ConstraintKeepPaymentSame):
		term, err := model.RemainingPayments(balance, current.Payment, rate)
		if err != nil {
			return decimal.Zero, 0, time.Time{}, err
		}
		return current.Payment, term, current.AsOf.AddDate(0, term, 0), nil

	case change.Mode.Equal(valueobject.ConstraintKeepEndDateSame):
		term := model.MonthsBetween(current.AsOf, current.EndDate)
		if term <= 0 {
			return decimal.Zero, 0, time.Time{}, model.ErrInvalidTerm
		}
		payment, err := model.MonthlyPayment(balance, rate, term)
		if err != nil {
			return decimal.Zero, 0, time.Time{}, err
		}
		return payment, term, current.EndDate, nil

	case change.Mode.Equal(valueobject.ConstraintCustomPayment):
		if change.CustomPayment.Sign() <= 0 {
			return decimal.Zero, 0, time.Time{}, errors.New("custom payment must be positive")
		}
		term, err := model.RemainingPayments(balance, change.CustomPayment, rate)
		if err != nil {
			return decimal.Zero, 0, time.Time{}, err
		}
		return change.CustomPayment, term, current.AsOf.AddDate(0, term, 0), nil

	default:
		return decimal.Zero, 0, time.Time{}, errors.New("unknown constraint mode")
	}
}

// totalInterest is what the schedule pays on top of the principal over the
// whole term.
func totalInterest(payment decimal.Decimal, term int, balance decimal.Decimal) decimal.Decimal {
	return payment.Mul(decimal.NewFromInt(int64(term))).Sub(balance)
}
