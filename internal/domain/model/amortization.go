package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finora/liability-service/internal/domain/valueobject"
)

// Pure amortization math. Monetary values are decimals rounded to cents only
// at the edge of each function, never between intermediate steps, so rounding
// error cannot compound across a schedule.

// MonthlyPayment computes the fixed payment that amortizes balance over
// termMonths at the given annual rate (percent, e.g. 12 for 12%). Uses the
// standard reducing-balance annuity formula:
//
//	r       = annualRatePct / 100 / 12
//	payment = balance * r / (1 - (1+r)^-n)
//
// A zero rate degenerates to an even split.
func MonthlyPayment(balance, annualRatePct decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if termMonths <= 0 {
		return decimal.Zero, ErrInvalidTerm
	}
	if balance.Sign() <= 0 {
		return decimal.Zero, nil
	}

	r := monthlyRate(annualRatePct)
	if r == 0 {
		return balance.Div(decimal.NewFromInt(int64(termMonths))).Round(2), nil
	}

	// The power term is computed in float64, then converted back to decimal
	// for the monetary result.
	factor := math.Pow(1+r, float64(termMonths))
	payment := balance.InexactFloat64() * r * factor / (factor - 1)
	return decimal.NewFromFloat(payment).Round(2), nil
}

// RemainingPayments solves the annuity formula for the number of months
// needed to pay balance down to zero with the given fixed payment. When the
// payment does not exceed one month of interest the loan never amortizes and
// ErrNonAmortizing is returned instead of an infinite term.
func RemainingPayments(balance, payment, annualRatePct decimal.Decimal) (int, error) {
	if balance.Sign() <= 0 {
		return 0, nil
	}
	if payment.Sign() <= 0 {
		return 0, ErrNonAmortizing
	}

	r := monthlyRate(annualRatePct)
	if r == 0 {
		n := balance.Div(payment).Ceil()
		return int(n.IntPart()), nil
	}

	b := balance.InexactFloat64()
	p := payment.InexactFloat64()
	if p <= b*r {
		return 0, ErrNonAmortizing
	}

	// n = -ln(1 - B*r/P) / ln(1+r), rounded up to whole periods. The small
	// epsilon keeps payments that were themselves rounded to cents from
	// tipping into an extra period.
	n := -math.Log(1-b*r/p) / math.Log(1+r)
	return int(math.Ceil(n - 1e-9)), nil
}

// MonthsBetween returns the whole-month distance from a to b. A partial
// month does not count: Jan 15 to Mar 14 is one month, Jan 15 to Mar 15 is
// two. The result is negative when b precedes a.
func MonthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return months
}

// ScheduleEntry is one period of a computed payment schedule.
type ScheduleEntry struct {
	DueDate          time.Time
	Amount           decimal.Decimal
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	RemainingBalance decimal.Decimal
	Period           int
}

// GenerateSchedule computes the period-by-period breakdown for paying
// balance down with fixed installment payments, one per month starting one
// month after start.
//
// Interest per period depends on the interest type: reducing charges the
// monthly rate on the outstanding balance, fixed charges it on the starting
// balance every period, none charges nothing. The final entry absorbs any
// rounding drift so that the principal components sum to balance exactly;
// if the balance runs out before termMonths periods the schedule is simply
// shorter.
func GenerateSchedule(
	balance, installment, annualRatePct decimal.Decimal,
	interestType valueobject.InterestType,
	start time.Time,
	termMonths int,
) ([]ScheduleEntry, error) {
	if termMonths <= 0 {
		return nil, ErrInvalidTerm
	}
	if balance.Sign() <= 0 {
		return nil, nil
	}

	monthlyRateDec := annualRatePct.Div(decimal.NewFromInt(1200))
	outstanding := balance

	entries := make([]ScheduleEntry, 0, termMonths)
	for period := 1; period <= termMonths; period++ {
		dueDate := start.AddDate(0, period, 0)

		var interest decimal.Decimal
		switch {
		case interestType.Equal(valueobject.InterestTypeNone):
			interest = decimal.Zero
		case interestType.Equal(valueobject.InterestTypeFixed):
			interest = balance.Mul(monthlyRateDec).Round(2)
		default:
			interest = outstanding.Mul(monthlyRateDec).Round(2)
		}

		amount := installment
		principal := amount.Sub(interest)
		if principal.IsNegative() {
			principal = decimal.Zero
		}

		// Last period, either by count or because the balance is about to be
		// exhausted: settle the remainder exactly.
		if period == termMonths || principal.GreaterThanOrEqual(outstanding) {
			principal = outstanding
			amount = principal.Add(interest)
		}

		outstanding = outstanding.Sub(principal)

		entries = append(entries, ScheduleEntry{
			Period:           len(entries) + 1,
			DueDate:          dueDate,
			Amount:           amount,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: outstanding,
		})

		if outstanding.Sign() <= 0 {
			break
		}
	}

	return entries, nil
}

func monthlyRate(annualRatePct decimal.Decimal) float64 {
	return annualRatePct.InexactFloat64() / 100 / 12
}
