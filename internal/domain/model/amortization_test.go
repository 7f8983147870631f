package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finora/liability-service/internal/domain/model"
	"github.com/finora/liability-service/internal/domain/valueobject"
)

func TestMonthlyPayment(t *testing.T) {
	t.Run("rejects non-positive term", func(t *testing.T) {
		_, err := model.MonthlyPayment(decimal.NewFromInt(1000), decimal.NewFromInt(5), 0)
		assert.ErrorIs(t, err, model.ErrInvalidTerm)

		_, err = model.MonthlyPayment(decimal.NewFromInt(1000), decimal.NewFromInt(5), -3)
		assert.ErrorIs(t, err, model.ErrInvalidTerm)
	})

	t.Run("splits evenly at zero rate", func(t *testing.T) {
		payment, err := model.MonthlyPayment(decimal.NewFromInt(1200), decimal.Zero, 12)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(100).Equal(payment))
	})

	t.Run("exceeds the even split at a positive rate", func(t *testing.T) {
		payment, err := model.MonthlyPayment(decimal.NewFromInt(12000), decimal.NewFromInt(12), 12)
		require.NoError(t, err)
		assert.True(t, payment.GreaterThan(decimal.NewFromInt(1000)))
		assert.True(t, payment.LessThan(decimal.NewFromInt(1200)))
	})

	t.Run("zero balance needs no payment", func(t *testing.T) {
		payment, err := model.MonthlyPayment(decimal.Zero, decimal.NewFromInt(12), 12)
		require.NoError(t, err)
		assert.True(t, payment.IsZero())
	})
}

func TestRemainingPayments(t *testing.T) {
	t.Run("round-trips with MonthlyPayment", func(t *testing.T) {
		cases := []struct {
			balance int64
			ratePct int64
			term    int
		}{
			{12000, 12, 12},
			{250000, 4, 360},
			{5000, 18, 24},
			{1200, 0, 12},
		}
		for _, tc := range cases {
			balance := decimal.NewFromInt(tc.balance)
			rate := decimal.NewFromInt(tc.ratePct)

			payment, err := model.MonthlyPayment(balance, rate, tc.term)
			require.NoError(t, err)

			n, err := model.RemainingPayments(balance, payment, rate)
			require.NoError(t, err)
			assert.InDelta(t, tc.term, n, 1, "balance=%d rate=%d", tc.balance, tc.ratePct)
		}
	})

	t.Run("zero rate divides evenly", func(t *testing.T) {
		n, err := model.RemainingPayments(decimal.NewFromInt(1200), decimal.NewFromInt(100), decimal.Zero)
		require.NoError(t, err)
		assert.Equal(t, 12, n)

		// Partial final payment still counts as a period.
		n, err = model.RemainingPayments(decimal.NewFromInt(1250), decimal.NewFromInt(100), decimal.Zero)
		require.NoError(t, err)
		assert.Equal(t, 13, n)
	})

	t.Run("detects a non-amortizing payment", func(t *testing.T) {
		// 10000 at 12% accrues 100/month; 50 never reduces the balance.
		_, err := model.RemainingPayments(decimal.NewFromInt(10000), decimal.NewFromInt(50), decimal.NewFromInt(12))
		assert.ErrorIs(t, err, model.ErrNonAmortizing)
	})

	t.Run("zero balance needs zero payments", func(t *testing.T) {
		n, err := model.RemainingPayments(decimal.Zero, decimal.NewFromInt(100), decimal.NewFromInt(5))
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})
}

func TestMonthsBetween(t *testing.T) {
	jan15 := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, model.MonthsBetween(jan15, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, model.MonthsBetween(jan15, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, model.MonthsBetween(jan15, jan15))
	assert.Equal(t, 12, model.MonthsBetween(jan15, time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -2, model.MonthsBetween(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), jan15))
}

func TestGenerateSchedule(t *testing.T) {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("principal sums exactly to the balance", func(t *testing.T) {
		balance := decimal.NewFromInt(12000)
		rate := decimal.NewFromInt(12)
		payment, err := model.MonthlyPayment(balance, rate, 12)
		require.NoError(t, err)

		entries, err := model.GenerateSchedule(balance, payment, rate, valueobject.InterestTypeReducing, start, 12)
		require.NoError(t, err)
		require.Len(t, entries, 12)

		principalSum := decimal.Zero
		amountSum := decimal.Zero
		for _, e := range entries {
			principalSum = principalSum.Add(e.Principal)
			amountSum = amountSum.Add(e.Amount)
		}
		assert.True(t, principalSum.Equal(balance), "principal sum = %s", principalSum)

		// The final period absorbs rounding drift, so the amount total stays
		// within one payment's rounding of payment*12.
		expected := payment.Mul(decimal.NewFromInt(12))
		assert.True(t, amountSum.Sub(expected).Abs().LessThan(decimal.NewFromInt(1)))

		assert.True(t, entries[11].RemainingBalance.IsZero())
	})

	t.Run("reducing interest declines period over period", func(t *testing.T) {
		entries, err := model.GenerateSchedule(
			decimal.NewFromInt(12000), decimal.NewFromFloat(1100), decimal.NewFromInt(12),
			valueobject.InterestTypeReducing, start, 12,
		)
		require.NoError(t, err)
		require.NotEmpty(t, entries)

		for i := 1; i < len(entries); i++ {
			assert.True(t, entries[i].Interest.LessThan(entries[i-1].Interest),
				"period %d interest did not decline", entries[i].Period)
		}
	})

	t.Run("fixed interest stays constant", func(t *testing.T) {
		entries, err := model.GenerateSchedule(
			decimal.NewFromInt(1200), decimal.NewFromInt(112), decimal.NewFromInt(12),
			valueobject.InterestTypeFixed, start, 12,
		)
		require.NoError(t, err)
		require.Len(t, entries, 12)

		for _, e := range entries {
			assert.True(t, decimal.NewFromInt(12).Equal(e.Interest))
			assert.True(t, decimal.NewFromInt(100).Equal(e.Principal))
		}
	})

	t.Run("no interest splits into plain installments", func(t *testing.T) {
		entries, err := model.GenerateSchedule(
			decimal.NewFromInt(1000), decimal.NewFromInt(250), decimal.Zero,
			valueobject.InterestTypeNone, start, 4,
		)
		require.NoError(t, err)
		require.Len(t, entries, 4)
		for i, e := range entries {
			assert.True(t, decimal.NewFromInt(250).Equal(e.Amount))
			assert.True(t, e.Interest.IsZero())
			assert.Equal(t, i+1, e.Period)
			assert.Equal(t, start.AddDate(0, i+1, 0), e.DueDate)
		}
	})

	t.Run("stops early when the balance runs out", func(t *testing.T) {
		entries, err := model.GenerateSchedule(
			decimal.NewFromInt(500), decimal.NewFromInt(250), decimal.Zero,
			valueobject.InterestTypeNone, start, 12,
		)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.True(t, entries[1].RemainingBalance.IsZero())
	})

	t.Run("rejects non-positive term", func(t *testing.T) {
		_, err := model.GenerateSchedule(
			decimal.NewFromInt(500), decimal.NewFromInt(250), decimal.Zero,
			valueobject.InterestTypeNone, start, 0,
		)
		assert.ErrorIs(t, err, model.ErrInvalidTerm)
	})
}
