package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finora/liability-service/internal/domain/model"
	"github.com/finora/liability-service/internal/domain/service"
	"github.com/finora/liability-service/internal/domain/valueobject"
)

func TestComputeStatus(t *testing.T) {
	r := service.NewSettlementReconciler()

	t.Run("underfunded", func(t *testing.T) {
		status := r.ComputeStatus(decimal.NewFromInt(1000), decimal.NewFromInt(500), decimal.NewFromInt(300))
		assert.True(t, decimal.NewFromInt(1000).Equal(status.TotalLoan))
		assert.True(t, decimal.NewFromInt(500).Equal(status.RemainingOwed))
		assert.True(t, decimal.NewFromInt(300).Equal(status.FundsInAccounts))
		assert.True(t, status.OverfundedBy.IsZero())
	})

	t.Run("overfunded", func(t *testing.T) {
		status := r.ComputeStatus(decimal.NewFromInt(1000), decimal.NewFromInt(200), decimal.NewFromInt(350))
		assert.True(t, decimal.NewFromInt(150).Equal(status.OverfundedBy))
	})
}

func TestValidateAdjustment(t *testing.T) {
	r := service.NewSettlementReconciler()

	t.Run("repayment needs no account", func(t *testing.T) {
		err := r.ValidateAdjustment(service.SettlementAdjustment{
			Type:   valueobject.AdjustmentRepayment,
			Amount: decimal.NewFromInt(100),
		})
		assert.NoError(t, err)
	})

	t.Run("refund without an account is rejected", func(t *testing.T) {
		err := r.ValidateAdjustment(service.SettlementAdjustment{
			Type:   valueobject.AdjustmentRefund,
			Amount: decimal.NewFromInt(100),
		})
		assert.ErrorIs(t, err, model.ErrMissingAccount)
	})

	t.Run("rejects missing type and non-positive amounts", func(t *testing.T) {
		err := r.ValidateAdjustment(service.SettlementAdjustment{Amount: decimal.NewFromInt(100)})
		assert.Error(t, err)

		err = r.ValidateAdjustment(service.SettlementAdjustment{
			Type:   valueobject.AdjustmentRepayment,
			Amount: decimal.Zero,
		})
		assert.Error(t, err)
	})
}

func TestProject(t *testing.T) {
	r := service.NewSettlementReconciler()
	status := r.ComputeStatus(decimal.NewFromInt(1000), decimal.NewFromInt(500), decimal.NewFromInt(500))

	t.Run("repayment reduces only the owed side", func(t *testing.T) {
		projection, err := r.Project(status, []service.SettlementAdjustment{
			{Type: valueobject.AdjustmentRepayment, Amount: decimal.NewFromInt(500), Date: time.Now()},
		})
		require.NoError(t, err)

		assert.True(t, projection.RemainingOwed.IsZero())
		assert.True(t, decimal.NewFromInt(500).Equal(projection.FundsInAccounts))
		assert.True(t, decimal.NewFromInt(-500).Equal(projection.Unaccounted))
		assert.False(t, projection.Balanced)
	})

	t.Run("refund reduces the funds side", func(t *testing.T) {
		projection, err := r.Project(status, []service.SettlementAdjustment{
			{Type: valueobject.AdjustmentRepayment, Amount: decimal.NewFromInt(500)},
			{Type: valueobject.AdjustmentRefund, Amount: decimal.NewFromInt(500), AccountID: "acct-1"},
		})
		require.NoError(t, err)

		assert.True(t, projection.RemainingOwed.IsZero())
		assert.True(t, projection.FundsInAccounts.IsZero())
		assert.True(t, projection.Unaccounted.IsZero())
		assert.True(t, projection.Balanced)
	})

	t.Run("clamps projected values at zero", func(t *testing.T) {
		projection, err := r.Project(status, []service.SettlementAdjustment{
			{Type: valueobject.AdjustmentRepayment, Amount: decimal.NewFromInt(700)},
			{Type: valueobject.AdjustmentExpenseWriteoff, Amount: decimal.NewFromInt(900), AccountID: "acct-1"},
		})
		require.NoError(t, err)

		assert.True(t, projection.RemainingOwed.IsZero())
		assert.True(t, projection.FundsInAccounts.IsZero())
		assert.True(t, projection.Balanced)
	})

	t.Run("equal non-zero sides are not balanced", func(t *testing.T) {
		projection, err := r.Project(status, nil)
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(500).Equal(projection.RemainingOwed))
		assert.True(t, decimal.NewFromInt(500).Equal(projection.FundsInAccounts))
		assert.True(t, projection.Unaccounted.IsZero())
		assert.False(t, projection.Balanced)
	})

	t.Run("stops on the first invalid adjustment", func(t *testing.T) {
		_, err := r.Project(status, []service.SettlementAdjustment{
			{Type: valueobject.AdjustmentRefund, Amount: decimal.NewFromInt(100)},
		})
		assert.ErrorIs(t, err, model.ErrMissingAccount)
	})
}

func TestCheckExecutable(t *testing.T) {
	r := service.NewSettlementReconciler()

	balanced := service.SettlementProjection{Balanced: true}
	fundsRemain := service.SettlementProjection{
		FundsInAccounts: decimal.NewFromInt(500),
		Unaccounted:     decimal.NewFromInt(-500),
	}
	debtRemains := service.SettlementProjection{
		RemainingOwed: decimal.NewFromInt(500),
		Unaccounted:   decimal.NewFromInt(500),
	}
	equalSides := service.SettlementProjection{
		RemainingOwed:   decimal.NewFromInt(500),
		FundsInAccounts: decimal.NewFromInt(500),
		Unaccounted:     decimal.Zero,
	}

	assert.NoError(t, r.CheckExecutable(balanced, valueobject.FinalAction{}))

	assert.ErrorIs(t, r.CheckExecutable(fundsRemain, valueobject.FinalAction{}), model.ErrUnbalanced)
	assert.NoError(t, r.CheckExecutable(fundsRemain, valueobject.FinalActionEraseFunds))
	assert.ErrorIs(t, r.CheckExecutable(fundsRemain, valueobject.FinalActionForgiveDebt), model.ErrFinalActionMismatch)

	assert.ErrorIs(t, r.CheckExecutable(debtRemains, valueobject.FinalAction{}), model.ErrUnbalanced)
	assert.NoError(t, r.CheckExecutable(debtRemains, valueobject.FinalActionForgiveDebt))
	assert.ErrorIs(t, r.CheckExecutable(debtRemains, valueobject.FinalActionEraseFunds), model.ErrFinalActionMismatch)

	// Equal non-zero sides need adjustments; no final action disposes them.
	assert.ErrorIs(t, r.CheckExecutable(equalSides, valueobject.FinalAction{}), model.ErrUnbalanced)
	assert.ErrorIs(t, r.CheckExecutable(equalSides, valueobject.FinalActionForgiveDebt), model.ErrUnbalanced)
	assert.ErrorIs(t, r.CheckExecutable(equalSides, valueobject.FinalActionEraseFunds), model.ErrUnbalanced)
}

func TestConfirmDeletion(t *testing.T) {
	r := service.NewSettlementReconciler()

	assert.NoError(t, r.ConfirmDeletion("Car Loan", "Car Loan"))
	assert.ErrorIs(t, r.ConfirmDeletion("car loan", "Car Loan"), model.ErrConfirmationMismatch)
	assert.ErrorIs(t, r.ConfirmDeletion("", "Car Loan"), model.ErrConfirmationMismatch)
}
