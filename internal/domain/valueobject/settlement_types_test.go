package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finora/liability-service/internal/domain/valueobject"
)

func TestNewAdjustmentType(t *testing.T) {
	for _, s := range []string{"REPAYMENT", "REFUND", "CONVERT_TO_PERSONAL", "EXPENSE_WRITEOFF"} {
		kind, err := valueobject.NewAdjustmentType(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, kind.String())
		assert.False(t, kind.IsZero())
	}

	_, err := valueobject.NewAdjustmentType("DONATION")
	assert.Error(t, err)
	_, err = valueobject.NewAdjustmentType("")
	assert.Error(t, err)
}

func TestAdjustmentTypeSides(t *testing.T) {
	assert.True(t, valueobject.AdjustmentRepayment.ReducesOwed())
	assert.False(t, valueobject.AdjustmentRepayment.RequiresAccount())

	for _, kind := range []valueobject.AdjustmentType{
		valueobject.AdjustmentRefund,
		valueobject.AdjustmentConvertToPersonal,
		valueobject.AdjustmentExpenseWriteoff,
	} {
		assert.False(t, kind.ReducesOwed(), kind.String())
		assert.True(t, kind.RequiresAccount(), kind.String())
	}
}

func TestNewFinalAction(t *testing.T) {
	forgive, err := valueobject.NewFinalAction("FORGIVE_DEBT")
	require.NoError(t, err)
	assert.True(t, forgive.Equal(valueobject.FinalActionForgiveDebt))

	erase, err := valueobject.NewFinalAction("ERASE_FUNDS")
	require.NoError(t, err)
	assert.True(t, erase.Equal(valueobject.FinalActionEraseFunds))

	_, err = valueobject.NewFinalAction("SHRED_IT")
	assert.Error(t, err)

	assert.True(t, valueobject.FinalAction{}.IsZero())
}
