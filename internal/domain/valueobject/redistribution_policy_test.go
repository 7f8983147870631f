package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finora/liability-service/internal/domain/valueobject"
)

func TestNewSkipPolicy(t *testing.T) {
	for _, s := range []string{"ADD_TO_NEXT", "ADD_TO_END", "SPREAD_ACROSS"} {
		policy, err := valueobject.NewSkipPolicy(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, policy.String())
	}

	_, err := valueobject.NewSkipPolicy("add_to_next")
	assert.Error(t, err)
}

func TestNewAmountChangePolicy(t *testing.T) {
	for _, s := range []string{"ONE_TIME", "UPDATE_ALL", "ADD_TO_NEXT"} {
		policy, err := valueobject.NewAmountChangePolicy(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, policy.String())
	}

	_, err := valueobject.NewAmountChangePolicy("RETROACTIVE")
	assert.Error(t, err)

	assert.True(t, valueobject.AmountPolicyOneTime.Equal(valueobject.AmountPolicyOneTime))
	assert.False(t, valueobject.AmountPolicyOneTime.Equal(valueobject.AmountPolicyUpdateAll))
}
