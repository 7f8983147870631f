package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/application/usecase"
	"github.com/finora/liability-service/internal/domain/model"
	"github.com/finora/liability-service/internal/domain/port"
	"github.com/finora/liability-service/internal/domain/service"
	"github.com/finora/liability-service/internal/domain/valueobject"
)

func TestGetSettlementStatusUseCase(t *testing.T) {
	liability := model.ReconstructLiability(
		"liab-001", "user-001", "Car Loan", "USD",
		decimal.NewFromInt(1000), decimal.NewFromInt(500), decimal.Zero,
		valueobject.InterestTypeNone, decimal.NewFromInt(250),
		fixtureStart, fixtureStart.AddDate(0, 4, 0),
		valueobject.LiabilityStatusActive,
		nil,
		3, fixtureStart, fixtureStart,
	)

	newUseCase := func(funds []port.AccountFunds) *usecase.GetSettlementStatusUseCase {
		repo := &mockLiabilityRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Liability, error) {
				return liability, nil
			},
		}
		return usecase.NewGetSettlementStatusUseCase(
			repo, &mockLedgerReader{funds: funds}, service.NewSettlementReconciler(),
		)
	}

	t.Run("snapshot without adjustments", func(t *testing.T) {
		uc := newUseCase([]port.AccountFunds{
			{AccountID: "acct-1", Balance: decimal.NewFromInt(300)},
			{AccountID: "acct-2", Balance: decimal.NewFromInt(200)},
		})

		resp, err := uc.Execute(context.Background(), dto.GetSettlementStatusRequest{LiabilityID: "liab-001"})
		require.NoError(t, err)

		assert.True(t, decimal.NewFromInt(1000).Equal(resp.TotalLoan))
		assert.True(t, decimal.NewFromInt(500).Equal(resp.RemainingOwed))
		assert.True(t, decimal.NewFromInt(500).Equal(resp.FundsInAccounts))
		assert.True(t, resp.OverfundedBy.IsZero())
		assert.True(t, resp.Unaccounted.IsZero())
		// Equal non-zero sides are not settled; both must reach zero.
		assert.False(t, resp.Balanced)
	})

	t.Run("projection after a repayment adjustment", func(t *testing.T) {
		uc := newUseCase([]port.AccountFunds{
			{AccountID: "acct-1", Balance: decimal.NewFromInt(500)},
		})

		resp, err := uc.Execute(context.Background(), dto.GetSettlementStatusRequest{
			LiabilityID: "liab-001",
			Adjustments: []dto.SettlementAdjustmentInput{
				{Type: "REPAYMENT", Amount: decimal.NewFromInt(500)},
			},
		})
		require.NoError(t, err)

		assert.True(t, resp.ProjectedRemaining.IsZero())
		assert.True(t, decimal.NewFromInt(500).Equal(resp.ProjectedFunds))
		assert.True(t, decimal.NewFromInt(-500).Equal(resp.Unaccounted))
		assert.False(t, resp.Balanced)
	})

	t.Run("rejects an unknown adjustment type", func(t *testing.T) {
		uc := newUseCase(nil)

		_, err := uc.Execute(context.Background(), dto.GetSettlementStatusRequest{
			LiabilityID: "liab-001",
			Adjustments: []dto.SettlementAdjustmentInput{
				{Type: "DONATION", Amount: decimal.NewFromInt(10)},
			},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse adjustment type")
	})

	t.Run("adjustment missing its account is rejected", func(t *testing.T) {
		uc := newUseCase(nil)

		_, err := uc.Execute(context.Background(), dto.GetSettlementStatusRequest{
			LiabilityID: "liab-001",
			Adjustments: []dto.SettlementAdjustmentInput{
				{Type: "REFUND", Amount: decimal.NewFromInt(10)},
			},
		})
		assert.ErrorIs(t, err, model.ErrMissingAccount)
	})
}
