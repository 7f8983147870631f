package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/application/usecase"
	"github.com/finora/liability-service/internal/domain/model"
)

func TestCreateLiabilityUseCase(t *testing.T) {
	validRequest := func() dto.CreateLiabilityRequest {
		return dto.CreateLiabilityRequest{
			UserID:             "user-001",
			Name:               "Car Loan",
			Currency:           "USD",
			Amount:             decimal.NewFromInt(1000),
			InterestType:       "NONE",
			PeriodicalPayment:  decimal.NewFromInt(250),
			StartDate:          fixtureStart,
			TargetedPayoffDate: fixtureStart.AddDate(0, 4, 0),
		}
	}

	t.Run("creates, persists and publishes", func(t *testing.T) {
		repo := &mockLiabilityRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewCreateLiabilityUseCase(repo, publisher)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "ACTIVE", resp.Status)
		assert.Len(t, resp.Schedule, 4)
		assert.Equal(t, 1, resp.Version)

		require.Len(t, repo.savedLiabilities, 1)
		require.Len(t, publisher.published, 1)
		assert.Equal(t, "liability.created", publisher.published[0].EventType())
	})

	t.Run("derives the payment when none is given", func(t *testing.T) {
		req := validRequest()
		req.Amount = decimal.NewFromInt(1200)
		req.PeriodicalPayment = decimal.Zero
		req.TargetedPayoffDate = fixtureStart.AddDate(1, 0, 0)

		uc := usecase.NewCreateLiabilityUseCase(&mockLiabilityRepository{}, &mockEventPublisher{})

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(100).Equal(resp.PeriodicalPayment))
		assert.Len(t, resp.Schedule, 12)
	})

	t.Run("rejects an unknown interest type", func(t *testing.T) {
		req := validRequest()
		req.InterestType = "COMPOUNDING_HOURLY"

		uc := usecase.NewCreateLiabilityUseCase(&mockLiabilityRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse interest type")
	})

	t.Run("rejects a payoff date on or before the start", func(t *testing.T) {
		req := validRequest()
		req.TargetedPayoffDate = req.StartDate.Add(time.Hour)

		uc := usecase.NewCreateLiabilityUseCase(&mockLiabilityRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, model.ErrInvalidTerm)
	})
}
