package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/application/usecase"
	"github.com/finora/liability-service/internal/domain/model"
)

func TestSkipInstallmentUseCase(t *testing.T) {
	fiveInstallments := func() model.Liability {
		return activeLiability(
			pendingInstallment("inst-1", 1, 100, 1, 5),
			pendingInstallment("inst-2", 2, 250, 2, 5),
			pendingInstallment("inst-3", 3, 250, 3, 5),
			pendingInstallment("inst-4", 4, 250, 4, 5),
			pendingInstallment("inst-5", 5, 250, 5, 5),
		)
	}

	t.Run("skips and persists the redistributed schedule", func(t *testing.T) {
		repo := &mockLiabilityRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Liability, error) {
				return fiveInstallments(), nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewSkipInstallmentUseCase(repo, publisher)

		resp, err := uc.Execute(context.Background(), dto.SkipInstallmentRequest{
			LiabilityID:   "liab-001",
			InstallmentID: "inst-1",
			Policy:        "SPREAD_ACROSS",
		})
		require.NoError(t, err)

		require.Len(t, repo.savedLiabilities, 1)
		saved := repo.savedLiabilities[0]
		for _, id := range []string{"inst-2", "inst-3", "inst-4", "inst-5"} {
			inst, ok := saved.InstallmentByID(id)
			require.True(t, ok)
			assert.True(t, decimal.NewFromInt(275).Equal(inst.Amount()))
		}

		require.Len(t, publisher.published, 1)
		assert.Equal(t, "liability.installment_skipped", publisher.published[0].EventType())

		require.Len(t, resp.Schedule, 5)
		assert.Equal(t, "CANCELLED", resp.Schedule[0].Status)
	})

	t.Run("rejects an unknown policy", func(t *testing.T) {
		uc := usecase.NewSkipInstallmentUseCase(&mockLiabilityRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.SkipInstallmentRequest{
			LiabilityID:   "liab-001",
			InstallmentID: "inst-1",
			Policy:        "BURY_IT",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse skip policy")
	})

	t.Run("unknown liability", func(t *testing.T) {
		uc := usecase.NewSkipInstallmentUseCase(&mockLiabilityRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.SkipInstallmentRequest{
			LiabilityID:   "missing",
			InstallmentID: "inst-1",
			Policy:        "ADD_TO_NEXT",
		})
		assert.ErrorIs(t, err, model.ErrLiabilityNotFound)
	})

	t.Run("save failure is surfaced", func(t *testing.T) {
		repo := &mockLiabilityRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Liability, error) {
				return fiveInstallments(), nil
			},
			saveFunc: func(_ context.Context, _ model.Liability) error {
				return errors.New("optimistic locking conflict on liability")
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewSkipInstallmentUseCase(repo, publisher)

		_, err := uc.Execute(context.Background(), dto.SkipInstallmentRequest{
			LiabilityID:   "liab-001",
			InstallmentID: "inst-1",
			Policy:        "ADD_TO_NEXT",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save liability")
		assert.Empty(t, publisher.published)
	})
}
