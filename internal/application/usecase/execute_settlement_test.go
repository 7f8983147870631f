package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/application/usecase"
	"github.com/finora/liability-service/internal/domain/event"
	"github.com/finora/liability-service/internal/domain/model"
	"github.com/finora/liability-service/internal/domain/port"
	"github.com/finora/liability-service/internal/domain/service"
	"github.com/finora/liability-service/internal/domain/valueobject"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func settlementUseCase(
	repo *mockLiabilityRepository,
	ledger *mockLedgerReader,
	executor *mockSettlementExecutor,
	publisher *mockEventPublisher,
) *usecase.ExecuteSettlementUseCase {
	return usecase.NewExecuteSettlementUseCase(
		repo, ledger, executor, publisher,
		service.NewSettlementReconciler(), discardLogger(),
	)
}

func TestExecuteSettlement(t *testing.T) {
	liabilityWithBalance := func(balance int64) model.Liability {
		return model.ReconstructLiability(
			"liab-001", "user-001", "Car Loan", "USD",
			decimal.NewFromInt(1000), decimal.NewFromInt(balance), decimal.Zero,
			valueobject.InterestTypeNone, decimal.NewFromInt(250),
			fixtureStart, fixtureStart.AddDate(0, 4, 0),
			valueobject.LiabilityStatusActive,
			[]model.Installment{pendingInstallment("inst-1", 1, 250, 1, 1)},
			3, fixtureStart, fixtureStart,
		)
	}

	t.Run("rejects a wrong confirmation before touching anything", func(t *testing.T) {
		repo := &mockLiabilityRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Liability, error) {
				return liabilityWithBalance(500), nil
			},
		}
		executor := &mockSettlementExecutor{}

		_, err := settlementUseCase(repo, &mockLedgerReader{}, executor, &mockEventPublisher{}).Execute(
			context.Background(),
			dto.ExecuteSettlementRequest{LiabilityID: "liab-001", Confirmation: "car loan"},
		)

		assert.ErrorIs(t, err, model.ErrConfirmationMismatch)
		assert.False(t, executor.called)
	})

	t.Run("refuses an unbalanced close-out without a final action", func(t *testing.T) {
		repo := &mockLiabilityRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Liability, error) {
				return liabilityWithBalance(500), nil
			},
		}
		executor := &mockSettlementExecutor{}

		_, err := settlementUseCase(repo, &mockLedgerReader{}, executor, &mockEventPublisher{}).Execute(
			context.Background(),
			dto.ExecuteSettlementRequest{LiabilityID: "liab-001", Confirmation: "Car Loan"},
		)

		assert.ErrorIs(t, err, model.ErrUnbalanced)
		assert.False(t, executor.called)
	})

	t.Run("refuses equal non-zero sides even with a final action", func(t *testing.T) {
		repo := &mockLiabilityRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Liability, error) {
				return liabilityWithBalance(500), nil
			},
		}
		ledger := &mockLedgerReader{funds: []port.AccountFunds{
			{AccountID: "acct-1", Balance: decimal.NewFromInt(500)},
		}}
		executor := &mockSettlementExecutor{}

		for _, finalAction := range []string{"", "FORGIVE_DEBT", "ERASE_FUNDS"} {
			_, err := settlementUseCase(repo, ledger, executor, &mockEventPublisher{}).Execute(
				context.Background(),
				dto.ExecuteSettlementRequest{
					LiabilityID:  "liab-001",
					FinalAction:  finalAction,
					Confirmation: "Car Loan",
				},
			)
			assert.ErrorIs(t, err, model.ErrUnbalanced, "final action %q", finalAction)
		}
		assert.False(t, executor.called)
	})

	t.Run("refuses a final action on the wrong side of the remainder", func(t *testing.T) {
		repo := &mockLiabilityRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Liability, error) {
				return liabilityWithBalance(0), nil
			},
		}
		ledger := &mockLedgerReader{funds: []port.AccountFunds{
			{AccountID: "acct-1", Balance: decimal.NewFromInt(500)},
		}}
		executor := &mockSettlementExecutor{}

		// Funds remain, so forgiving debt would leave them undisposed.
		_, err := settlementUseCase(repo, ledger, executor, &mockEventPublisher{}).Execute(
			context.Background(),
			dto.ExecuteSettlementRequest{
				LiabilityID:  "liab-001",
				FinalAction:  "FORGIVE_DEBT",
				Confirmation: "Car Loan",
			},
		)
		assert.ErrorIs(t, err, model.ErrFinalActionMismatch)
		assert.False(t, executor.called)

		// Debt remains, so erasing funds would leave it undisposed.
		repo.findByIDFunc = func(_ context.Context, _ string) (model.Liability, error) {
			return liabilityWithBalance(500), nil
		}
		_, err = settlementUseCase(repo, &mockLedgerReader{}, executor, &mockEventPublisher{}).Execute(
			context.Background(),
			dto.ExecuteSettlementRequest{
				LiabilityID:  "liab-001",
				FinalAction:  "ERASE_FUNDS",
				Confirmation: "Car Loan",
			},
		)
		assert.ErrorIs(t, err, model.ErrFinalActionMismatch)
		assert.False(t, executor.called)
	})

	t.Run("commits a balanced close-out with all movements", func(t *testing.T) {
		repo := &mockLiabilityRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Liability, error) {
				return liabilityWithBalance(500), nil
			},
		}
		ledger := &mockLedgerReader{funds: []port.AccountFunds{
			{AccountID: "acct-1", Balance: decimal.NewFromInt(500)},
		}}
		executor := &mockSettlementExecutor{}
		publisher := &mockEventPublisher{}

		resp, err := settlementUseCase(repo, ledger, executor, publisher).Execute(
			context.Background(),
			dto.ExecuteSettlementRequest{
				LiabilityID: "liab-001",
				Adjustments: []dto.SettlementAdjustmentInput{
					{Type: "REPAYMENT", Amount: decimal.NewFromInt(500)},
					{Type: "REFUND", Amount: decimal.NewFromInt(500), AccountID: "acct-1"},
				},
				Confirmation: "Car Loan",
			},
		)
		require.NoError(t, err)

		assert.True(t, resp.Deleted)
		assert.Equal(t, 2, resp.Movements)
		assert.Equal(t, "liab-001", executor.executedID)
		require.Len(t, executor.executedMovements, 2)
		for _, mv := range executor.executedMovements {
			assert.True(t, mv.Amount.IsNegative(), "movement %s should be negative", mv.Kind)
			assert.Equal(t, "USD", mv.Currency)
		}

		require.Len(t, publisher.published, 1)
		assert.Equal(t, "liability.settled", publisher.published[0].EventType())
	})

	t.Run("forgive debt records the remainder as personal conversion", func(t *testing.T) {
		repo := &mockLiabilityRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Liability, error) {
				return liabilityWithBalance(500), nil
			},
		}
		executor := &mockSettlementExecutor{}

		resp, err := settlementUseCase(repo, &mockLedgerReader{}, executor, &mockEventPublisher{}).Execute(
			context.Background(),
			dto.ExecuteSettlementRequest{
				LiabilityID:  "liab-001",
				FinalAction:  "FORGIVE_DEBT",
				Confirmation: "Car Loan",
			},
		)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Movements)

		mv := executor.executedMovements[0]
		assert.True(t, mv.Kind.Equal(valueobject.AdjustmentConvertToPersonal))
		assert.True(t, decimal.NewFromInt(500).Equal(mv.Amount))
		assert.Empty(t, mv.AccountID)
	})

	t.Run("erase funds deducts from the largest balances first", func(t *testing.T) {
		repo := &mockLiabilityRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Liability, error) {
				return liabilityWithBalance(0), nil
			},
		}
		ledger := &mockLedgerReader{funds: []port.AccountFunds{
			{AccountID: "acct-1", Balance: decimal.NewFromInt(300)},
			{AccountID: "acct-2", Balance: decimal.NewFromInt(100)},
		}}
		executor := &mockSettlementExecutor{}

		resp, err := settlementUseCase(repo, ledger, executor, &mockEventPublisher{}).Execute(
			context.Background(),
			dto.ExecuteSettlementRequest{
				LiabilityID:  "liab-001",
				FinalAction:  "ERASE_FUNDS",
				Confirmation: "Car Loan",
			},
		)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Movements)

		first, second := executor.executedMovements[0], executor.executedMovements[1]
		assert.Equal(t, "acct-1", first.AccountID)
		assert.True(t, decimal.NewFromInt(-300).Equal(first.Amount))
		assert.Equal(t, "acct-2", second.AccountID)
		assert.True(t, decimal.NewFromInt(-100).Equal(second.Amount))
		assert.True(t, first.Kind.Equal(valueobject.AdjustmentExpenseWriteoff))
	})

	t.Run("storage failure leaves the liability in place", func(t *testing.T) {
		repo := &mockLiabilityRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Liability, error) {
				return liabilityWithBalance(500), nil
			},
		}
		executor := &mockSettlementExecutor{
			executeFunc: func(_ context.Context, _ string, _ []model.AccountMovement) error {
				return fmt.Errorf("%w: connection reset", model.ErrStorageFailure)
			},
		}
		publisher := &mockEventPublisher{}

		_, err := settlementUseCase(repo, &mockLedgerReader{}, executor, publisher).Execute(
			context.Background(),
			dto.ExecuteSettlementRequest{
				LiabilityID:  "liab-001",
				FinalAction:  "FORGIVE_DEBT",
				Confirmation: "Car Loan",
			},
		)

		assert.ErrorIs(t, err, model.ErrStorageFailure)
		assert.Empty(t, repo.savedLiabilities)
		assert.Empty(t, publisher.published)
	})

	t.Run("publish failure after the commit is not surfaced", func(t *testing.T) {
		repo := &mockLiabilityRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Liability, error) {
				return liabilityWithBalance(500), nil
			},
		}
		publisher := &mockEventPublisher{
			publishFunc: func(_ context.Context, _ ...event.DomainEvent) error {
				return errors.New("broker unavailable")
			},
		}

		resp, err := settlementUseCase(repo, &mockLedgerReader{}, &mockSettlementExecutor{}, publisher).Execute(
			context.Background(),
			dto.ExecuteSettlementRequest{
				LiabilityID:  "liab-001",
				FinalAction:  "FORGIVE_DEBT",
				Confirmation: "Car Loan",
			},
		)

		require.NoError(t, err)
		assert.True(t, resp.Deleted)
	})

	t.Run("unknown liability", func(t *testing.T) {
		_, err := settlementUseCase(&mockLiabilityRepository{}, &mockLedgerReader{}, &mockSettlementExecutor{}, &mockEventPublisher{}).Execute(
			context.Background(),
			dto.ExecuteSettlementRequest{LiabilityID: "missing", Confirmation: "Car Loan"},
		)
		assert.ErrorIs(t, err, model.ErrLiabilityNotFound)
		assert.Contains(t, err.Error(), "find liability")
	})
}
