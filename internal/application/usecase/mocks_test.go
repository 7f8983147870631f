package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finora/liability-service/internal/domain/event"
	"github.com/finora/liability-service/internal/domain/model"
	"github.com/finora/liability-service/internal/domain/port"
	"github.com/finora/liability-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Test fixtures
// ---------------------------------------------------------------------------

var (
	fixtureStart = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
)

func pendingInstallment(id string, dueMonths int, amount int64, number, total int) model.Installment {
	return model.ReconstructInstallment(
		id, "liab-001",
		fixtureStart.AddDate(0, dueMonths, 0),
		decimal.NewFromInt(amount),
		valueobject.InstallmentStatusPending,
		decimal.NewFromInt(amount), decimal.Zero,
		number, total,
	)
}

func activeLiability(installments ...model.Installment) model.Liability {
	total := decimal.Zero
	for _, inst := range installments {
		total = total.Add(inst.Amount())
	}
	return model.ReconstructLiability(
		"liab-001", "user-001", "Car Loan", "USD",
		total, total, decimal.Zero,
		valueobject.InterestTypeNone,
		decimal.NewFromInt(250),
		fixtureStart, fixtureStart.AddDate(0, len(installments)+1, 0),
		valueobject.LiabilityStatusActive,
		installments,
		3,
		fixtureStart, fixtureStart,
	)
}

// ---------------------------------------------------------------------------
// Port mocks
// ---------------------------------------------------------------------------

type mockLiabilityRepository struct {
	saveFunc      func(ctx context.Context, liability model.Liability) error
	findByIDFunc  func(ctx context.Context, id string) (model.Liability, error)
	findByUserID  func(ctx context.Context, userID string) ([]model.Liability, error)
	findDueBefore func(ctx context.Context, cutoff time.Time) ([]model.Liability, error)

	savedLiabilities []model.Liability
}

func (m *mockLiabilityRepository) Save(ctx context.Context, liability model.Liability) error {
	if m.saveFunc != nil {
		if err := m.saveFunc(ctx, liability); err != nil {
			return err
		}
	}
	m.savedLiabilities = append(m.savedLiabilities, liability)
	return nil
}

func (m *mockLiabilityRepository) FindByID(ctx context.Context, id string) (model.Liability, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Liability{}, model.ErrLiabilityNotFound
}

func (m *mockLiabilityRepository) FindByUserID(ctx context.Context, userID string) ([]model.Liability, error) {
	if m.findByUserID != nil {
		return m.findByUserID(ctx, userID)
	}
	return nil, nil
}

func (m *mockLiabilityRepository) FindWithInstallmentsDueBefore(ctx context.Context, cutoff time.Time) ([]model.Liability, error) {
	if m.findDueBefore != nil {
		return m.findDueBefore(ctx, cutoff)
	}
	return nil, nil
}

type mockLedgerReader struct {
	fundsFunc func(ctx context.Context, liabilityID string) ([]port.AccountFunds, error)
	funds     []port.AccountFunds
}

func (m *mockLedgerReader) LiabilityFunds(ctx context.Context, liabilityID string) ([]port.AccountFunds, error) {
	if m.fundsFunc != nil {
		return m.fundsFunc(ctx, liabilityID)
	}
	return m.funds, nil
}

type mockSettlementExecutor struct {
	executeFunc func(ctx context.Context, liabilityID string, movements []model.AccountMovement) error

	called            bool
	executedID        string
	executedMovements []model.AccountMovement
}

func (m *mockSettlementExecutor) ExecuteSettlement(ctx context.Context, liabilityID string, movements []model.AccountMovement) error {
	if m.executeFunc != nil {
		if err := m.executeFunc(ctx, liabilityID, movements); err != nil {
			return err
		}
	}
	m.called = true
	m.executedID = liabilityID
	m.executedMovements = movements
	return nil
}

type mockEventPublisher struct {
	publishFunc func(ctx context.Context, events ...event.DomainEvent) error

	published []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if m.publishFunc != nil {
		if err := m.publishFunc(ctx, events...); err != nil {
			return err
		}
	}
	m.published = append(m.published, events...)
	return nil
}
