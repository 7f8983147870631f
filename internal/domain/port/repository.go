package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finora/liability-service/internal/domain/event"
	"github.com/finora/liability-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// LiabilityRepository persists and retrieves liabilities together with
// their installment schedules. Save enforces optimistic version locking.
type LiabilityRepository interface {
	Save(ctx context.Context, liability model.Liability) error
	FindByID(ctx context.Context, id string) (model.Liability, error)
	FindByUserID(ctx context.Context, userID string) ([]model.Liability, error)
	FindWithInstallmentsDueBefore(ctx context.Context, cutoff time.Time) ([]model.Liability, error)
}

// AccountFunds is the liability-tagged balance sitting in one account.
type AccountFunds struct {
	AccountID string
	Balance   decimal.Decimal
}

// LedgerReader queries the account-movement ledger.
type LedgerReader interface {
	// LiabilityFunds returns per-account liability-tagged balances in a
	// stable order (largest balance first).
	LiabilityFunds(ctx context.Context, liabilityID string) ([]AccountFunds, error)
}

// SettlementExecutor commits a settlement in one transaction: it writes the
// ledger movements, deletes the installments and deletes the liability, or
// does none of it.
type SettlementExecutor interface {
	ExecuteSettlement(ctx context.Context, liabilityID string, movements []model.AccountMovement) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
