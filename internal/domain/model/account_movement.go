package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finora/liability-service/internal/domain/valueobject"
)

// AccountMovement is one ledger row tagged to a liability. Settlement
// adjustments are materialized as movements when the close-out executes;
// the sum of movements per liability is what "funds in accounts" is
// computed from. Amounts are signed: money leaving an account is negative.
type AccountMovement struct {
	ID          string
	AccountID   string
	LiabilityID string
	Kind        valueobject.AdjustmentType
	Amount      decimal.Decimal
	Currency    string
	Note        string
	OccurredAt  time.Time
}

// NewAccountMovement creates a movement with a generated id.
func NewAccountMovement(
	accountID, liabilityID string,
	kind valueobject.AdjustmentType,
	amount decimal.Decimal,
	currency, note string,
	occurredAt time.Time,
) AccountMovement {
	return AccountMovement{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		LiabilityID: liabilityID,
		Kind:        kind,
		Amount:      amount,
		Currency:    currency,
		Note:        note,
		OccurredAt:  occurredAt,
	}
}
