package event

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Liability events
// ---------------------------------------------------------------------------

// LiabilityCreated is raised when a new liability enters the system with its
// initial schedule.
type LiabilityCreated struct {
	BaseEvent
	Name         string          `json:"name"`
	Currency     string          `json:"currency"`
	Amount       decimal.Decimal `json:"amount"`
	RatePct      decimal.Decimal `json:"rate_pct"`
	InterestType string          `json:"interest_type"`
	Installments int             `json:"installments"`
}

func NewLiabilityCreated(
	liabilityID, userID, name, currency string,
	amount, ratePct decimal.Decimal,
	interestType string, installments int,
) LiabilityCreated {
	return LiabilityCreated{
		BaseEvent:    NewBaseEvent("liability.created", liabilityID, "Liability", userID),
		Name:         name,
		Currency:     currency,
		Amount:       amount,
		RatePct:      ratePct,
		InterestType: interestType,
		Installments: installments,
	}
}

// ScheduleRecalculated is raised when the pending tail of a schedule is
// replaced after a committed parameter change.
type ScheduleRecalculated struct {
	BaseEvent
	NewPayment   decimal.Decimal `json:"new_payment"`
	NewRatePct   decimal.Decimal `json:"new_rate_pct"`
	NewEndDate   time.Time       `json:"new_end_date"`
	Installments int             `json:"installments"`
}

func NewScheduleRecalculated(
	liabilityID, userID string,
	newPayment, newRatePct decimal.Decimal,
	newEndDate time.Time, installments int,
) ScheduleRecalculated {
	return ScheduleRecalculated{
		BaseEvent:    NewBaseEvent("liability.schedule_recalculated", liabilityID, "Liability", userID),
		NewPayment:   newPayment,
		NewRatePct:   newRatePct,
		NewEndDate:   newEndDate,
		Installments: installments,
	}
}

// LiabilityOverdue is raised when the overdue sweep finds past-due
// installments on a liability.
type LiabilityOverdue struct {
	BaseEvent
	OverdueInstallments int `json:"overdue_installments"`
}

func NewLiabilityOverdue(liabilityID, userID string, overdue int) LiabilityOverdue {
	return LiabilityOverdue{
		BaseEvent:           NewBaseEvent("liability.overdue", liabilityID, "Liability", userID),
		OverdueInstallments: overdue,
	}
}

// LiabilitySettled is raised after a settlement executed and the liability
// was deleted.
type LiabilitySettled struct {
	BaseEvent
	Adjustments int    `json:"adjustments"`
	FinalAction string `json:"final_action,omitempty"`
}

func NewLiabilitySettled(liabilityID, userID string, adjustments int, finalAction string) LiabilitySettled {
	return LiabilitySettled{
		BaseEvent:   NewBaseEvent("liability.settled", liabilityID, "Liability", userID),
		Adjustments: adjustments,
		FinalAction: finalAction,
	}
}

// ---------------------------------------------------------------------------
// Installment events
// ---------------------------------------------------------------------------

// InstallmentSkipped is raised when an installment is cancelled and its
// amount redistributed.
type InstallmentSkipped struct {
	BaseEvent
	InstallmentID string          `json:"installment_id"`
	Policy        string          `json:"policy"`
	Amount        decimal.Decimal `json:"amount"`
}

func NewInstallmentSkipped(liabilityID, userID, installmentID, policy string, amount decimal.Decimal) InstallmentSkipped {
	return InstallmentSkipped{
		BaseEvent:     NewBaseEvent("liability.installment_skipped", liabilityID, "Liability", userID),
		InstallmentID: installmentID,
		Policy:        policy,
		Amount:        amount,
	}
}

// InstallmentAmountChanged is raised when a single installment's amount is
// edited.
type InstallmentAmountChanged struct {
	BaseEvent
	InstallmentID string          `json:"installment_id"`
	Policy        string          `json:"policy"`
	OldAmount     decimal.Decimal `json:"old_amount"`
	NewAmount     decimal.Decimal `json:"new_amount"`
}

func NewInstallmentAmountChanged(
	liabilityID, userID, installmentID, policy string,
	oldAmount, newAmount decimal.Decimal,
) InstallmentAmountChanged {
	return InstallmentAmountChanged{
		BaseEvent:     NewBaseEvent("liability.installment_amount_changed", liabilityID, "Liability", userID),
		InstallmentID: installmentID,
		Policy:        policy,
		OldAmount:     oldAmount,
		NewAmount:     newAmount,
	}
}

// InstallmentDateChanged is raised when an installment's due date moves.
type InstallmentDateChanged struct {
	BaseEvent
	InstallmentID string    `json:"installment_id"`
	OldDate       time.Time `json:"old_date"`
	NewDate       time.Time `json:"new_date"`
}

func NewInstallmentDateChanged(liabilityID, userID, installmentID string, oldDate, newDate time.Time) InstallmentDateChanged {
	return InstallmentDateChanged{
		BaseEvent:     NewBaseEvent("liability.installment_date_changed", liabilityID, "Liability", userID),
		InstallmentID: installmentID,
		OldDate:       oldDate,
		NewDate:       newDate,
	}
}

// InstallmentPaid is raised when an installment is completed.
type InstallmentPaid struct {
	BaseEvent
	InstallmentID    string          `json:"installment_id"`
	Amount           decimal.Decimal `json:"amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

func NewInstallmentPaid(liabilityID, userID, installmentID string, amount, remaining decimal.Decimal) InstallmentPaid {
	return InstallmentPaid{
		BaseEvent:        NewBaseEvent("liability.installment_paid", liabilityID, "Liability", userID),
		InstallmentID:    installmentID,
		Amount:           amount,
		RemainingBalance: remaining,
	}
}
