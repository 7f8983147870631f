package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finora/liability-service/internal/domain/valueobject"
)

// Installment is one due obligation against a liability. It is owned
// exclusively by its liability; all mutation happens through the aggregate.
type Installment struct {
	id            string
	liabilityID   string
	dueDate       time.Time
	amount        decimal.Decimal
	status        valueobject.InstallmentStatus
	principal     decimal.Decimal
	interest      decimal.Decimal
	paymentNumber int
	totalPayments int
}

// NewInstallment creates a pending installment from a computed schedule
// entry.
func NewInstallment(liabilityID string, e ScheduleEntry, paymentNumber, totalPayments int) Installment {
	return Installment{
		id:            uuid.New().String(),
		liabilityID:   liabilityID,
		dueDate:       e.DueDate,
		amount:        e.Amount,
		status:        valueobject.InstallmentStatusPending,
		principal:     e.Principal,
		interest:      e.Interest,
		paymentNumber: paymentNumber,
		totalPayments: totalPayments,
	}
}

// ReconstructInstallment rebuilds an Installment from persistence.
func ReconstructInstallment(
	id, liabilityID string,
	dueDate time.Time,
	amount decimal.Decimal,
	status valueobject.InstallmentStatus,
	principal, interest decimal.Decimal,
	paymentNumber, totalPayments int,
) Installment {
	return Installment{
		id:            id,
		liabilityID:   liabilityID,
		dueDate:       dueDate,
		amount:        amount,
		status:        status,
		principal:     principal,
		interest:      interest,
		paymentNumber: paymentNumber,
		totalPayments: totalPayments,
	}
}

func (i Installment) ID() string                            { return i.id }
func (i Installment) LiabilityID() string                   { return i.liabilityID }
func (i Installment) DueDate() time.Time                    { return i.dueDate }
func (i Installment) Amount() decimal.Decimal               { return i.amount }
func (i Installment) Status() valueobject.InstallmentStatus { return i.status }
func (i Installment) PrincipalComponent() decimal.Decimal   { return i.principal }
func (i Installment) InterestComponent() decimal.Decimal    { return i.interest }
func (i Installment) PaymentNumber() int                    { return i.paymentNumber }
func (i Installment) TotalPayments() int                    { return i.totalPayments }

// IsOpen reports whether the installment is still pending or overdue.
func (i Installment) IsOpen() bool { return i.status.IsOpen() }

// setAmount changes the due amount, keeping the component breakdown
// consistent: interest stays as computed, principal takes the difference
// (floored at zero).
func (i *Installment) setAmount(amount decimal.Decimal) {
	i.amount = amount
	principal := amount.Sub(i.interest)
	if principal.IsNegative() {
		principal = decimal.Zero
	}
	i.principal = principal
}

// addAmount increases the due amount by delta.
func (i *Installment) addAmount(delta decimal.Decimal) {
	i.setAmount(i.amount.Add(delta))
}
