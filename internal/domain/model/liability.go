package model

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finora/liability-service/internal/domain/event"
	"github.com/finora/liability-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Liability aggregate root
// ---------------------------------------------------------------------------

// Liability is a borrowing obligation together with the installment schedule
// it exclusively owns. The aggregate is immutable: mutations return a new
// copy. Schedule rows are only ever touched through the aggregate methods
// below, which is what keeps the redistribution sum-invariants intact.
type Liability struct {
	id                 string
	userID             string
	name               string
	currency           string
	originalAmount     decimal.Decimal
	currentBalance     decimal.Decimal
	interestRateAPY    decimal.Decimal
	interestType       valueobject.InterestType
	periodicalPayment  decimal.Decimal
	startDate          time.Time
	targetedPayoffDate time.Time
	status             valueobject.LiabilityStatus
	installments       []Installment
	version            int
	createdAt          time.Time
	updatedAt          time.Time
	domainEvents       []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLiability creates a liability and generates its initial schedule from
// the start date to the targeted payoff date. When periodicalPayment is zero
// the annuity payment for the full term is derived instead.
func NewLiability(
	userID, name, currency string,
	amount, annualRatePct decimal.Decimal,
	interestType valueobject.InterestType,
	periodicalPayment decimal.Decimal,
	startDate, targetedPayoffDate time.Time,
	now time.Time,
) (Liability, error) {
	if userID == "" {
		return Liability{}, errors.New("user ID is required")
	}
	if name == "" {
		return Liability{}, errors.New("name is required")
	}
	if currency == "" {
		return Liability{}, errors.New("currency is required")
	}
	if amount.Sign() <= 0 {
		return Liability{}, errors.New("amount must be positive")
	}
	if annualRatePct.IsNegative() {
		return Liability{}, errors.New("interest rate cannot be negative")
	}
	if interestType.IsZero() {
		interestType = valueobject.InterestTypeReducing
	}

	term := MonthsBetween(startDate, targetedPayoffDate)
	if term <= 0 {
		return Liability{}, ErrInvalidTerm
	}

	if periodicalPayment.Sign() <= 0 {
		derived, err := MonthlyPayment(amount, annualRatePct, term)
		if err != nil {
			return Liability{}, err
		}
		periodicalPayment = derived
	}

	entries, err := GenerateSchedule(amount, periodicalPayment, annualRatePct, interestType, startDate, term)
	if err != nil {
		return Liability{}, err
	}

	id := uuid.New().String()
	installments := make([]Installment, 0, len(entries))
	for _, e := range entries {
		installments = append(installments, NewInstallment(id, e, e.Period, len(entries)))
	}

	l := Liability{
		id:                 id,
		userID:             userID,
		name:               name,
		currency:           currency,
		originalAmount:     amount,
		currentBalance:     amount,
		interestRateAPY:    annualRatePct,
		interestType:       interestType,
		periodicalPayment:  periodicalPayment,
		startDate:          startDate,
		targetedPayoffDate: targetedPayoffDate,
		status:             valueobject.LiabilityStatusActive,
		installments:       installments,
		version:            1,
		createdAt:          now,
		updatedAt:          now,
	}

	l.domainEvents = append(l.domainEvents, event.NewLiabilityCreated(
		id, userID, name, currency, amount, annualRatePct, interestType.String(), len(installments),
	))

	return l, nil
}

// ReconstructLiability rebuilds a Liability aggregate from persistence.
func ReconstructLiability(
	id, userID, name, currency string,
	originalAmount, currentBalance, annualRatePct decimal.Decimal,
	interestType valueobject.InterestType,
	periodicalPayment decimal.Decimal,
	startDate, targetedPayoffDate time.Time,
	status valueobject.LiabilityStatus,
	installments []Installment,
	version int,
	createdAt, updatedAt time.Time,
) Liability {
	l := Liability{
		id:                 id,
		userID:             userID,
		name:               name,
		currency:           currency,
		originalAmount:     originalAmount,
		currentBalance:     currentBalance,
		interestRateAPY:    annualRatePct,
		interestType:       interestType,
		periodicalPayment:  periodicalPayment,
		startDate:          startDate,
		targetedPayoffDate: targetedPayoffDate,
		status:             status,
		installments:       installments,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
	l.sortSchedule()
	return l
}

// ---------------------------------------------------------------------------
// Financial parameter changes
// ---------------------------------------------------------------------------

// SetOriginalAmount changes the reference total of the liability. The total
// may never drop below what is still owed.
func (l Liability) SetOriginalAmount(amount decimal.Decimal, now time.Time) (Liability, error) {
	if amount.LessThan(l.currentBalance) {
		return l, ErrBelowCurrentBalance
	}
	next := l.clone()
	next.originalAmount = amount
	next.updatedAt = now
	return next, nil
}

// RecalculateSchedule commits new payment/rate/end-date terms: every open
// (pending or overdue) installment is dropped and a freshly generated tail
// replaces it, starting from now (or from the start date when nothing has
// been paid yet and the liability has not started). Completed and cancelled
// installments are kept untouched and never renumbered.
func (l Liability) RecalculateSchedule(
	newPayment, newRatePct decimal.Decimal,
	newEndDate time.Time,
	now time.Time,
) (Liability, error) {
	if newPayment.Sign() <= 0 {
		return l, errors.New("payment must be positive")
	}
	if newRatePct.IsNegative() {
		return l, errors.New("interest rate cannot be negative")
	}

	effectiveStart := now
	if !l.hasCompletedInstallments() && l.startDate.After(now) {
		effectiveStart = l.startDate
	}

	term := MonthsBetween(effectiveStart, newEndDate)
	if term <= 0 {
		return l, ErrInvalidTerm
	}

	entries, err := GenerateSchedule(l.currentBalance, newPayment, newRatePct, l.interestType, effectiveStart, term)
	if err != nil {
		return l, err
	}

	next := l.clone()

	kept := next.installments[:0]
	maxNumber := 0
	for _, inst := range next.installments {
		if inst.IsOpen() {
			continue
		}
		if inst.paymentNumber > maxNumber {
			maxNumber = inst.paymentNumber
		}
		kept = append(kept, inst)
	}

	total := maxNumber + len(entries)
	for i, e := range entries {
		kept = append(kept, NewInstallment(l.id, e, maxNumber+i+1, total))
	}

	next.installments = kept
	next.periodicalPayment = newPayment
	next.interestRateAPY = newRatePct
	next.targetedPayoffDate = newEndDate
	next.updatedAt = now
	next.sortSchedule()

	next.domainEvents = append(next.domainEvents, event.NewScheduleRecalculated(
		l.id, l.userID, newPayment, newRatePct, newEndDate, len(entries),
	))

	return next, nil
}

// ---------------------------------------------------------------------------
// Skip / edit redistribution
// ---------------------------------------------------------------------------

// SkipInstallment cancels one open installment and moves its amount
// elsewhere according to the policy. All three policies preserve the total
// of non-cancelled installment amounts exactly.
func (l Liability) SkipInstallment(
	installmentID string,
	policy valueobject.SkipPolicy,
	now time.Time,
) (Liability, error) {
	next := l.clone()

	idx, err := next.openInstallmentIndex(installmentID)
	if err != nil {
		return l, err
	}
	skipped := next.installments[idx]
	amount := skipped.amount

	switch {
	case policy.Equal(valueobject.SkipPolicyAddToNext):
		nextIdx := next.nextOpenAfter(idx)
		if nextIdx < 0 {
			return l, ErrNoFollowingInstallment
		}
		next.installments[nextIdx].addAmount(amount)

	case policy.Equal(valueobject.SkipPolicyAddToEnd):
		lastDue := next.lastDueDate()
		newTotal := next.maxPaymentNumber() + 1
		// Open rows pick up the new total; completed and cancelled rows keep
		// the count they were settled under.
		for i := range next.installments {
			if next.installments[i].IsOpen() {
				next.installments[i].totalPayments = newTotal
			}
		}
		next.installments = append(next.installments, Installment{
			id:            uuid.New().String(),
			liabilityID:   l.id,
			dueDate:       lastDue.AddDate(0, 1, 0),
			amount:        amount,
			status:        valueobject.InstallmentStatusPending,
			principal:     amount,
			interest:      decimal.Zero,
			paymentNumber: newTotal,
			totalPayments: newTotal,
		})

	case policy.Equal(valueobject.SkipPolicySpreadAcross):
		targets := next.openIndicesAfter(idx)
		if len(targets) == 0 {
			return l, ErrNoFollowingInstallment
		}
		// Even split in whole cents; the rounding remainder lands on the last
		// remaining installment so the redistributed total matches exactly.
		n := decimal.NewFromInt(int64(len(targets)))
		per := amount.Div(n).Truncate(2)
		for _, t := range targets[:len(targets)-1] {
			next.installments[t].addAmount(per)
		}
		lastShare := amount.Sub(per.Mul(decimal.NewFromInt(int64(len(targets) - 1))))
		next.installments[targets[len(targets)-1]].addAmount(lastShare)

	default:
		return l, errors.New("unknown skip policy")
	}

	next.installments[idx].status = valueobject.InstallmentStatusCancelled
	next.updatedAt = now
	next.sortSchedule()

	next.domainEvents = append(next.domainEvents, event.NewInstallmentSkipped(
		l.id, l.userID, installmentID, policy.String(), amount,
	))

	return next, nil
}

// ChangeInstallmentAmount edits one open installment's amount under the
// given propagation policy. oneTime and updateAll intentionally change the
// total obligation; addToNext keeps it constant by moving the delta to the
// following installment.
func (l Liability) ChangeInstallmentAmount(
	installmentID string,
	newAmount decimal.Decimal,
	policy valueobject.AmountChangePolicy,
	now time.Time,
) (Liability, error) {
	if newAmount.Sign() <= 0 {
		return l, errors.New("amount must be positive")
	}

	next := l.clone()

	idx, err := next.openInstallmentIndex(installmentID)
	if err != nil {
		return l, err
	}
	oldAmount := next.installments[idx].amount

	switch {
	case policy.Equal(valueobject.AmountPolicyOneTime):
		next.installments[idx].setAmount(newAmount)

	case policy.Equal(valueobject.AmountPolicyUpdateAll):
		due := next.installments[idx].dueDate
		for i := range next.installments {
			if !next.installments[i].IsOpen() {
				continue
			}
			if next.installments[i].dueDate.Before(due) {
				continue
			}
			next.installments[i].setAmount(newAmount)
		}

	case policy.Equal(valueobject.AmountPolicyAddToNext):
		// The edited installment keeps its original amount; only the delta
		// moves forward.
		nextIdx := next.nextOpenAfter(idx)
		if nextIdx < 0 {
			return l, ErrNoFollowingInstallment
		}
		next.installments[nextIdx].addAmount(newAmount.Sub(oldAmount))

	default:
		return l, errors.New("unknown amount change policy")
	}

	next.updatedAt = now

	next.domainEvents = append(next.domainEvents, event.NewInstallmentAmountChanged(
		l.id, l.userID, installmentID, policy.String(), oldAmount, newAmount,
	))

	return next, nil
}

// ChangeInstallmentDate moves one open installment's due date within the
// liability's start/payoff bounds.
func (l Liability) ChangeInstallmentDate(
	installmentID string,
	newDate time.Time,
	now time.Time,
) (Liability, error) {
	if newDate.Before(l.startDate) || newDate.After(l.targetedPayoffDate) {
		return l, ErrOutOfRange
	}

	next := l.clone()

	idx, err := next.openInstallmentIndex(installmentID)
	if err != nil {
		return l, err
	}
	oldDate := next.installments[idx].dueDate
	next.installments[idx].dueDate = newDate
	next.updatedAt = now
	next.sortSchedule()

	next.domainEvents = append(next.domainEvents, event.NewInstallmentDateChanged(
		l.id, l.userID, installmentID, oldDate, newDate,
	))

	return next, nil
}

// ---------------------------------------------------------------------------
// Payments and status transitions
// ---------------------------------------------------------------------------

// MarkInstallmentPaid completes an open installment and reduces the balance
// by its principal component (the full amount when no breakdown is present).
func (l Liability) MarkInstallmentPaid(installmentID string, now time.Time) (Liability, error) {
	next := l.clone()

	idx, err := next.openInstallmentIndex(installmentID)
	if err != nil {
		return l, err
	}

	inst := &next.installments[idx]
	inst.status = valueobject.InstallmentStatusCompleted

	principalPortion := inst.principal
	if principalPortion.Sign() <= 0 {
		principalPortion = inst.amount
	}

	next.currentBalance = next.currentBalance.Sub(principalPortion)
	if next.currentBalance.IsNegative() {
		next.currentBalance = decimal.Zero
	}
	next.updatedAt = now

	next.domainEvents = append(next.domainEvents, event.NewInstallmentPaid(
		l.id, l.userID, installmentID, inst.amount, next.currentBalance,
	))

	if next.currentBalance.IsZero() {
		next.status = valueobject.LiabilityStatusPaidOff
	}

	return next, nil
}

// MarkOverdue flips every pending installment past its due date to overdue
// and, when any were found on an active liability, the liability itself.
// It returns the number of installments flipped.
func (l Liability) MarkOverdue(now time.Time) (Liability, int) {
	next := l.clone()

	count := 0
	for i := range next.installments {
		inst := &next.installments[i]
		if inst.status.Equal(valueobject.InstallmentStatusPending) && inst.dueDate.Before(now) {
			inst.status = valueobject.InstallmentStatusOverdue
			count++
		}
	}
	if count == 0 {
		return l, 0
	}

	if next.status.Equal(valueobject.LiabilityStatusActive) {
		next.status = valueobject.LiabilityStatusOverdue
	}
	next.updatedAt = now
	next.domainEvents = append(next.domainEvents, event.NewLiabilityOverdue(l.id, l.userID, count))

	return next, count
}

// Pause transitions ACTIVE -> PAUSED.
func (l Liability) Pause(now time.Time) (Liability, error) {
	if !l.status.Equal(valueobject.LiabilityStatusActive) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	next := l.clone()
	next.status = valueobject.LiabilityStatusPaused
	next.updatedAt = now
	return next, nil
}

// Resume transitions PAUSED -> ACTIVE.
func (l Liability) Resume(now time.Time) (Liability, error) {
	if !l.status.Equal(valueobject.LiabilityStatusPaused) {
		return l, valueobject.ErrInvalidStatusTransition
	}
	next := l.clone()
	next.status = valueobject.LiabilityStatusActive
	next.updatedAt = now
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Liability) ID() string                             { return l.id }
func (l Liability) UserID() string                         { return l.userID }
func (l Liability) Name() string                           { return l.name }
func (l Liability) Currency() string                       { return l.currency }
func (l Liability) OriginalAmount() decimal.Decimal        { return l.originalAmount }
func (l Liability) CurrentBalance() decimal.Decimal        { return l.currentBalance }
func (l Liability) InterestRateAPY() decimal.Decimal       { return l.interestRateAPY }
func (l Liability) InterestType() valueobject.InterestType { return l.interestType }
func (l Liability) PeriodicalPayment() decimal.Decimal     { return l.periodicalPayment }
func (l Liability) StartDate() time.Time                   { return l.startDate }
func (l Liability) TargetedPayoffDate() time.Time          { return l.targetedPayoffDate }
func (l Liability) Status() valueobject.LiabilityStatus    { return l.status }
func (l Liability) Version() int                           { return l.version }
func (l Liability) CreatedAt() time.Time                   { return l.createdAt }
func (l Liability) UpdatedAt() time.Time                   { return l.updatedAt }
func (l Liability) DomainEvents() []event.DomainEvent      { return l.domainEvents }

// RemainingOwed is the balance still to be paid off.
func (l Liability) RemainingOwed() decimal.Decimal { return l.currentBalance }

// Schedule returns a defensive copy of the installment collection, ordered
// by due date.
func (l Liability) Schedule() []Installment {
	if l.installments == nil {
		return nil
	}
	out := make([]Installment, len(l.installments))
	copy(out, l.installments)
	return out
}

// OpenInstallments returns the pending and overdue installments.
func (l Liability) OpenInstallments() []Installment {
	var out []Installment
	for _, inst := range l.installments {
		if inst.IsOpen() {
			out = append(out, inst)
		}
	}
	return out
}

// InstallmentByID looks an installment up in the schedule.
func (l Liability) InstallmentByID(id string) (Installment, bool) {
	for _, inst := range l.installments {
		if inst.id == id {
			return inst, true
		}
	}
	return Installment{}, false
}

// ScheduledTotal sums the amounts of all non-cancelled installments. The
// redistribution policies keep this invariant except for explicit amount
// edits.
func (l Liability) ScheduledTotal() decimal.Decimal {
	total := decimal.Zero
	for _, inst := range l.installments {
		if inst.status.Equal(valueobject.InstallmentStatusCancelled) {
			continue
		}
		total = total.Add(inst.amount)
	}
	return total
}

// ClearEvents returns a copy with an empty event list.
func (l Liability) ClearEvents() Liability {
	next := l
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

func (l Liability) clone() Liability {
	next := l
	next.installments = make([]Installment, len(l.installments))
	copy(next.installments, l.installments)
	next.domainEvents = copyEvents(l.domainEvents)
	return next
}

func copyEvents(evts []event.DomainEvent) []event.DomainEvent {
	if evts == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(evts))
	copy(out, evts)
	return out
}

func (l Liability) hasCompletedInstallments() bool {
	for _, inst := range l.installments {
		if inst.status.Equal(valueobject.InstallmentStatusCompleted) {
			return true
		}
	}
	return false
}

func (l *Liability) sortSchedule() {
	sort.SliceStable(l.installments, func(i, j int) bool {
		a, b := l.installments[i], l.installments[j]
		if a.dueDate.Equal(b.dueDate) {
			return a.paymentNumber < b.paymentNumber
		}
		return a.dueDate.Before(b.dueDate)
	})
}

// openInstallmentIndex finds an installment and verifies it can still be
// modified.
func (l Liability) openInstallmentIndex(installmentID string) (int, error) {
	for i, inst := range l.installments {
		if inst.id != installmentID {
			continue
		}
		if !inst.IsOpen() {
			return -1, ErrInstallmentNotOpen
		}
		return i, nil
	}
	return -1, ErrInstallmentNotFound
}

// nextOpenAfter returns the index of the first open installment due after
// the one at idx, or -1.
func (l Liability) nextOpenAfter(idx int) int {
	due := l.installments[idx].dueDate
	best := -1
	for i, inst := range l.installments {
		if i == idx || !inst.IsOpen() || !inst.dueDate.After(due) {
			continue
		}
		if best < 0 || inst.dueDate.Before(l.installments[best].dueDate) {
			best = i
		}
	}
	return best
}

// openIndicesAfter returns the indices of all open installments due after
// the one at idx, ordered by due date.
func (l Liability) openIndicesAfter(idx int) []int {
	due := l.installments[idx].dueDate
	var out []int
	for i, inst := range l.installments {
		if i == idx || !inst.IsOpen() || !inst.dueDate.After(due) {
			continue
		}
		out = append(out, i)
	}
	sort.SliceStable(out, func(a, b int) bool {
		return l.installments[out[a]].dueDate.Before(l.installments[out[b]].dueDate)
	})
	return out
}

func (l Liability) lastDueDate() time.Time {
	last := l.startDate
	for _, inst := range l.installments {
		if inst.dueDate.After(last) {
			last = inst.dueDate
		}
	}
	return last
}

func (l Liability) maxPaymentNumber() int {
	max := 0
	for _, inst := range l.installments {
		if inst.paymentNumber > max {
			max = inst.paymentNumber
		}
	}
	return max
}
