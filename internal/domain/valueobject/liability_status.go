package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// LiabilityStatus – immutable value object
// ---------------------------------------------------------------------------

// LiabilityStatus represents the lifecycle stage of a liability.
type LiabilityStatus struct {
	value string
}

const (
	liabilityStatusActive  = "ACTIVE"
	liabilityStatusPaidOff = "PAID_OFF"
	liabilityStatusPaused  = "PAUSED"
	liabilityStatusOverdue = "OVERDUE"
)

var (
	LiabilityStatusActive  = LiabilityStatus{value: liabilityStatusActive}
	LiabilityStatusPaidOff = LiabilityStatus{value: liabilityStatusPaidOff}
	LiabilityStatusPaused  = LiabilityStatus{value: liabilityStatusPaused}
	LiabilityStatusOverdue = LiabilityStatus{value: liabilityStatusOverdue}
)

var validLiabilityStatuses = map[string]LiabilityStatus{
	liabilityStatusActive:  LiabilityStatusActive,
	liabilityStatusPaidOff: LiabilityStatusPaidOff,
	liabilityStatusPaused:  LiabilityStatusPaused,
	liabilityStatusOverdue: LiabilityStatusOverdue,
}

// NewLiabilityStatus creates a LiabilityStatus from a raw string.
func NewLiabilityStatus(s string) (LiabilityStatus, error) {
	v, ok := validLiabilityStatuses[s]
	if !ok {
		return LiabilityStatus{}, fmt.Errorf("invalid liability status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s LiabilityStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LiabilityStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LiabilityStatus) Equal(other LiabilityStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// InstallmentStatus – immutable value object
// ---------------------------------------------------------------------------

// InstallmentStatus represents the lifecycle stage of a scheduled installment.
type InstallmentStatus struct {
	value string
}

const (
	installmentStatusPending   = "PENDING"
	installmentStatusCompleted = "COMPLETED"
	installmentStatusOverdue   = "OVERDUE"
	installmentStatusCancelled = "CANCELLED"
)

var (
	InstallmentStatusPending   = InstallmentStatus{value: installmentStatusPending}
	InstallmentStatusCompleted = InstallmentStatus{value: installmentStatusCompleted}
	InstallmentStatusOverdue   = InstallmentStatus{value: installmentStatusOverdue}
	InstallmentStatusCancelled = InstallmentStatus{value: installmentStatusCancelled}
)

var validInstallmentStatuses = map[string]InstallmentStatus{
	installmentStatusPending:   InstallmentStatusPending,
	installmentStatusCompleted: InstallmentStatusCompleted,
	installmentStatusOverdue:   InstallmentStatusOverdue,
	installmentStatusCancelled: InstallmentStatusCancelled,
}

// NewInstallmentStatus creates an InstallmentStatus from a raw string.
func NewInstallmentStatus(s string) (InstallmentStatus, error) {
	v, ok := validInstallmentStatuses[s]
	if !ok {
		return InstallmentStatus{}, fmt.Errorf("invalid installment status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s InstallmentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s InstallmentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s InstallmentStatus) Equal(other InstallmentStatus) bool { return s.value == other.value }

// IsOpen reports whether the installment still counts toward the remaining
// obligation (pending or overdue, not yet paid and not cancelled).
func (s InstallmentStatus) IsOpen() bool {
	return s.value == installmentStatusPending || s.value == installmentStatusOverdue
}

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var ErrInvalidStatusTransition = errors.New("invalid status transition")
