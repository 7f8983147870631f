package model

import "errors"

// Domain rule violations. These are sentinel values so that boundaries can
// translate them (gRPC status codes, HTTP responses) with errors.Is.
var (
	// ErrInvalidTerm is returned when a computation is asked for a
	// non-positive number of months.
	ErrInvalidTerm = errors.New("term must be a positive number of months")

	// ErrNonAmortizing is returned when a payment does not even cover one
	// month of interest, so the balance would never reach zero.
	ErrNonAmortizing = errors.New("payment too small to ever reduce the balance")

	// ErrBelowCurrentBalance is returned when a proposed total amount is
	// smaller than what is still owed.
	ErrBelowCurrentBalance = errors.New("total amount cannot be below the current balance")

	// ErrOutOfRange is returned when a due date falls outside the
	// liability's start and targeted payoff bounds.
	ErrOutOfRange = errors.New("date outside the liability's start and payoff bounds")

	// ErrMissingAccount is returned when a settlement adjustment that moves
	// account money does not name an account.
	ErrMissingAccount = errors.New("adjustment requires an account")

	// ErrUnbalanced is returned when settlement execution is attempted while
	// either side is still non-zero and no explicit final action was chosen
	// (or none could dispose of the remainder).
	ErrUnbalanced = errors.New("settlement not balanced and no final action chosen")

	// ErrFinalActionMismatch is returned when the chosen final action cannot
	// dispose of the unaccounted remainder's side (forgiving debt when funds
	// remain, erasing funds when debt remains).
	ErrFinalActionMismatch = errors.New("final action does not dispose of the unaccounted remainder")

	// ErrConfirmationMismatch is returned when the typed delete confirmation
	// does not exactly match the liability name.
	ErrConfirmationMismatch = errors.New("confirmation text does not match")

	// ErrStorageFailure wraps persistence errors during atomic operations;
	// state is untouched and the call may be retried.
	ErrStorageFailure = errors.New("storage operation failed")

	ErrLiabilityNotFound      = errors.New("liability not found")
	ErrInstallmentNotFound    = errors.New("installment not found")
	ErrInstallmentNotOpen     = errors.New("installment is not open for modification")
	ErrNoFollowingInstallment = errors.New("no following installment to receive the amount")
)
