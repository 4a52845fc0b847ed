// Package apperror declares the sentinel errors shared between domain
// services and the HTTP layer. Handlers map them onto status codes.
package apperror

import "errors"

// Validation errors, rejected before any write.
var (
	ErrCartEmpty      = errors.New("cart is empty")
	ErrInvalidVoucher = errors.New("voucher is invalid or expired")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrMissingReason  = errors.New("denial reason is required")
)

// Not-found errors.
var (
	ErrCartNotFound        = errors.New("cart not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrPayoutNotFound      = errors.New("payout request not found")
	ErrCourseNotFound      = errors.New("course not found")
	ErrUserNotFound        = errors.New("user not found")
)

// Conflict errors; never silently ignored.
var (
	ErrTransactionReuse       = errors.New("transaction already tokenized for another payment")
	ErrTransactionFinal       = errors.New("transaction already in a terminal state")
	ErrOrderNotPayable        = errors.New("order is not awaiting payment")
	ErrAlreadyGranted         = errors.New("course access already granted")
	ErrPayoutNotPending       = errors.New("payout request is not pending")
	ErrInstructorNotOnboarded = errors.New("instructor has no wallet")
)

// ErrInsufficientFunds rejects a payout request larger than the balance.
var ErrInsufficientFunds = errors.New("insufficient wallet balance")

// ErrGatewayProtocol flags an unrecognized external payment status. The
// local transaction stays pending; the sweeper resolves it eventually.
var ErrGatewayProtocol = errors.New("unexpected payment gateway response")
