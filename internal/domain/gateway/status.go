package gateway

import (
	"fmt"

	"coursepay/internal/controller/apperror"
)

// Decision is the internal verdict derived from an external status.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionFail    Decision = "fail"
)

// Known external order statuses (PayPal checkout vocabulary).
const (
	StatusCreated             = "CREATED"
	StatusSaved               = "SAVED"
	StatusApproved            = "APPROVED"
	StatusVoided              = "VOIDED"
	StatusCompleted           = "COMPLETED"
	StatusPayerActionRequired = "PAYER_ACTION_REQUIRED"
)

// MapExternalStatus translates an external order status into a capture
// decision. Approved and Completed settle; the other recognized statuses
// fail the payment. An unrecognized status is a protocol error and is
// never treated as success.
func MapExternalStatus(status string) (Decision, error) {
	switch status {
	case StatusApproved, StatusCompleted:
		return DecisionApprove, nil
	case StatusCreated, StatusSaved, StatusVoided, StatusPayerActionRequired:
		return DecisionFail, nil
	default:
		return "", fmt.Errorf("%w: status %q", apperror.ErrGatewayProtocol, status)
	}
}
