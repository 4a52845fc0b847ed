package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursepay/internal/controller/apperror"
)

func TestMapExternalStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status   string
		decision Decision
	}{
		{StatusApproved, DecisionApprove},
		{StatusCompleted, DecisionApprove},
		{StatusCreated, DecisionFail},
		{StatusSaved, DecisionFail},
		{StatusVoided, DecisionFail},
		{StatusPayerActionRequired, DecisionFail},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			decision, err := MapExternalStatus(tc.status)
			require.NoError(t, err)
			assert.Equal(t, tc.decision, decision)
		})
	}

	t.Run("unknown status is a protocol error, never a success", func(t *testing.T) {
		for _, status := range []string{"", "approved", "PENDING", "SETTLED"} {
			_, err := MapExternalStatus(status)
			assert.ErrorIs(t, err, apperror.ErrGatewayProtocol, "status %q", status)
		}
	})
}
