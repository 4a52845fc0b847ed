package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"coursepay/internal/controller/apperror"
)

// respondError maps domain sentinels onto HTTP status codes. Anything
// unrecognized is a 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrCartEmpty),
		errors.Is(err, apperror.ErrInvalidVoucher),
		errors.Is(err, apperror.ErrInvalidAmount),
		errors.Is(err, apperror.ErrMissingReason):
		status = http.StatusBadRequest

	case errors.Is(err, apperror.ErrCartNotFound),
		errors.Is(err, apperror.ErrOrderNotFound),
		errors.Is(err, apperror.ErrTransactionNotFound),
		errors.Is(err, apperror.ErrWalletNotFound),
		errors.Is(err, apperror.ErrPayoutNotFound),
		errors.Is(err, apperror.ErrCourseNotFound),
		errors.Is(err, apperror.ErrUserNotFound):
		status = http.StatusNotFound

	case errors.Is(err, apperror.ErrTransactionReuse),
		errors.Is(err, apperror.ErrTransactionFinal),
		errors.Is(err, apperror.ErrOrderNotPayable),
		errors.Is(err, apperror.ErrAlreadyGranted),
		errors.Is(err, apperror.ErrPayoutNotPending),
		errors.Is(err, apperror.ErrInstructorNotOnboarded):
		status = http.StatusConflict

	case errors.Is(err, apperror.ErrInsufficientFunds):
		status = http.StatusUnprocessableEntity

	case errors.Is(err, apperror.ErrGatewayProtocol):
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{"message": err.Error()})
}
