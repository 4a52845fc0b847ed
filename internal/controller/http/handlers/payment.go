package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coursepay/internal/domain/payment"
)

type PaymentHandler struct {
	service *payment.Service
}

func NewPaymentHandler(s *payment.Service) PaymentHandler {
	return PaymentHandler{service: s}
}

// ApprovalURL creates the external payment order for a pending order and
// returns the URL the buyer is redirected to.
func (h *PaymentHandler) ApprovalURL(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order_id"})
		return
	}

	url, err := h.service.ApprovalURL(c, orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"approval_url": url})
}

type captureParams struct {
	Token   string `json:"token" binding:"required"`
	PayerID string `json:"payer_id"`
}

// Capture finalizes a payment after the buyer returns from the gateway:
// it polls the external order state and completes or fails the local
// transaction accordingly.
func (h *PaymentHandler) Capture(c *gin.Context) {
	var params captureParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	res, err := h.service.Capture(c, params.Token, params.PayerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
