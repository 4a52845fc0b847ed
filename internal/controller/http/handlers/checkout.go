package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coursepay/internal/domain/checkout"
)

type CheckoutHandler struct {
	service *checkout.Service
}

func NewCheckoutHandler(s *checkout.Service) CheckoutHandler {
	return CheckoutHandler{service: s}
}

type checkoutParams struct {
	UserID      uuid.UUID `json:"user_id" binding:"required"`
	VoucherCode *string   `json:"voucher_code"`
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var params checkoutParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	res, err := h.service.CreateOrder(c, params.UserID, params.VoucherCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}
