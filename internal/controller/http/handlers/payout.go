package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coursepay/internal/domain/payout"
)

type PayoutHandler struct {
	service *payout.Service
}

func NewPayoutHandler(s *payout.Service) PayoutHandler {
	return PayoutHandler{service: s}
}

type requestPayoutParams struct {
	InstructorID uuid.UUID `json:"instructor_id" binding:"required"`
	Amount       float64   `json:"amount" binding:"required"`
}

func (h *PayoutHandler) Request(c *gin.Context) {
	var params requestPayoutParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	res, err := h.service.Request(c, params.InstructorID, params.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *PayoutHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("payout_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payout_id"})
		return
	}

	if err := h.service.Approve(c, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type denyPayoutParams struct {
	Reason string `json:"reason"`
}

func (h *PayoutHandler) Deny(c *gin.Context) {
	id, err := uuid.Parse(c.Param("payout_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payout_id"})
		return
	}

	var params denyPayoutParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.service.Deny(c, id, params.Reason); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PayoutHandler) Wallet(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user_id"})
		return
	}

	w, history, err := h.service.WalletStatement(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallet": w, "history": history})
}
