package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coursepay/internal/domain/checkout"
)

type CartHandler struct {
	service *checkout.Service
}

func NewCartHandler(s *checkout.Service) CartHandler {
	return CartHandler{service: s}
}

type addItemParams struct {
	UserID   uuid.UUID `json:"user_id" binding:"required"`
	CourseID uuid.UUID `json:"course_id" binding:"required"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var params addItemParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	res, err := h.service.AddToCart(c, params.UserID, params.CourseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *CartHandler) Get(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user_id"})
		return
	}

	res, err := h.service.OpenCart(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
