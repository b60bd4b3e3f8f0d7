package handlers

import (
	"net/http"

	"github.com/Hazykiller/NGO-WEBSITE/internal/dto"
	"github.com/Hazykiller/NGO-WEBSITE/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	*BaseHandler
	orders *services.OrderService
}

func NewOrderHandler(base *BaseHandler, orders *services.OrderService) *OrderHandler {
	return &OrderHandler{
		BaseHandler: base,
		orders:      orders,
	}
}

func (h *OrderHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/create_order", h.Create)
}

// Create godoc
// @Summary Create a donation order
// @Description Registers a payment order with the gateway (or fabricates one in dummy mode)
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Donation amount in INR plus optional donor details"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} apperrors.AppError "Invalid or non-positive amount"
// @Failure 500 {object} apperrors.AppError "Gateway order creation failed"
// @Router /create_order [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Deployed widgets post all sorts of bodies; treat anything
		// unreadable as empty and let the amount checks answer.
		req = dto.CreateOrderRequest{}
	}

	resp, err := h.orders.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
