package handlers

import (
	"net/http"

	"github.com/Hazykiller/NGO-WEBSITE/internal/services"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
	orders *services.OrderService
}

func NewHealthHandler(base *BaseHandler, orders *services.OrderService) *HealthHandler {
	return &HealthHandler{
		BaseHandler: base,
		orders:      orders,
	}
}

func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Status)
}

// Status reports liveness and which gateway mode is active, so the
// frontend knows whether to open a real checkout or the simulator.
func (h *HealthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"mode":   h.orders.Mode(),
	})
}
