package routes

import (
	"github.com/Hazykiller/NGO-WEBSITE/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты.
// Пути живут в корне, а не под /api: их знает задеплоенный виджет.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := ginRouter.Group("")
	{
		appHandlers.HealthHandler.RegisterRoutes(root)
		appHandlers.OrderHandler.RegisterRoutes(root)
		appHandlers.PaymentHandler.RegisterRoutes(root)
		appHandlers.CertificateHandler.RegisterRoutes(root)
	}
}
