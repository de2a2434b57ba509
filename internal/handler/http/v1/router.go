package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Маршруты для управления подписчиками
	subscribers := protected.Group("/subscribers")
	{
		subscribers.POST("", h.createSubscriber)
		subscribers.GET("", h.listSubscribers)
		subscribers.GET("/:id", h.getSubscriber)
		subscribers.DELETE("/:id", h.deleteSubscriber)
	}

	// Маршруты для пожаров
	fires := protected.Group("/fires")
	{
		fires.GET("/active", h.listActiveFires)
		fires.POST("/poll", h.pollFires)
	}

	// Ручной запуск рассылки
	protected.POST("/notifications/run", h.runNotifications)
}
