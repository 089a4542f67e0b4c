package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для управления инцидентами
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id", h.updateIncident)
		incidents.DELETE("/:id", h.deleteIncident)
	}

	// Маршрут для проверки местоположения
	api.POST("/location/check", h.checkLocation)

	// Пространственный анализ
	analytics := api.Group("/analytics")
	{
		analytics.GET("/summary", h.getSummary)
		analytics.GET("/clusters", h.getClusters)
		analytics.GET("/buffers", h.getBuffers)
		analytics.GET("/density", h.getDensity)
		analytics.GET("/ellipses", h.getEllipses)
		analytics.GET("/heatmap", h.getHeatmap)
		analytics.GET("/trends", h.getTrends)
		analytics.GET("/charts", h.getCharts)
		analytics.GET("/geojson/:layer", h.getGeoJSON)
	}

	api.POST("/upload", h.uploadImage)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
