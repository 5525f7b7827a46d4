package routes

import (
	"bp_analytics/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth     = "/auth"
	PathDatasets = "/datasets"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group := rg.Group(PathAuth)
	{
		group.POST("/login", authHandler.Login)
		group.POST("/logout", authHandler.RequireSession(), authHandler.Logout)
	}
}

func addAnalyticsRoutes(
	rg *gin.RouterGroup,
	authHandler *handlers.AuthHandler,
	datasetHandler *handlers.DatasetHandler,
	reportHandler *handlers.ReportHandler,
) {
	datasets := rg.Group(PathDatasets, authHandler.RequireSession())
	{
		datasets.POST("", datasetHandler.Upload)
		datasets.GET("/:id/summary", reportHandler.Summary)
		datasets.GET("/:id/orders", reportHandler.Orders)
		datasets.GET("/:id/orders/export", reportHandler.Export)
		datasets.GET("/:id/breakdowns/:dimension", reportHandler.Breakdown)
		datasets.GET("/:id/providers", reportHandler.Providers)
		datasets.GET("/:id/providers/:name", reportHandler.ProviderDetail)
		datasets.GET("/:id/supervisors", reportHandler.Supervisors)
		datasets.GET("/:id/supervisors/:name", reportHandler.SupervisorDetail)
		datasets.GET("/:id/heatmap", reportHandler.Heatmap)
		datasets.GET("/:id/filters", reportHandler.FilterOptions)
	}
}
