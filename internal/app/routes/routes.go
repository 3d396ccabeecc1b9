package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/grantsphere/internal/app/controllers"
	"github.com/yigit/grantsphere/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	scholarshipController *controllers.ScholarshipController,
	browseController *controllers.BrowseController,
	healthController *controllers.HealthController,
	wsHandler *websocket.Handler,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", healthController.Health)
	v1.GET("/filters", scholarshipController.GetFilterCategories)
	v1.GET("/recommendations", scholarshipController.GetRecommendations)

	// Stateless catalog queries
	scholarships := v1.Group("/scholarships")
	{
		scholarships.GET("", scholarshipController.GetAllScholarships)
		scholarships.GET("/search", scholarshipController.SearchScholarships)
		scholarships.GET("/:id", scholarshipController.GetScholarshipByID)
	}

	// Browse sessions hold the view state of one client
	sessions := v1.Group("/sessions")
	{
		sessions.POST("", browseController.CreateSession)
		sessions.GET("/:id", browseController.GetSession)
		sessions.DELETE("/:id", browseController.DeleteSession)
		sessions.POST("/:id/commands", browseController.Dispatch)

		sessions.POST("/:id/filters", browseController.ToggleFilter)
		sessions.DELETE("/:id/filters", browseController.ClearFilters)

		sessions.PUT("/:id/search", browseController.SetQuery)
		sessions.POST("/:id/search/focus", browseController.FocusSearch)
		sessions.DELETE("/:id/search/focus", browseController.DismissSearch)
		sessions.POST("/:id/search/keys", browseController.PressKey)
		sessions.POST("/:id/search/select", browseController.SelectSearchResult)

		sessions.POST("/:id/selection", browseController.Select)
		sessions.DELETE("/:id/selection", browseController.CloseDetail)

		sessions.POST("/:id/carousel", browseController.Carousel)
		sessions.POST("/:id/carousel/drag", browseController.Drag)

		if wsHandler != nil {
			sessions.GET("/:id/ws", wsHandler.HandleConnection)
		}
	}
}
