package routes

import (
	"tutorrec_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all HTTP routes. The recommendation endpoints live
// at the root so the calling backend can keep posting to /recommend.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("")
	{
		appHandlers.RecommendationHandler.RegisterRoutes(api)
		appHandlers.HealthHandler.RegisterRoutes(api)
	}
}
