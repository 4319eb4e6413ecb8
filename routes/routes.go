package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"slotify/handlers"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, ah *handlers.AvailabilityHandler, rh *handlers.RecurringHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	api := r.Group("/api")
	{
		api.GET("/availability", ah.GetAvailability)
		api.POST("/recurring/preview", rh.PreviewPlan)
	}
}
