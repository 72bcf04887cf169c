package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"primerentals/handlers"
	"primerentals/middleware"
)

// RegisterToolRoutes registers the tool endpoints behind the API key
// check.
func RegisterToolRoutes(r *gin.Engine, hb *handlers.HandlerBundle, apiKey string) {
	tools := r.Group("/tools")
	{
		tools.Use(middleware.APIKeyMiddleware(apiKey))
		tools.POST("/check-availability", hb.CheckAvailability)
		tools.POST("/get-price", hb.GetPrice)
		tools.POST("/calculate-price", hb.CalculatePrice)
		tools.POST("/create-booking", hb.CreateBooking)
		tools.POST("/handoff", hb.HumanHandoff)
		tools.GET("/catalog", hb.ListCatalog)
	}
}

// RegisterHealthRoute registers unauthenticated health-check endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "Prime Event Rentals Tools"})
	}
	r.GET("/", health)
	r.GET("/health", health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, apiKey string) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-API-Key"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterToolRoutes(r, hb, apiKey)
}
