package routes

import (
	"net/http"

	"lycosidae/config"
	"lycosidae/handlers/auth"
	"lycosidae/handlers/competitions"
	"lycosidae/handlers/containers"
	"lycosidae/handlers/exercises"
	"lycosidae/handlers/relations"
	"lycosidae/handlers/tags"
	"lycosidae/handlers/teams"
	"lycosidae/handlers/users"
	"lycosidae/middleware"
	"lycosidae/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "lycosidae/docs"
)

const rootMessage = "Microservice is up!"

// SetupRouter builds the gin engine with all middleware and routes.
func SetupRouter(cfg *config.Config, jm *utils.JWTManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	// Health check used by the compose stack.
	r.GET("/", healthCheck)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/route")
	api.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
	api.Use(middleware.RateLimiterMiddleware(rateLimiter))

	api.GET("", healthCheck)

	auth.RegisterRoutes(api, jm)
	users.RegisterRoutes(api)
	competitions.RegisterRoutes(api)
	exercises.RegisterRoutes(api)
	tags.RegisterRoutes(api)
	teams.RegisterRoutes(api)
	containers.RegisterRoutes(api)
	relations.RegisterRoutes(api)

	return r
}

// healthCheck reports that the service is alive
// @Summary Health check
// @Description Report that the service is up
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": rootMessage,
		"service": "lycosidae",
	})
}
