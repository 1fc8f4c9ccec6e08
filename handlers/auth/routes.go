package auth

import (
	"lycosidae/middleware"
	"lycosidae/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the registration and authentication routes
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, jm *utils.JWTManager) {
	r.POST("/register", Register)
	r.POST("/login", Login(jm))
	r.GET("/me", middleware.JWTAuth(jm), Me)
}
