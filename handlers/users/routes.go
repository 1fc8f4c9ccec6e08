package users

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all routes related to users
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("/:id", GetUser)
		users.PUT("/:id", UpdateUser)
		users.DELETE("/:id", DeleteUser)
	}
}
