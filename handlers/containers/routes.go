package containers

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all routes related to containers
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	containers := r.Group("/containers")
	{
		containers.POST("", CreateContainer)
		containers.GET("/:id", GetContainer)
		containers.PUT("/:id", UpdateContainer)
		containers.DELETE("/:id", DeleteContainer)
	}
}
