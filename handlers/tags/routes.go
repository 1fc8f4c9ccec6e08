package tags

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all routes related to tags
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	tags := r.Group("/tags")
	{
		tags.POST("", CreateTag)
		tags.GET("/type/:tag_type", GetTagByType)
		tags.GET("/:id", GetTag)
		tags.PUT("/:id", UpdateTag)
		tags.DELETE("/:id", DeleteTag)
	}
}
