package teams

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all routes related to teams
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	teams := r.Group("/teams")
	{
		teams.POST("", CreateTeam)
		teams.GET("/:id", GetTeam)
		teams.PUT("/:id", UpdateTeam)
		teams.DELETE("/:id", DeleteTeam)
	}
}
