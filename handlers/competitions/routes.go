package competitions

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all routes related to competitions
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	competitions := r.Group("/competitions")
	{
		competitions.POST("", CreateCompetition)
		competitions.GET("/invite/:invite_code", GetCompetitionByInviteCode)
		competitions.GET("/:id", GetCompetition)
		competitions.PUT("/:id", UpdateCompetition)
		competitions.DELETE("/:id", DeleteCompetition)
	}
}
