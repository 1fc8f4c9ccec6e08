package exercises

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all routes related to exercises
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	exercises := r.Group("/exercises")
	{
		exercises.POST("", CreateExercise)
		exercises.GET("/:id", GetExercise)
		exercises.PUT("/:id", UpdateExercise)
		exercises.DELETE("/:id", DeleteExercise)
	}
}
