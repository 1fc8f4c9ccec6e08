package relations

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all routes linking entities together
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/user-competitions", AddUserToCompetition)
	r.DELETE("/user-competitions/:user_id/:competition_id", RemoveUserFromCompetition)

	r.POST("/user-teams", AddUserToTeam)
	r.DELETE("/user-teams/:user_id/:team_id", RemoveUserFromTeam)

	r.POST("/team-competitions", AddTeamToCompetition)
	r.DELETE("/team-competitions/:team_id/:competition_id", RemoveTeamFromCompetition)

	r.POST("/exercise-tags", AddTagToExercise)
	r.DELETE("/exercise-tags/:exercise_id/:tag_id", RemoveTagFromExercise)

	r.POST("/exercise-competitions", AddExerciseToCompetition)
	r.DELETE("/exercise-competitions/:exercise_id/:competition_id", RemoveExerciseFromCompetition)

	r.POST("/container-competitions", AddContainerToCompetition)
	r.DELETE("/container-competitions/:container_id/:competition_id", RemoveContainerFromCompetition)
}
