package relations

import (
	"net/http"

	"lycosidae/database"
	"lycosidae/services"
	"lycosidae/utils/response"

	"github.com/gin-gonic/gin"
)

// AddUserToCompetition enrolls a user in a competition
// @Summary Enroll a user in a competition
// @Tags Relations
// @Accept json
// @Produce json
// @Param request body UserCompetitionRequest true "Relation data"
// @Success 201 {object} models.UserCompetition
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /user-competitions [post]
func AddUserToCompetition(c *gin.Context) {
	var req UserCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	relation, err := services.AddUserToCompetition(database.DB, req.UserID, req.CompetitionID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, relation)
}

// RemoveUserFromCompetition removes a user's competition enrollment
// @Summary Remove a user from a competition
// @Tags Relations
// @Param user_id path string true "User ID"
// @Param competition_id path string true "Competition ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /user-competitions/{user_id}/{competition_id} [delete]
func RemoveUserFromCompetition(c *gin.Context) {
	if err := services.RemoveUserFromCompetition(database.DB, c.Param("user_id"), c.Param("competition_id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddUserToTeam places a user on a team
// @Summary Add a user to a team
// @Tags Relations
// @Accept json
// @Produce json
// @Param request body UserTeamRequest true "Relation data"
// @Success 201 {object} models.UserTeam
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /user-teams [post]
func AddUserToTeam(c *gin.Context) {
	var req UserTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	relation, err := services.AddUserToTeam(database.DB, req.UserID, req.TeamID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, relation)
}

// RemoveUserFromTeam removes a user's team membership
// @Summary Remove a user from a team
// @Tags Relations
// @Param user_id path string true "User ID"
// @Param team_id path string true "Team ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /user-teams/{user_id}/{team_id} [delete]
func RemoveUserFromTeam(c *gin.Context) {
	if err := services.RemoveUserFromTeam(database.DB, c.Param("user_id"), c.Param("team_id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddTeamToCompetition enrolls a team in a competition
// @Summary Enroll a team in a competition
// @Tags Relations
// @Accept json
// @Produce json
// @Param request body TeamCompetitionRequest true "Relation data"
// @Success 201 {object} models.TeamCompetition
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /team-competitions [post]
func AddTeamToCompetition(c *gin.Context) {
	var req TeamCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	relation, err := services.AddTeamToCompetition(database.DB, req.TeamID, req.CompetitionID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, relation)
}

// RemoveTeamFromCompetition removes a team's competition enrollment
// @Summary Remove a team from a competition
// @Tags Relations
// @Param team_id path string true "Team ID"
// @Param competition_id path string true "Competition ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /team-competitions/{team_id}/{competition_id} [delete]
func RemoveTeamFromCompetition(c *gin.Context) {
	if err := services.RemoveTeamFromCompetition(database.DB, c.Param("team_id"), c.Param("competition_id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddTagToExercise labels an exercise with a tag
// @Summary Add a tag to an exercise
// @Tags Relations
// @Accept json
// @Produce json
// @Param request body ExerciseTagRequest true "Relation data"
// @Success 201 {object} models.ExerciseTag
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /exercise-tags [post]
func AddTagToExercise(c *gin.Context) {
	var req ExerciseTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	relation, err := services.AddTagToExercise(database.DB, req.ExerciseID, req.TagID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, relation)
}

// RemoveTagFromExercise removes a tag label from an exercise
// @Summary Remove a tag from an exercise
// @Tags Relations
// @Param exercise_id path string true "Exercise ID"
// @Param tag_id path string true "Tag ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /exercise-tags/{exercise_id}/{tag_id} [delete]
func RemoveTagFromExercise(c *gin.Context) {
	if err := services.RemoveTagFromExercise(database.DB, c.Param("exercise_id"), c.Param("tag_id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddExerciseToCompetition attaches an exercise to a competition
// @Summary Add an exercise to a competition
// @Tags Relations
// @Accept json
// @Produce json
// @Param request body ExerciseCompetitionRequest true "Relation data"
// @Success 201 {object} models.ExerciseCompetition
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /exercise-competitions [post]
func AddExerciseToCompetition(c *gin.Context) {
	var req ExerciseCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	relation, err := services.AddExerciseToCompetition(database.DB, req.ExerciseID, req.CompetitionID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, relation)
}

// RemoveExerciseFromCompetition detaches an exercise from a competition
// @Summary Remove an exercise from a competition
// @Tags Relations
// @Param exercise_id path string true "Exercise ID"
// @Param competition_id path string true "Competition ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /exercise-competitions/{exercise_id}/{competition_id} [delete]
func RemoveExerciseFromCompetition(c *gin.Context) {
	if err := services.RemoveExerciseFromCompetition(database.DB, c.Param("exercise_id"), c.Param("competition_id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddContainerToCompetition attaches a container to a competition
// @Summary Add a container to a competition
// @Tags Relations
// @Accept json
// @Produce json
// @Param request body ContainerCompetitionRequest true "Relation data"
// @Success 201 {object} models.ContainerCompetition
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /container-competitions [post]
func AddContainerToCompetition(c *gin.Context) {
	var req ContainerCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	relation, err := services.AddContainerToCompetition(database.DB, req.ContainerID, req.CompetitionID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, relation)
}

// RemoveContainerFromCompetition detaches a container from a competition
// @Summary Remove a container from a competition
// @Tags Relations
// @Param container_id path string true "Container ID"
// @Param competition_id path string true "Competition ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /container-competitions/{container_id}/{competition_id} [delete]
func RemoveContainerFromCompetition(c *gin.Context) {
	if err := services.RemoveContainerFromCompetition(database.DB, c.Param("container_id"), c.Param("competition_id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
