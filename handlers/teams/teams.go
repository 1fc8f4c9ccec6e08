package teams

import (
	"net/http"

	"lycosidae/database"
	"lycosidae/services"
	"lycosidae/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateTeam creates a new team
// @Summary Create a team
// @Description Create a team referencing an existing competition and creator
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body CreateTeamRequest true "Team data"
// @Success 201 {object} models.Team
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /teams [post]
func CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	team, err := services.CreateTeam(database.DB, services.CreateTeamInput{
		Name:          req.Name,
		CompetitionID: req.CompetitionID,
		CreatorID:     req.CreatorID,
		Score:         req.Score,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// GetTeam retrieves a team by id
// @Summary Get a team
// @Description Get a single team by its id
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]interface{}
// @Router /teams/{id} [get]
func GetTeam(c *gin.Context) {
	team, err := services.GetTeam(database.DB, c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// UpdateTeam applies a partial update to a team
// @Summary Update a team
// @Description Update the provided fields of a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body UpdateTeamRequest true "Fields to update"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /teams/{id} [put]
func UpdateTeam(c *gin.Context) {
	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	team, err := services.UpdateTeam(database.DB, c.Param("id"), services.UpdateTeamInput{
		Name:          req.Name,
		CompetitionID: req.CompetitionID,
		CreatorID:     req.CreatorID,
		Score:         req.Score,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam removes a team
// @Summary Delete a team
// @Description Delete a team together with its memberships and enrollments
// @Tags Teams
// @Param id path string true "Team ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /teams/{id} [delete]
func DeleteTeam(c *gin.Context) {
	if err := services.DeleteTeam(database.DB, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
