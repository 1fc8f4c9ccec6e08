package competitions

import (
	"net/http"

	"lycosidae/database"
	"lycosidae/services"
	"lycosidae/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateCompetition creates a new competition
// @Summary Create a competition
// @Description Create a competition; the invite code is generated when omitted
// @Tags Competitions
// @Accept json
// @Produce json
// @Param request body CreateCompetitionRequest true "Competition data"
// @Success 201 {object} models.Competition
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /competitions [post]
func CreateCompetition(c *gin.Context) {
	var req CreateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	competition, err := services.CreateCompetition(database.DB, services.CreateCompetitionInput{
		Name:       req.Name,
		Organizer:  req.Organizer,
		InviteCode: req.InviteCode,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, competition)
}

// GetCompetition retrieves a competition by id
// @Summary Get a competition
// @Description Get a single competition by its id
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} models.Competition
// @Failure 404 {object} map[string]interface{}
// @Router /competitions/{id} [get]
func GetCompetition(c *gin.Context) {
	competition, err := services.GetCompetition(database.DB, c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, competition)
}

// GetCompetitionByInviteCode retrieves a competition by invite code
// @Summary Get a competition by invite code
// @Description Resolve an invite code to its competition
// @Tags Competitions
// @Produce json
// @Param invite_code path string true "Invite code"
// @Success 200 {object} models.Competition
// @Failure 404 {object} map[string]interface{}
// @Router /competitions/invite/{invite_code} [get]
func GetCompetitionByInviteCode(c *gin.Context) {
	competition, err := services.GetCompetitionByInviteCode(database.DB, c.Param("invite_code"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, competition)
}

// UpdateCompetition applies a partial update to a competition
// @Summary Update a competition
// @Description Update the provided fields of a competition
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Param request body UpdateCompetitionRequest true "Fields to update"
// @Success 200 {object} models.Competition
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /competitions/{id} [put]
func UpdateCompetition(c *gin.Context) {
	var req UpdateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	competition, err := services.UpdateCompetition(database.DB, c.Param("id"), services.UpdateCompetitionInput{
		Name:       req.Name,
		Organizer:  req.Organizer,
		InviteCode: req.InviteCode,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, competition)
}

// DeleteCompetition removes a competition
// @Summary Delete a competition
// @Description Delete a competition together with its enrollments and teams
// @Tags Competitions
// @Param id path string true "Competition ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /competitions/{id} [delete]
func DeleteCompetition(c *gin.Context) {
	if err := services.DeleteCompetition(database.DB, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
