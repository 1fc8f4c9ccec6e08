package exercises

import (
	"net/http"

	"lycosidae/database"
	"lycosidae/services"
	"lycosidae/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateExercise creates a new exercise
// @Summary Create an exercise
// @Description Create an exercise with a score and a difficulty level
// @Tags Exercises
// @Accept json
// @Produce json
// @Param request body CreateExerciseRequest true "Exercise data"
// @Success 201 {object} models.Exercise
// @Failure 400 {object} map[string]interface{}
// @Router /exercises [post]
func CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	exercise, err := services.CreateExercise(database.DB, services.CreateExerciseInput{
		Link:       req.Link,
		Name:       req.Name,
		Score:      req.Score,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// GetExercise retrieves an exercise by id
// @Summary Get an exercise
// @Description Get a single exercise by its id
// @Tags Exercises
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {object} models.Exercise
// @Failure 404 {object} map[string]interface{}
// @Router /exercises/{id} [get]
func GetExercise(c *gin.Context) {
	exercise, err := services.GetExercise(database.DB, c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// UpdateExercise applies a partial update to an exercise
// @Summary Update an exercise
// @Description Update the provided fields of an exercise
// @Tags Exercises
// @Accept json
// @Produce json
// @Param id path string true "Exercise ID"
// @Param request body UpdateExerciseRequest true "Fields to update"
// @Success 200 {object} models.Exercise
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /exercises/{id} [put]
func UpdateExercise(c *gin.Context) {
	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	exercise, err := services.UpdateExercise(database.DB, c.Param("id"), services.UpdateExerciseInput{
		Link:       req.Link,
		Name:       req.Name,
		Score:      req.Score,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// DeleteExercise removes an exercise
// @Summary Delete an exercise
// @Description Delete an exercise together with its tag and competition links
// @Tags Exercises
// @Param id path string true "Exercise ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /exercises/{id} [delete]
func DeleteExercise(c *gin.Context) {
	if err := services.DeleteExercise(database.DB, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
