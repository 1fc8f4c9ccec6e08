package tags

import (
	"net/http"

	"lycosidae/database"
	"lycosidae/services"
	"lycosidae/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateTag creates a new tag
// @Summary Create a tag
// @Description Create a tag with a category type
// @Tags Tags
// @Accept json
// @Produce json
// @Param request body TagRequest true "Tag data"
// @Success 201 {object} models.Tag
// @Failure 400 {object} map[string]interface{}
// @Router /tags [post]
func CreateTag(c *gin.Context) {
	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	tag, err := services.CreateTag(database.DB, req.Type)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// GetTag retrieves a tag by id
// @Summary Get a tag
// @Description Get a single tag by its id
// @Tags Tags
// @Produce json
// @Param id path string true "Tag ID"
// @Success 200 {object} models.Tag
// @Failure 404 {object} map[string]interface{}
// @Router /tags/{id} [get]
func GetTag(c *gin.Context) {
	tag, err := services.GetTag(database.DB, c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// GetTagByType retrieves a tag by its type
// @Summary Get a tag by type
// @Description Get the first tag with the given category type
// @Tags Tags
// @Produce json
// @Param tag_type path string true "Tag type"
// @Success 200 {object} models.Tag
// @Failure 404 {object} map[string]interface{}
// @Router /tags/type/{tag_type} [get]
func GetTagByType(c *gin.Context) {
	tag, err := services.GetTagByType(database.DB, c.Param("tag_type"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// UpdateTag replaces a tag's type
// @Summary Update a tag
// @Description Replace the category type of a tag
// @Tags Tags
// @Accept json
// @Produce json
// @Param id path string true "Tag ID"
// @Param request body TagRequest true "Tag data"
// @Success 200 {object} models.Tag
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /tags/{id} [put]
func UpdateTag(c *gin.Context) {
	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	tag, err := services.UpdateTag(database.DB, c.Param("id"), req.Type)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// DeleteTag removes a tag
// @Summary Delete a tag
// @Description Delete a tag together with its exercise labels
// @Tags Tags
// @Param id path string true "Tag ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /tags/{id} [delete]
func DeleteTag(c *gin.Context) {
	if err := services.DeleteTag(database.DB, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
