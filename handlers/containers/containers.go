package containers

import (
	"net/http"

	"lycosidae/database"
	"lycosidae/services"
	"lycosidae/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateContainer creates a new container
// @Summary Create a container
// @Description Create a container with a future expiry deadline
// @Tags Containers
// @Accept json
// @Produce json
// @Param request body ContainerRequest true "Container data"
// @Success 201 {object} models.Container
// @Failure 400 {object} map[string]interface{}
// @Router /containers [post]
func CreateContainer(c *gin.Context) {
	var req ContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	container, err := services.CreateContainer(database.DB, req.Deadline)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, container)
}

// GetContainer retrieves a container by id
// @Summary Get a container
// @Description Get a single container by its id
// @Tags Containers
// @Produce json
// @Param id path string true "Container ID"
// @Success 200 {object} models.Container
// @Failure 404 {object} map[string]interface{}
// @Router /containers/{id} [get]
func GetContainer(c *gin.Context) {
	container, err := services.GetContainer(database.DB, c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, container)
}

// UpdateContainer replaces a container's deadline
// @Summary Update a container
// @Description Replace the expiry deadline of a container
// @Tags Containers
// @Accept json
// @Produce json
// @Param id path string true "Container ID"
// @Param request body ContainerRequest true "Container data"
// @Success 200 {object} models.Container
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /containers/{id} [put]
func UpdateContainer(c *gin.Context) {
	var req ContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	container, err := services.UpdateContainer(database.DB, c.Param("id"), req.Deadline)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, container)
}

// DeleteContainer removes a container
// @Summary Delete a container
// @Description Delete a container together with its competition links
// @Tags Containers
// @Param id path string true "Container ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /containers/{id} [delete]
func DeleteContainer(c *gin.Context) {
	if err := services.DeleteContainer(database.DB, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
