package containers

import "time"

// Error messages returned by the container endpoints.
const (
	ErrInvalidRequest = "Invalid request data"
)

// ContainerRequest is the payload for creating or updating a container.
type ContainerRequest struct {
	Deadline time.Time `json:"deadline" binding:"required"`
}
