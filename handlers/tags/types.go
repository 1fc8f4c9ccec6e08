package tags

// Error messages returned by the tag endpoints.
const (
	ErrInvalidRequest = "Invalid request data"
)

// TagRequest is the payload for creating or updating a tag.
type TagRequest struct {
	Type string `json:"type" binding:"required"`
}
