package exercises

// Error messages returned by the exercise endpoints.
const (
	ErrInvalidRequest = "Invalid request data"
)

// CreateExerciseRequest is the payload for creating an exercise.
type CreateExerciseRequest struct {
	Link       string `json:"link" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Score      int    `json:"score"`
	Difficulty string `json:"difficulty" binding:"required"`
}

// UpdateExerciseRequest is a partial update; omitted fields keep their
// value.
type UpdateExerciseRequest struct {
	Link       *string `json:"link"`
	Name       *string `json:"name"`
	Score      *int    `json:"score"`
	Difficulty *string `json:"difficulty"`
}
