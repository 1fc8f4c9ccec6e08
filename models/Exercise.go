package models

// Exercise difficulty levels accepted by the validation layer.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Exercise represents a challenge that can be attached to competitions
// and labeled with tags.
type Exercise struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Link       string `gorm:"type:varchar(255);not null" json:"link"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	Score      int    `gorm:"not null" json:"score"`
	Difficulty string `gorm:"type:varchar(20);not null" json:"difficulty"`
}
