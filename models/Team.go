package models

// Team represents a group of players inside a competition. Both references
// must point at existing rows; the services layer checks them before insert.
type Team struct {
	ID            string `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Name          string `gorm:"type:varchar(100);not null" json:"name"`
	CompetitionID string `gorm:"type:uuid;not null;column:competition_id" json:"competition"`
	CreatorID     string `gorm:"type:uuid;not null;column:creator_id" json:"creator"`
	Score         int    `gorm:"not null;default:0" json:"score"`
}
