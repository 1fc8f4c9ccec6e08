package models

import "time"

// Competition represents a CTF event. The invite code is a unique
// secondary identifier used for lookup by participants.
type Competition struct {
	ID         string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Organizer  string    `gorm:"type:varchar(100);not null" json:"organizer"`
	InviteCode string    `gorm:"type:varchar(30);uniqueIndex;not null;column:invite_code" json:"invite_code"`
	StartDate  time.Time `gorm:"not null;column:start_date" json:"start_date"`
	EndDate    time.Time `gorm:"not null;column:end_date" json:"end_date"`
}
