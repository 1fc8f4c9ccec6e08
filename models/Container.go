package models

import "time"

// Container represents a provisioned challenge environment with an expiry
// deadline.
type Container struct {
	ID       string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Deadline time.Time `gorm:"not null" json:"deadline"`
}
