package models

// Tag labels exercises by category (web, pwn, crypto, ...).
type Tag struct {
	ID   string `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Type string `gorm:"type:varchar(60);not null" json:"type"`
}
