package models

// User represents a platform account. The password column stores a bcrypt
// hash and is never serialized.
type User struct {
	ID          string `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Username    string `gorm:"type:varchar(60);uniqueIndex;not null" json:"username"`
	Email       string `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Password    string `gorm:"type:varchar(255);not null" json:"-"`
	PhoneNumber string `gorm:"type:varchar(30);column:phone_number" json:"phone_number,omitempty"`
}
