package schema

import (
	"time"
)

type User struct {
	ID           int64     `json:"id" gorm:"primary_key"`
	PhoneNumber  string    `json:"phone_number"`
	Username     string    `json:"username" gorm:"unique_index;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated user a survey session runs for. A zero
// UserID means nobody is logged in.
type Identity struct {
	UserID   int64
	Username string
}

func (i Identity) Present() bool {
	return i.UserID != 0
}
