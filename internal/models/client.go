package models

import "time"

// Client is shared across masters; phone is the stable matching key.
// No login, created implicitly on first booking.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:150;not null" json:"full_name"`
	Phone    string `gorm:"size:32;uniqueIndex;not null" json:"phone"`
	Email    string `gorm:"size:100" json:"email"`
	Notes    string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
