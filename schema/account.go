package schema

import (
	"time"

	"github.com/google/uuid"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Account is the identity record of a user. Accounts live in postgres;
// everything else about a user (profile document, scan history) lives in
// the document store keyed by the account ID.
type Account struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Email        string    `json:"email" gorm:"unique_index;not null"`
	PasswordHash []byte    `json:"-" gorm:"not null"`
	DisplayName  string    `json:"display_name"`
	Disabled     bool      `json:"-" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PasswordReset is a single-use token mailed to an account holder.
type PasswordReset struct {
	Token     string    `json:"token" gorm:"primary_key"`
	AccountID uuid.UUID `json:"-" gorm:"type:uuid;not null"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
