package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system users. Role is a single admin flag resolved by email
// lookup at login, not stored on the token issuer's side.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
