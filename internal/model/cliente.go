package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a customer of the kiosk. Telefono is optional — many regulars
// are registered by name only.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"index;not null"`
	Telefono  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
