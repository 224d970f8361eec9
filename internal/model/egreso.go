package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Egreso is an outgoing cash record, unrelated to sales.
type Egreso struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Monto       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Descripcion string          `gorm:"not null"`
	Fecha       time.Time       `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
