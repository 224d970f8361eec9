package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deuda is a recorded sale. The name reflects its dual use: every sale starts
// as a pending debt and flips to Pagada when the client settles it (credit
// sales on trust are the kiosk's bread and butter).
//
// ClienteID is nullable — walk-in sales are recorded without a client; the
// reporting layer falls back to the operator (Usuario) and then to a
// sentinel bucket.
type Deuda struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID *uuid.UUID `gorm:"type:uuid;index"`
	// Fecha is a calendar date (no time of day) — the grouping key of the
	// cash-flow timeline.
	Fecha     time.Time `gorm:"type:date;index;not null"`
	Pagada    bool      `gorm:"not null;default:false"`
	Usuario   string    `gorm:"not null"` // operator email who recorded the sale
	CreatedAt time.Time
	UpdatedAt time.Time

	Cliente *Cliente    `gorm:"foreignKey:ClienteID"`
	Items   []DeudaItem `gorm:"foreignKey:DeudaID;constraint:OnDelete:CASCADE"`
}

// DeudaItem is one line of a sale. Precio is the product price snapshotted at
// sale time; the live Producto price may diverge later.
type DeudaItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DeudaID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductoID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Cantidad   int             `gorm:"not null"`
	Precio     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
