package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Categorias is the tag set offered by the product form. Categoria may also
// be empty for uncategorized products.
var Categorias = []string{"bebidas", "snacks", "aseo", "papeleria", "otros"}

// Producto is a catalog item. Precio is the live price; sales keep their own
// per-item snapshot at sale time.
type Producto struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string          `gorm:"index;not null"`
	Precio    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Categoria string
	CreatedAt time.Time
	UpdatedAt time.Time
}
