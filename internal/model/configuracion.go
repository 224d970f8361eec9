package model

import "github.com/shopspring/decimal"

// ClaveInversionInicial is the well-known key under which the one-time
// capital figure is stored.
const ClaveInversionInicial = "inversionInicial"

// Configuracion is a single-value configuration document.
type Configuracion struct {
	Clave string          `gorm:"primaryKey"`
	Valor decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}
