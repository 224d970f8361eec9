package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Nombre   string  `json:"nombre"   validate:"required,min=1,max=120"`
	Telefono *string `json:"telefono" validate:"omitempty,max=30"`
}

type ActualizarClienteRequest struct {
	Nombre   string  `json:"nombre"   validate:"required,min=1,max=120"`
	Telefono *string `json:"telefono" validate:"omitempty,max=30"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ClienteResponse enriches the raw record with its pending-debt position, the
// way the clients list renders it.
type ClienteResponse struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	Telefono         *string         `json:"telefono"`
	DeudasPendientes int             `json:"deudas_pendientes"`
	SaldoPendiente   decimal.Decimal `json:"saldo_pendiente"`
}
