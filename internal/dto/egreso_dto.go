package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearEgresoRequest struct {
	Monto       decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	Descripcion string          `json:"descripcion" validate:"required,min=1,max=240"`
}

type ActualizarEgresoRequest struct {
	Monto       decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	Descripcion string          `json:"descripcion" validate:"required,min=1,max=240"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EgresoResponse struct {
	ID          string          `json:"id"`
	Monto       decimal.Decimal `json:"monto"`
	Descripcion string          `json:"descripcion"`
	Fecha       string          `json:"fecha"` // RFC 3339
}
