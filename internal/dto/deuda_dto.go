package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemDeudaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

type RegistrarDeudaRequest struct {
	ClienteID *string            `json:"cliente_id" validate:"omitempty,uuid"`
	Items     []ItemDeudaRequest `json:"items"      validate:"required,min=1,dive"`
	// Fecha defaults to today when omitted (YYYY-MM-DD).
	Fecha  string `json:"fecha"  validate:"omitempty,datetime=2006-01-02"`
	Pagada bool   `json:"pagada"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemDeudaResponse struct {
	ProductoID string          `json:"producto_id"`
	Producto   string          `json:"producto"`
	Cantidad   int             `json:"cantidad"`
	Precio     decimal.Decimal `json:"precio"` // snapshot at sale time
}

type DeudaResponse struct {
	ID        string              `json:"id"`
	ClienteID *string             `json:"cliente_id"`
	Cliente   string              `json:"cliente"`
	Fecha     string              `json:"fecha"` // YYYY-MM-DD
	Pagada    bool                `json:"pagada"`
	Usuario   string              `json:"usuario"`
	Items     []ItemDeudaResponse `json:"items"`
	// Total is derived from live product prices, matching the debts list.
	Total decimal.Decimal `json:"total"`
}
