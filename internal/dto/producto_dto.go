package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre    string          `json:"nombre"    validate:"required,min=1,max=120"`
	Precio    decimal.Decimal `json:"precio"    validate:"min=0"`
	Categoria string          `json:"categoria" validate:"omitempty,oneof=bebidas snacks aseo papeleria otros"`
}

type ActualizarProductoRequest struct {
	Nombre    string          `json:"nombre"    validate:"required,min=1,max=120"`
	Precio    decimal.Decimal `json:"precio"    validate:"min=0"`
	Categoria string          `json:"categoria" validate:"omitempty,oneof=bebidas snacks aseo papeleria otros"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	Categoria string          `json:"categoria"`
}
