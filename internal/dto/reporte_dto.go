package dto

import "github.com/shopspring/decimal"

// ─── Filters ─────────────────────────────────────────────────────────────────

// RangoFilter selects the reporting window for the cash-flow and ranking
// endpoints. Desde/Hasta are only honored when Rango == "custom".
type RangoFilter struct {
	Rango string `form:"rango,default=all" validate:"omitempty,oneof=7d 30d 1y all custom"`
	Desde string `form:"desde" validate:"omitempty,datetime=2006-01-02"`
	Hasta string `form:"hasta" validate:"omitempty,datetime=2006-01-02"`
}

// VentasFilter matches the sales report view: exact-date and operator filters,
// both optional.
type VentasFilter struct {
	Fecha   string `form:"fecha"   validate:"omitempty,datetime=2006-01-02"`
	Usuario string `form:"usuario"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

// ResumenResponse is the dashboard card set.
type ResumenResponse struct {
	// Money
	DineroRecibido  decimal.Decimal `json:"dinero_recibido"` // realized revenue + initial investment
	DineroPendiente decimal.Decimal `json:"dinero_pendiente"`
	SaldoActual     decimal.Decimal `json:"saldo_actual"` // dinero_recibido - gastos_totales
	GastosTotales   decimal.Decimal `json:"gastos_totales"`
	// Counts
	VentasTotales int `json:"ventas_totales"`
	DeudasActivas int `json:"deudas_activas"`
	BaseClientes  int `json:"base_clientes"`
}

type FlujoCajaPunto struct {
	Fecha   string          `json:"fecha"` // YYYY-MM-DD
	Ventas  decimal.Decimal `json:"ventas"`
	Egresos decimal.Decimal `json:"egresos"`
}

type FlujoCajaResponse struct {
	Desde  string           `json:"desde"`
	Hasta  string           `json:"hasta"`
	Puntos []FlujoCajaPunto `json:"puntos"`
}

type RankingEntry struct {
	Nombre string          `json:"nombre"`
	Valor  decimal.Decimal `json:"valor"`
}

type RankingResponse struct {
	Entradas []RankingEntry `json:"entradas"`
}

// VentaReporteRow is one sale in the sales report, totalled from the
// snapshot prices stored on its items.
type VentaReporteRow struct {
	ID      string              `json:"id"`
	Fecha   string              `json:"fecha"`
	Usuario string              `json:"usuario"`
	Cliente string              `json:"cliente"`
	Total   decimal.Decimal     `json:"total"`
	Pagada  bool                `json:"pagada"`
	Items   []ItemDeudaResponse `json:"items"`
}

type ReporteVentasResponse struct {
	TotalPotencial   decimal.Decimal   `json:"total_potencial"`
	DineroRecibido   decimal.Decimal   `json:"dinero_recibido"`
	DineroPendiente  decimal.Decimal   `json:"dinero_pendiente"`
	VentasTotales    int               `json:"ventas_totales"`
	VentasPendientes int               `json:"ventas_pendientes"`
	VentasPagadas    int               `json:"ventas_pagadas"`
	Ventas           []VentaReporteRow `json:"ventas"`
}

type EnviarReporteRequest struct {
	Destinatario string `json:"destinatario" validate:"required,email"`
	Fecha        string `json:"fecha"        validate:"omitempty,datetime=2006-01-02"`
	Usuario      string `json:"usuario"`
}
