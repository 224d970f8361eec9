package dto

import "github.com/shopspring/decimal"

type GuardarInversionRequest struct {
	Valor decimal.Decimal `json:"valor" validate:"min=0"`
}

type InversionResponse struct {
	Valor decimal.Decimal `json:"valor"`
}
