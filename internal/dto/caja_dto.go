package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirCajaRequest struct {
	// Usuario is the login name of the cashier opening the shift.
	Usuario      string          `json:"usuario"       validate:"required"`
	MontoInicial decimal.Decimal `json:"monto_inicial" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EstadoCajaResponse struct {
	Abierta      bool             `json:"abierta"`
	IDCaja       string           `json:"id_caja,omitempty"`
	MontoInicial *decimal.Decimal `json:"monto_inicial,omitempty"`
	TotalVendido *decimal.Decimal `json:"total_vendido,omitempty"`
	TotalCaja    *decimal.Decimal `json:"total_caja,omitempty"`
	Cajero       string           `json:"cajero,omitempty"`
	Mensaje      string           `json:"mensaje,omitempty"`
}

type AbrirCajaResponse struct {
	IDCaja  string `json:"id_caja"`
	Mensaje string `json:"mensaje"`
}

type CerrarCajaResponse struct {
	Mensaje    string          `json:"mensaje"`
	MontoFinal decimal.Decimal `json:"monto_final"`
}
