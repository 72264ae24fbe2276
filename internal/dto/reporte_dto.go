package dto

import "github.com/shopspring/decimal"

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ReporteFilaResponse struct {
	// Etiqueta identifies the bucket: a date for daily rows, "Semana 34 - 2026"
	// for weekly, "8/2026" for monthly and "2026" for yearly.
	Etiqueta    string          `json:"etiqueta"`
	TotalVentas decimal.Decimal `json:"total_ventas"`
}

type ReporteResponse struct {
	Periodo string                `json:"periodo"`
	Filas   []ReporteFilaResponse `json:"filas"`
}

type ResumenDiarioResponse struct {
	Fecha          string          `json:"fecha"`
	TotalVentas    decimal.Decimal `json:"total_ventas"`
	CantidadVentas int64           `json:"cantidad_ventas"`
	TicketPromedio decimal.Decimal `json:"ticket_promedio"`
	MetodoPagoTop  string          `json:"metodo_pago_top"`
}

type DashboardResumenResponse struct {
	VentasHoy      decimal.Decimal `json:"ventas_hoy"`
	CantidadVentas int             `json:"cantidad_ventas"`
	TotalLocal     decimal.Decimal `json:"total_local"`
	TotalLlevar    decimal.Decimal `json:"total_llevar"`
	CajaAbierta    bool            `json:"caja_abierta"`
}
