package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ActualizarEstadoComandaRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemComandaResponse struct {
	Producto string `json:"producto"`
	Cantidad int    `json:"cantidad"`
}

type ComandaResponse struct {
	ID           string                `json:"id"`
	NumeroTicket string                `json:"numero_ticket"`
	TipoPedido   string                `json:"tipo_pedido"`
	Cliente      string                `json:"cliente"`
	Estado       string                `json:"estado"`
	FechaEnvio   time.Time             `json:"fecha_envio"`
	FechaEntrega *time.Time            `json:"fecha_entrega,omitempty"`
	Productos    []ItemComandaResponse `json:"productos"`
}
