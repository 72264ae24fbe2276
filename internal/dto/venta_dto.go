package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVentaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

type RegistrarVentaRequest struct {
	// Cajero is the login name of the user recording the sale.
	Cajero        string             `json:"cajero"         validate:"required"`
	MetodoPago    string             `json:"metodo_pago"    validate:"required"`
	TipoPedido    string             `json:"tipo_pedido"    validate:"required"`
	NombreCliente string             `json:"nombre_cliente"`
	Items         []ItemVentaRequest `json:"items"          validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleVentaResponse struct {
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type RegistrarVentaResponse struct {
	ID            string          `json:"id"`
	NumeroTicket  string          `json:"numero_ticket"`
	TipoPedido    string          `json:"tipo_pedido"`
	Total         decimal.Decimal `json:"total"`
	EstadoComanda string          `json:"estado_comanda"`
}

type VentaResponse struct {
	ID           string                 `json:"id"`
	NumeroTicket string                 `json:"numero_ticket"`
	TipoPedido   string                 `json:"tipo_pedido"`
	Cliente      string                 `json:"cliente"`
	Cajero       string                 `json:"cajero"`
	MetodoPago   string                 `json:"metodo_pago"`
	FechaVenta   string                 `json:"fecha_venta"`
	Total        decimal.Decimal        `json:"total"`
	Detalles     []DetalleVentaResponse `json:"detalles"`
}
