package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre    string          `json:"nombre"    validate:"required,min=1,max=150"`
	Precio    decimal.Decimal `json:"precio"    validate:"required"`
	Categoria string          `json:"categoria" validate:"omitempty,max=100"`
}

type ActualizarProductoRequest struct {
	Nombre    string          `json:"nombre"    validate:"required,min=1,max=150"`
	Precio    decimal.Decimal `json:"precio"    validate:"required"`
	Categoria string          `json:"categoria" validate:"omitempty,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	Categoria string          `json:"categoria"`
}
