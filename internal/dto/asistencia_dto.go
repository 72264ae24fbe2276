package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarIngresoRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=1,max=100"`
	Apellido string `json:"apellido" validate:"required,min=1,max=100"`
}

type RegistrarSalidaRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=1,max=100"`
	Apellido string `json:"apellido" validate:"required,min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AsistenciaResponse struct {
	ID          string     `json:"id"`
	Nombre      string     `json:"nombre"`
	Apellido    string     `json:"apellido"`
	Fecha       string     `json:"fecha"`
	HoraIngreso time.Time  `json:"hora_ingreso"`
	HoraSalida  *time.Time `json:"hora_salida,omitempty"`
}
