package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de comanda, in lifecycle order.
const (
	ComandaPendiente   = "Pendiente"
	ComandaPreparacion = "En Preparación"
	ComandaListo       = "Listo"
	ComandaEntregado   = "Entregado"
)

// EstadosComanda lists the valid status labels for validation.
var EstadosComanda = []string{ComandaPendiente, ComandaPreparacion, ComandaListo, ComandaEntregado}

// Comanda is the kitchen-facing work item, created automatically with its
// Venta (one-to-one). FechaEntrega is stamped when the ticket reaches
// "Listo" or "Entregado".
type Comanda struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Estado       string    `gorm:"type:varchar(20);not null;default:'Pendiente'"`
	FechaEnvio   time.Time `gorm:"not null;index"`
	FechaEntrega *time.Time

	Venta *Venta `gorm:"foreignKey:VentaID"`
}
