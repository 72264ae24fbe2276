package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de caja.
const (
	CajaAbierta = "Abierta"
	CajaCerrada = "Cerrada"
)

// Caja represents one cash-drawer shift. At most one row may be "Abierta" at a
// time, system-wide; besides the service-level check, a partial unique index
// (see infra.applySchemaPatches) enforces the invariant under concurrent opens.
type Caja struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID     uuid.UUID       `gorm:"type:uuid;not null"`
	FechaApertura time.Time       `gorm:"not null;index"`
	MontoInicial  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaCierre   *time.Time
	MontoFinal    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Estado        string           `gorm:"type:varchar(20);not null;default:'Abierta'"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}
