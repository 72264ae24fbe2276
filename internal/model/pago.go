package model

import "github.com/google/uuid"

// Pago is a payment method lookup row. Seed data: Efectivo, Tarjeta, QR.
type Pago struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TipoPago string    `gorm:"uniqueIndex;not null"`
}
