package model

import (
	"time"

	"github.com/google/uuid"
)

// Asistencia is a clock-in/out record. Stored in UTC; HoraSalida stays nil
// until the employee clocks out. Multiple open records per person and day are
// allowed — clock-out resolves the most recent one.
type Asistencia struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"not null"`
	Apellido    string    `gorm:"not null"`
	Fecha       time.Time `gorm:"type:date;not null;index"`
	HoraIngreso time.Time `gorm:"not null"`
	HoraSalida  *time.Time
}
