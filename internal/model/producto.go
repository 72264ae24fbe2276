package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoriaPorDefecto se asigna cuando el alta no especifica categoría.
const CategoriaPorDefecto = "General"

// Producto is a menu item. Precio is always > 0; the price charged on a sale
// is captured in DetalleVenta at sale time, so later edits never rewrite history.
type Producto struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string          `gorm:"index;not null"`
	Precio    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Categoria string          `gorm:"not null;default:'General'"`
	Activo    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
