package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipos de pedido.
const (
	PedidoLocal  = "Local"
	PedidoLlevar = "Llevar"
)

// ClientePorDefecto is used when the cashier does not type a customer name.
const ClientePorDefecto = "Cliente General"

// Venta is one checkout. Created atomically with its Detalles and its Comanda;
// immutable afterwards. NumeroTicket is "dd/mm/yy-NN" with NN counting the
// sales of that calendar day.
type Venta struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NumeroTicket  string    `gorm:"uniqueIndex;not null"`
	TipoPedido    string    `gorm:"type:varchar(10);not null"`
	NombreCliente string    `gorm:"not null;default:'Cliente General'"`
	UsuarioID     uuid.UUID `gorm:"type:uuid;not null"`
	PagoID        uuid.UUID `gorm:"type:uuid;not null"`
	CajaID        uuid.UUID `gorm:"type:uuid;not null;index"`
	FechaVenta    time.Time `gorm:"not null;index"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Usuario  *Usuario       `gorm:"foreignKey:UsuarioID"`
	Pago     *Pago          `gorm:"foreignKey:PagoID"`
	Detalles []DetalleVenta `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
	Comanda  *Comanda       `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
}

// DetalleVenta is one line of a Venta. PrecioUnitario is the product price at
// sale time, decoupled from the current catalog price. ProductoID is nullable:
// catalog deletes clear the reference and the captured price keeps the line
// meaningful.
type DetalleVenta struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductoID     *uuid.UUID      `gorm:"type:uuid"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:SET NULL"`
}
