package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Quantity nunca baja de cero: la única escritura que la descuenta es la venta,
// y esa resta se hace bajo bloqueo de fila dentro de la transacción de venta.
type Product struct {
	ID        string
	Name      string
	SKU       string // código único
	Quantity  int64
	Price     decimal.Decimal // precio de venta vigente
	CreatedAt time.Time
	UpdatedAt time.Time
}
