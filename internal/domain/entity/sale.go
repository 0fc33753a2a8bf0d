package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem representa una línea de una venta. PriceAtSale es el precio del
// producto en el momento de la venta; cambios posteriores de precio no lo afectan.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	Quantity    int64 // >= 1
	PriceAtSale decimal.Decimal
}

// Sale representa una venta cerrada. TotalAmount se calcula y persiste en la
// creación (suma de PriceAtSale × Quantity por línea) y no se recalcula.
// Una venta nunca se modifica ni se elimina después de creada.
type Sale struct {
	ID          string
	Items       []SaleItem
	TotalAmount decimal.Decimal
	SoldBy      string // usuario que registró la venta
	CreatedAt   time.Time
}

// ComputeTotal suma PriceAtSale × Quantity sobre las líneas.
func (s *Sale) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.PriceAtSale.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}
