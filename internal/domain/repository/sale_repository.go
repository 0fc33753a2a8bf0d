package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// SaleLineRecord es una línea de venta resuelta para presentación: nombre y SKU
// del producto y nombre/email del vendedor ya poblados. Referencias rotas
// (producto o usuario borrado después de la venta) llegan como "Unknown"/"N/A".
type SaleLineRecord struct {
	SaleID      string
	ProductID   string
	ProductName string
	SKU         string
	Quantity    int64
	PriceAtSale decimal.Decimal
	SoldByName  string
	SoldByEmail string
	CreatedAt   time.Time
}

// SaleRecord es una venta con líneas resueltas para presentación.
type SaleRecord struct {
	ID          string
	TotalAmount decimal.Decimal
	SoldByID    string
	SoldByName  string
	SoldByEmail string
	CreatedAt   time.Time
	Items       []SaleLineRecord
}

// SaleRepository puerto de persistencia para ventas (usable con pool o tx).
// Las ventas son inmutables: solo Create y lecturas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*SaleRecord, error)
	List() ([]*SaleRecord, error)
}
