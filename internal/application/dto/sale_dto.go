package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea solicitada: producto y cantidad.
type SaleItemRequest struct {
	ProductID string `json:"product" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	Items []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse línea de venta con el producto resuelto a nombre y SKU.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    int64           `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
	Total       decimal.Decimal `json:"total"`
}

// SaleSellerResponse resumen del vendedor.
type SaleSellerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID          string             `json:"id"`
	Items       []SaleItemResponse `json:"items"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	SoldBy      SaleSellerResponse `json:"sold_by"`
	CreatedAt   time.Time          `json:"created_at"`
}
