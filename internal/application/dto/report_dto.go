package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRowDTO una línea de venta aplanada para el reporte.
type ReportRowDTO struct {
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    int64           `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
	Total       decimal.Decimal `json:"total"`
	SoldBy      string          `json:"sold_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RangeDTO rango resuelto del reporte.
type RangeDTO struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ReportResponse salida del reporte de ventas.
type ReportResponse struct {
	Filter string         `json:"filter"`
	Range  *RangeDTO      `json:"range"`
	Count  int            `json:"count"`
	Sales  []ReportRowDTO `json:"sales"`
}

// TopStaffDTO un vendedor del ranking por ingreso.
type TopStaffDTO struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	TotalSales decimal.Decimal `json:"total_sales"`
	Count      int64           `json:"count"`
}

// TopStaffResponse salida del ranking de vendedores.
type TopStaffResponse struct {
	Period   string        `json:"period"`
	TopStaff []TopStaffDTO `json:"top_staff"`
}

// TopProductDTO un producto del ranking por unidades vendidas.
type TopProductDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	TotalSold int64  `json:"total_sold"`
}

// TrendPointDTO ingreso total de un día calendario de la ventana.
type TrendPointDTO struct {
	Date  string          `json:"date"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}

// StaffSummaryDTO totales históricos del vendedor autenticado.
type StaffSummaryDTO struct {
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalQty     int64           `json:"total_qty"`
	Transactions int64           `json:"transactions"`
}

// RecentSaleRowDTO línea reciente de venta para el panel del vendedor.
type RecentSaleRowDTO struct {
	Name  string          `json:"name"`
	SKU   string          `json:"sku"`
	Qty   int64           `json:"qty"`
	Price decimal.Decimal `json:"price"`
	Total decimal.Decimal `json:"total"`
	Date  time.Time       `json:"date"`
}
