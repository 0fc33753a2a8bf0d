package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopStaffResult agregado de ventas por vendedor en una ventana.
type TopStaffResult struct {
	UserID     string
	Name       string
	Email      string
	TotalSales decimal.Decimal
	Count      int64
}

// TopProductResult total de unidades vendidas por producto.
type TopProductResult struct {
	ProductID string
	Name      string
	SKU       string
	TotalSold int64
}

// DailyRevenueResult ingreso total de un día calendario con ventas.
type DailyRevenueResult struct {
	Day   time.Time
	Total decimal.Decimal
}

// StaffSummaryResult totales históricos de un vendedor.
type StaffSummaryResult struct {
	TotalAmount  decimal.Decimal
	TotalQty     int64
	Transactions int64
}

// ReportRepository consultas de solo lectura para reportes y rankings.
// Todas operan sobre ventas persistidas; no ofrecen consistencia fuerte frente
// a ventas en vuelo (el total puede excluir transacciones no confirmadas).
type ReportRepository interface {
	// ReportRows aplana las líneas de venta del intervalo [start, end],
	// opcionalmente restringido a un vendedor (staffID vacío = todos).
	ReportRows(ctx context.Context, start, end time.Time, staffID string) ([]SaleLineRecord, error)
	// ReportRowsByStaff aplana todas las líneas históricas de un vendedor.
	ReportRowsByStaff(ctx context.Context, staffID string) ([]SaleLineRecord, error)
	// TopStaff agrupa por vendedor desde `start`, ordena por ingreso descendente y corta en `limit`.
	TopStaff(ctx context.Context, start time.Time, limit int) ([]TopStaffResult, error)
	// TopProducts suma unidades por producto (histórico completo), descendente, corta en `limit`.
	// staffID vacío = todas las ventas. Productos sin referencia resoluble se omiten.
	TopProducts(ctx context.Context, staffID string, limit int) ([]TopProductResult, error)
	// RevenueByDay agrupa total_amount por día calendario desde `start`.
	// Solo devuelve días con ventas; el caller rellena los ceros.
	RevenueByDay(ctx context.Context, start time.Time) ([]DailyRevenueResult, error)
	// StaffSummary totales históricos del vendedor (ceros si no tiene ventas).
	StaffSummary(ctx context.Context, staffID string) (StaffSummaryResult, error)
	// RecentLines últimas `limit` líneas de venta del vendedor, más recientes primero.
	RecentLines(ctx context.Context, staffID string, limit int) ([]SaleLineRecord, error)
}
