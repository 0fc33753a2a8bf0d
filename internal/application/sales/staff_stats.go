package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

const recentSalesLimit = 5

// StaffStatsUseCase panel del vendedor autenticado: totales históricos y
// últimas líneas vendidas.
type StaffStatsUseCase struct {
	reportRepo repository.ReportRepository
}

// NewStaffStatsUseCase construye el caso de uso.
func NewStaffStatsUseCase(reportRepo repository.ReportRepository) *StaffStatsUseCase {
	return &StaffStatsUseCase{reportRepo: reportRepo}
}

// Summary totales históricos del vendedor; ceros si no tiene ventas.
func (uc *StaffStatsUseCase) Summary(ctx context.Context, staffID string) (*dto.StaffSummaryDTO, error) {
	s, err := uc.reportRepo.StaffSummary(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return &dto.StaffSummaryDTO{
		TotalAmount:  s.TotalAmount,
		TotalQty:     s.TotalQty,
		Transactions: s.Transactions,
	}, nil
}

// RecentSales últimas 5 líneas de venta del vendedor, más recientes primero.
func (uc *StaffStatsUseCase) RecentSales(ctx context.Context, staffID string) ([]dto.RecentSaleRowDTO, error) {
	lines, err := uc.reportRepo.RecentLines(ctx, staffID, recentSalesLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecentSaleRowDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.RecentSaleRowDTO{
			Name:  l.ProductName,
			SKU:   l.SKU,
			Qty:   l.Quantity,
			Price: l.PriceAtSale,
			Total: l.PriceAtSale.Mul(decimal.NewFromInt(l.Quantity)),
			Date:  l.CreatedAt,
		})
	}
	return out, nil
}
