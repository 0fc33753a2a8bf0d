package sales

import (
	"context"
	"time"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain/report"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

// Topes de los rankings.
const (
	topStaffLimit    = 3
	topProductsLimit = 4
)

// LeaderboardUseCase rankings top-N: vendedores por ingreso y productos por
// unidades vendidas. Los empates quedan en el orden que entregue la consulta
// (no determinista).
type LeaderboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewLeaderboardUseCase construye el caso de uso.
func NewLeaderboardUseCase(reportRepo repository.ReportRepository) *LeaderboardUseCase {
	return &LeaderboardUseCase{reportRepo: reportRepo}
}

// TopStaff top 3 vendedores por ingreso en el período (weekly/monthly/yearly).
func (uc *LeaderboardUseCase) TopStaff(ctx context.Context, period string) (*dto.TopStaffResponse, error) {
	if period == "" {
		period = report.PeriodWeekly
	}
	start, err := report.ResolvePeriod(period, time.Now())
	if err != nil {
		return nil, err
	}
	results, err := uc.reportRepo.TopStaff(ctx, start, topStaffLimit)
	if err != nil {
		return nil, err
	}
	out := &dto.TopStaffResponse{
		Period:   period,
		TopStaff: make([]dto.TopStaffDTO, 0, len(results)),
	}
	for _, r := range results {
		out.TopStaff = append(out.TopStaff, dto.TopStaffDTO{
			Name:       r.Name,
			Email:      r.Email,
			TotalSales: r.TotalSales,
			Count:      r.Count,
		})
	}
	return out, nil
}

// TopProducts top 4 productos por unidades vendidas en todo el histórico.
// staffID vacío = global; con valor, restringido a ese vendedor. Productos con
// referencia rota se omiten en silencio.
func (uc *LeaderboardUseCase) TopProducts(ctx context.Context, staffID string) ([]dto.TopProductDTO, error) {
	results, err := uc.reportRepo.TopProducts(ctx, staffID, topProductsLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductDTO, 0, len(results))
	for _, r := range results {
		out = append(out, dto.TopProductDTO{
			ProductID: r.ProductID,
			Name:      r.Name,
			SKU:       r.SKU,
			TotalSold: r.TotalSold,
		})
	}
	return out, nil
}
