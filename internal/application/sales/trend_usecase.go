package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain/report"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

// Ventana por defecto y tope del trend de ingresos.
const (
	defaultTrendDays = 7
	maxTrendDays     = 365
)

// TrendUseCase serie diaria de ingresos sobre una ventana móvil de N días que
// termina hoy inclusive. Días sin ventas aparecen con total cero. Los días son
// calendario UTC, igual que la agregación en la DB.
type TrendUseCase struct {
	reportRepo repository.ReportRepository
}

// NewTrendUseCase construye el caso de uso.
func NewTrendUseCase(reportRepo repository.ReportRepository) *TrendUseCase {
	return &TrendUseCase{reportRepo: reportRepo}
}

// RevenueTrend devuelve exactamente `days` puntos en orden cronológico.
func (uc *TrendUseCase) RevenueTrend(ctx context.Context, days int) ([]dto.TrendPointDTO, error) {
	if days <= 0 {
		days = defaultTrendDays
	}
	if days > maxTrendDays {
		days = maxTrendDays
	}

	start, keys := report.TrendWindow(days, time.Now().UTC())
	results, err := uc.reportRepo.RevenueByDay(ctx, start)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]decimal.Decimal, len(results))
	for _, r := range results {
		byDay[report.DayKey(r.Day.UTC())] = r.Total
	}

	points := make([]dto.TrendPointDTO, 0, len(keys))
	for _, key := range keys {
		total, ok := byDay[key]
		if !ok {
			total = decimal.Zero
		}
		points = append(points, dto.TrendPointDTO{Date: key, Total: total})
	}
	return points, nil
}
