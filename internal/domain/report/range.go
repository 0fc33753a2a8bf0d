// Package report contiene la lógica pura de resolución de rangos y períodos
// para los reportes de ventas. No depende de la DB ni de HTTP.
package report

import (
	"time"

	"github.com/jhoicas/puntoventa-api/internal/domain"
)

// Tipos de rango aceptados por el reporte de ventas.
const (
	RangeDaily   = "daily"
	RangeWeekly  = "weekly"
	RangeMonthly = "monthly"
	RangeCustom  = "custom"
)

// Períodos aceptados por el ranking de vendedores.
const (
	PeriodWeekly  = "weekly"  // últimos 7 días
	PeriodMonthly = "monthly" // desde el día 1 del mes en curso
	PeriodYearly  = "yearly"  // desde el 1 de enero del año en curso
)

// Range es un intervalo cerrado [Start, End] ya resuelto.
type Range struct {
	Start time.Time
	End   time.Time
}

// ResolveRange convierte un tipo de rango en un intervalo concreto respecto a now.
//   - daily:   inicio del día actual → now
//   - weekly:  inicio de la semana actual (domingo como día 0) → now
//   - monthly: día 1 del mes actual → now
//   - custom:  start/end literales; ambos obligatorios
//
// Retorna domain.ErrInvalidRange si el tipo no se reconoce o si custom viene incompleto.
func ResolveRange(typ string, start, end, now time.Time) (Range, error) {
	switch typ {
	case RangeDaily:
		return Range{Start: startOfDay(now), End: now}, nil
	case RangeWeekly:
		firstDay := now.AddDate(0, 0, -int(now.Weekday()))
		return Range{Start: startOfDay(firstDay), End: now}, nil
	case RangeMonthly:
		return Range{
			Start: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
			End:   now,
		}, nil
	case RangeCustom:
		if start.IsZero() || end.IsZero() {
			return Range{}, domain.ErrInvalidRange
		}
		return Range{Start: start, End: end}, nil
	default:
		return Range{}, domain.ErrInvalidRange
	}
}

// ResolvePeriod convierte el período del ranking en su instante de inicio.
// Retorna domain.ErrInvalidPeriod si el período no se reconoce.
func ResolvePeriod(period string, now time.Time) (time.Time, error) {
	switch period {
	case PeriodWeekly:
		return now.AddDate(0, 0, -7), nil
	case PeriodMonthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	case PeriodYearly:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), nil
	default:
		return time.Time{}, domain.ErrInvalidPeriod
	}
}

// DayKey formatea un instante como clave de día calendario (YYYY-MM-DD).
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// TrendWindow devuelve el inicio de la ventana y las claves de los `days`
// días calendario que terminan HOY inclusive, en orden cronológico.
func TrendWindow(days int, now time.Time) (time.Time, []string) {
	start := startOfDay(now.AddDate(0, 0, -(days - 1)))
	keys := make([]string, 0, days)
	for i := 0; i < days; i++ {
		keys = append(keys, DayKey(start.AddDate(0, 0, i)))
	}
	return start, keys
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
