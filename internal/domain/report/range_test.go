package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/report"
)

// Miércoles 2026-08-26 15:30 UTC como "ahora" fijo para los tests.
var testNow = time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)

func TestResolveRange_Daily(t *testing.T) {
	rng, err := report.ResolveRange(report.RangeDaily, time.Time{}, time.Time{}, testNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), rng.Start,
		"daily debe comenzar a medianoche del día actual")
	assert.Equal(t, testNow, rng.End)
}

func TestResolveRange_Weekly_ComienzaDomingo(t *testing.T) {
	rng, err := report.ResolveRange(report.RangeWeekly, time.Time{}, time.Time{}, testNow)
	require.NoError(t, err)

	// 2026-08-26 es miércoles; el domingo de esa semana es el 23.
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, time.Weekday(0), rng.Start.Weekday(), "la semana comienza en domingo")
	assert.Equal(t, testNow, rng.End)
}

func TestResolveRange_Weekly_EnDomingoEsHoy(t *testing.T) {
	sunday := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	rng, err := report.ResolveRange(report.RangeWeekly, time.Time{}, time.Time{}, sunday)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), rng.Start,
		"en domingo la semana comienza ese mismo día")
}

func TestResolveRange_Monthly(t *testing.T) {
	rng, err := report.ResolveRange(report.RangeMonthly, time.Time{}, time.Time{}, testNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), rng.Start)
	assert.Equal(t, testNow, rng.End)
}

func TestResolveRange_Custom(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)

	rng, err := report.ResolveRange(report.RangeCustom, start, end, testNow)
	require.NoError(t, err)
	assert.Equal(t, start, rng.Start)
	assert.Equal(t, end, rng.End)
}

func TestResolveRange_CustomIncompleto(t *testing.T) {
	_, err := report.ResolveRange(report.RangeCustom, time.Time{}, testNow, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidRange, "custom sin start debe fallar")

	_, err = report.ResolveRange(report.RangeCustom, testNow, time.Time{}, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidRange, "custom sin end debe fallar")
}

func TestResolveRange_TipoDesconocido(t *testing.T) {
	_, err := report.ResolveRange("quarterly", time.Time{}, time.Time{}, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestResolvePeriod(t *testing.T) {
	start, err := report.ResolvePeriod(report.PeriodWeekly, testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.AddDate(0, 0, -7), start, "weekly son los últimos 7 días")

	start, err = report.ResolvePeriod(report.PeriodMonthly, testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), start)

	start, err = report.ResolvePeriod(report.PeriodYearly, testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), start)

	_, err = report.ResolvePeriod("daily", testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestTrendWindow_TerminaHoyInclusive(t *testing.T) {
	start, keys := report.TrendWindow(7, testNow)

	assert.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), start)
	require.Len(t, keys, 7, "exactamente N claves")
	assert.Equal(t, "2026-08-20", keys[0], "orden cronológico: la más vieja primero")
	assert.Equal(t, "2026-08-26", keys[6], "la ventana incluye hoy")
}

func TestTrendWindow_UnDia(t *testing.T) {
	start, keys := report.TrendWindow(1, testNow)

	assert.Equal(t, time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), start)
	require.Len(t, keys, 1)
	assert.Equal(t, "2026-08-26", keys[0])
}

func TestTrendWindow_CruzaMes(t *testing.T) {
	now := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)
	_, keys := report.TrendWindow(5, now)

	require.Len(t, keys, 5)
	assert.Equal(t, []string{
		"2026-08-29", "2026-08-30", "2026-08-31", "2026-09-01", "2026-09-02",
	}, keys)
}
