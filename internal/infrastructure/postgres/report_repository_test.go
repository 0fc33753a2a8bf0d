package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureQuerier registra el SQL y los argumentos de la última consulta y
// responde con filas fijas, sin tocar PostgreSQL.
type captureQuerier struct {
	sql  string
	args []any
	row  stubRow
}

func (q *captureQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql, q.args = sql, args
	return pgconn.CommandTag{}, nil
}

func (q *captureQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql, q.args = sql, args
	return emptyRows{}, nil
}

func (q *captureQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql, q.args = sql, args
	return q.row
}

// stubRow responde Scan con valores fijos en orden.
type stubRow struct {
	vals []any
}

func (r stubRow) Scan(dest ...any) error {
	for i := range dest {
		if i >= len(r.vals) {
			break
		}
		switch d := dest[i].(type) {
		case *decimal.Decimal:
			*d = r.vals[i].(decimal.Decimal)
		case *int64:
			*d = r.vals[i].(int64)
		}
	}
	return nil
}

// emptyRows es un pgx.Rows sin filas.
type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

// El ingreso del resumen se agrega por línea (precio × cantidad). Sumar
// s.total_amount sobre el join con sale_items contaría el total de la venta
// una vez por cada línea: una venta de dos líneas de 10 y 20 reportaría 60
// en lugar de 30.
func TestStaffSummary_AgregaPorLineaNoPorVenta(t *testing.T) {
	q := &captureQuerier{row: stubRow{vals: []any{
		decimal.RequireFromString("30.00"), int64(2), int64(1),
	}}}
	repo := NewReportRepository(q)

	res, err := repo.StaffSummary(context.Background(), "u1")
	require.NoError(t, err)

	assert.Contains(t, q.sql, "SUM(si.price_at_sale * si.quantity)")
	assert.NotContains(t, q.sql, "SUM(s.total_amount)")
	assert.Contains(t, q.sql, "COUNT(DISTINCT s.id)",
		"las transacciones se cuentan por venta, no por línea")
	assert.Equal(t, []any{"u1"}, q.args)

	assert.True(t, res.TotalAmount.Equal(decimal.RequireFromString("30.00")))
	assert.Equal(t, int64(2), res.TotalQty)
	assert.Equal(t, int64(1), res.Transactions)
}

// Los buckets del trend se arman en días calendario UTC; una sesión en otra
// zona horaria no debe mover ventas de borde a un día distinto del que
// rellena el caso de uso.
func TestRevenueByDay_AgrupaEnDiasUTC(t *testing.T) {
	q := &captureQuerier{}
	repo := NewReportRepository(q)

	start := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	_, err := repo.RevenueByDay(context.Background(), start)
	require.NoError(t, err)

	assert.Contains(t, q.sql, "AT TIME ZONE 'UTC'")
	assert.Equal(t, []any{start}, q.args)
}
