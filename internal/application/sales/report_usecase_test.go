package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa-api/internal/application/sales"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

func reportLine(soldBy string, qty int64, price string, at time.Time) repository.SaleLineRecord {
	return repository.SaleLineRecord{
		SaleID:      "s1",
		ProductID:   "p1",
		ProductName: "Teclado",
		SKU:         "SKU-p1",
		Quantity:    qty,
		PriceAtSale: decimal.RequireFromString(price),
		SoldByName:  soldBy,
		SoldByEmail: soldBy + "@test.local",
		CreatedAt:   at,
	}
}

func TestGetReport_Daily(t *testing.T) {
	now := time.Now()
	repo := &fakeReportRepo{rows: []repository.SaleLineRecord{
		reportLine("ana", 2, "50.00", now),
		reportLine("ana", 1, "20.00", now.AddDate(0, 0, -3)), // fuera del día
	}}
	uc := sales.NewReportUseCase(repo, nil)

	out, err := uc.GetReport(context.Background(), sales.ReportQuery{Type: "daily"})
	require.NoError(t, err)

	assert.Equal(t, "daily", out.Filter)
	require.NotNil(t, out.Range)
	assert.Equal(t, 1, out.Count, "solo la venta de hoy entra en el rango")
	require.Len(t, out.Sales, 1)
	assert.True(t, out.Sales[0].Total.Equal(decimal.RequireFromString("100.00")),
		"total de línea = cantidad * precio")
}

func TestGetReport_SinVentasCuentaCero(t *testing.T) {
	uc := sales.NewReportUseCase(&fakeReportRepo{}, nil)

	out, err := uc.GetReport(context.Background(), sales.ReportQuery{Type: "weekly"})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Count)
	assert.NotNil(t, out.Sales, "sales debe ser lista vacía, no null")
	assert.Empty(t, out.Sales)
}

func TestGetReport_TipoInvalido(t *testing.T) {
	uc := sales.NewReportUseCase(&fakeReportRepo{}, nil)

	_, err := uc.GetReport(context.Background(), sales.ReportQuery{Type: "quarterly"})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestGetReport_CustomExigeAmbasFechas(t *testing.T) {
	uc := sales.NewReportUseCase(&fakeReportRepo{}, nil)

	_, err := uc.GetReport(context.Background(), sales.ReportQuery{
		Type:      "custom",
		StartDate: "2026-01-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRange, "custom sin end_date debe fallar")
}

func TestGetReport_CustomAceptaFechaSimpleYRFC3339(t *testing.T) {
	now := time.Now()
	repo := &fakeReportRepo{rows: []repository.SaleLineRecord{
		reportLine("ana", 1, "10.00", now),
	}}
	uc := sales.NewReportUseCase(repo, nil)

	out, err := uc.GetReport(context.Background(), sales.ReportQuery{
		Type:      "custom",
		StartDate: now.AddDate(0, 0, -1).Format("2006-01-02"),
		EndDate:   now.Add(time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Count)
}

func TestGetReportByUser_StaffSoloVeSusVentas(t *testing.T) {
	uc := sales.NewReportUseCase(&fakeReportRepo{}, nil)

	_, err := uc.GetReportByUser(context.Background(), "u1", entity.RoleStaff, "u2", sales.ReportQuery{})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"staff consultando a otro vendedor debe ser prohibido")
}

func TestGetReportByUser_AdminConsultaCualquiera(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.SaleLineRecord{
		reportLine("u2", 1, "10.00", time.Now()),
		reportLine("u3", 1, "99.00", time.Now()),
	}}
	uc := sales.NewReportUseCase(repo, nil)

	out, err := uc.GetReportByUser(context.Background(), "u1", entity.RoleAdmin, "u2", sales.ReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, "all", out.Filter, "sin type el filtro es el histórico completo")
	assert.Nil(t, out.Range)
	assert.Equal(t, 1, out.Count, "solo las líneas del vendedor pedido")
}

func TestGetReportByUser_ConRango(t *testing.T) {
	now := time.Now()
	repo := &fakeReportRepo{rows: []repository.SaleLineRecord{
		reportLine("u2", 1, "10.00", now),
		reportLine("u2", 1, "10.00", now.AddDate(0, -2, 0)),
	}}
	uc := sales.NewReportUseCase(repo, nil)

	out, err := uc.GetReportByUser(context.Background(), "u2", entity.RoleStaff, "u2",
		sales.ReportQuery{Type: "monthly"})
	require.NoError(t, err)
	assert.Equal(t, "monthly", out.Filter)
	assert.Equal(t, 1, out.Count)
}
