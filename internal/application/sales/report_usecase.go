package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/report"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

// ReportQuery parámetros crudos del reporte tal como llegan del handler.
type ReportQuery struct {
	Type      string // daily | weekly | monthly | custom
	StartDate string // solo para custom
	EndDate   string // solo para custom
	StaffID   string // opcional: restringe a un vendedor
}

// ReportUseCase aplana ventas del rango pedido en filas desnormalizadas.
// Referencias rotas se resuelven a "Unknown"/"N/A" en el repositorio, nunca
// tumban la fila.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	pdfGen     ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso. pdfGen puede ser nil si no se
// expone la exportación PDF.
func NewReportUseCase(reportRepo repository.ReportRepository, pdfGen ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, pdfGen: pdfGen}
}

// GetReport resuelve el rango y devuelve las filas aplanadas con conteo.
func (uc *ReportUseCase) GetReport(ctx context.Context, q ReportQuery) (*dto.ReportResponse, error) {
	rng, err := uc.resolveQueryRange(q)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.ReportRows(ctx, rng.Start, rng.End, q.StaffID)
	if err != nil {
		return nil, err
	}
	return buildReportResponse(q.Type, &rng, rows), nil
}

// GetReportByUser reporte restringido a un vendedor. Un caller con rol staff
// solo puede pedir su propio ID; otro ID es ErrForbidden. El rango es opcional:
// sin tipo se devuelve el histórico completo con filtro "all".
func (uc *ReportUseCase) GetReportByUser(ctx context.Context, callerID, callerRole, targetUserID string, q ReportQuery) (*dto.ReportResponse, error) {
	if callerRole == entity.RoleStaff && callerID != targetUserID {
		return nil, domain.ErrForbidden
	}

	if q.Type == "" {
		rows, err := uc.reportRepo.ReportRowsByStaff(ctx, targetUserID)
		if err != nil {
			return nil, err
		}
		return buildReportResponse("all", nil, rows), nil
	}

	rng, err := uc.resolveQueryRange(q)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.ReportRows(ctx, rng.Start, rng.End, targetUserID)
	if err != nil {
		return nil, err
	}
	return buildReportResponse(q.Type, &rng, rows), nil
}

// GetReportPDF genera el mismo reporte como documento PDF.
func (uc *ReportUseCase) GetReportPDF(ctx context.Context, q ReportQuery) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, fmt.Errorf("reporte PDF no disponible")
	}
	rng, err := uc.resolveQueryRange(q)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.ReportRows(ctx, rng.Start, rng.End, q.StaffID)
	if err != nil {
		return nil, err
	}
	resp := buildReportResponse(q.Type, &rng, rows)
	return uc.pdfGen.GenerateReportPDF(ctx, q.Type, rng, resp.Sales)
}

func (uc *ReportUseCase) resolveQueryRange(q ReportQuery) (report.Range, error) {
	now := time.Now()
	var start, end time.Time
	if q.Type == report.RangeCustom {
		var err error
		if start, err = parseDate(q.StartDate, now.Location()); err != nil {
			return report.Range{}, domain.ErrInvalidRange
		}
		if end, err = parseDate(q.EndDate, now.Location()); err != nil {
			return report.Range{}, domain.ErrInvalidRange
		}
	}
	return report.ResolveRange(q.Type, start, end, now)
}

// parseDate acepta RFC 3339 o fecha simple YYYY-MM-DD. Cadena vacía es error
// (el caller decide si el rango era obligatorio).
func parseDate(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("fecha vacía")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, loc)
}

func buildReportResponse(filter string, rng *report.Range, rows []repository.SaleLineRecord) *dto.ReportResponse {
	out := &dto.ReportResponse{
		Filter: filter,
		Count:  len(rows),
		Sales:  make([]dto.ReportRowDTO, 0, len(rows)),
	}
	if rng != nil {
		out.Range = &dto.RangeDTO{Start: rng.Start, End: rng.End}
	}
	for _, r := range rows {
		out.Sales = append(out.Sales, dto.ReportRowDTO{
			ProductName: r.ProductName,
			SKU:         r.SKU,
			Quantity:    r.Quantity,
			PriceAtSale: r.PriceAtSale,
			Total:       r.PriceAtSale.Mul(decimal.NewFromInt(r.Quantity)),
			SoldBy:      r.SoldByName,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out
}
