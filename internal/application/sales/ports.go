package sales

import (
	"context"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain/report"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción con los repos de
// productos y ventas atados a la misma tx. Si fn retorna error (ej:
// ErrInsufficientStock en la línea 3 de 5), TODO se revierte: ningún stock
// queda descontado y la venta no se persiste.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReportPDFGenerator genera la representación PDF de un reporte de ventas.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, filter string, rng report.Range, rows []dto.ReportRowDTO) ([]byte, error)
}
