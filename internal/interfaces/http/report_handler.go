package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/application/sales"
	"github.com/jhoicas/puntoventa-api/internal/domain"
)

// ReportHandler reportes, rankings, trend y panel del vendedor (protegido).
type ReportHandler struct {
	reportUC      *sales.ReportUseCase
	leaderboardUC *sales.LeaderboardUseCase
	trendUC       *sales.TrendUseCase
	statsUC       *sales.StaffStatsUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(
	reportUC *sales.ReportUseCase,
	leaderboardUC *sales.LeaderboardUseCase,
	trendUC *sales.TrendUseCase,
	statsUC *sales.StaffStatsUseCase,
) *ReportHandler {
	return &ReportHandler{
		reportUC:      reportUC,
		leaderboardUC: leaderboardUC,
		trendUC:       trendUC,
		statsUC:       statsUC,
	}
}

func queryToReportQuery(c *fiber.Ctx) sales.ReportQuery {
	return sales.ReportQuery{
		Type:      c.Query("type"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		StaffID:   c.Query("staff_id"),
	}
}

// GetReport godoc
// @Summary      Reporte de ventas por rango
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        type        query  string  true   "daily | weekly | monthly | custom"
// @Param        start_date  query  string  false  "Inicio (custom, YYYY-MM-DD o RFC3339)"
// @Param        end_date    query  string  false  "Fin (custom)"
// @Param        staff_id    query  string  false  "Restringir a un vendedor"
// @Success      200  {object}  dto.ReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/report [get]
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	out, err := h.reportUC.GetReport(c.UserContext(), queryToReportQuery(c))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// GetReportPDF godoc
// @Summary      Reporte de ventas en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        type        query  string  true   "daily | weekly | monthly | custom"
// @Param        start_date  query  string  false  "Inicio (custom)"
// @Param        end_date    query  string  false  "Fin (custom)"
// @Param        staff_id    query  string  false  "Restringir a un vendedor"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/report/pdf [get]
func (h *ReportHandler) GetReportPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.reportUC.GetReportPDF(c.UserContext(), queryToReportQuery(c))
	if err != nil {
		return reportError(c, err)
	}
	filename := fmt.Sprintf("reporte-ventas-%s.pdf", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// GetReportByUser godoc
// @Summary      Reporte de un vendedor
// @Description  Staff solo puede consultar su propio ID. Sin type devuelve el histórico completo.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        userId      path   string  true   "ID del vendedor"
// @Param        type        query  string  false  "daily | weekly | monthly | custom"
// @Param        start_date  query  string  false  "Inicio (custom)"
// @Param        end_date    query  string  false  "Fin (custom)"
// @Success      200  {object}  dto.ReportResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/sales/user/{userId} [get]
func (h *ReportHandler) GetReportByUser(c *fiber.Ctx) error {
	targetID := c.Params("userId")
	if targetID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "userId es requerido"})
	}
	out, err := h.reportUC.GetReportByUser(c.UserContext(), GetUserID(c), GetRole(c), targetID, queryToReportQuery(c))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// TopStaff godoc
// @Summary      Top 3 vendedores por ingreso
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "weekly | monthly | yearly"  default(weekly)
// @Success      200  {object}  dto.TopStaffResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/top-staff [get]
func (h *ReportHandler) TopStaff(c *fiber.Ctx) error {
	out, err := h.leaderboardUC.TopStaff(c.UserContext(), c.Query("period"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Top 4 productos por unidades vendidas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TopProductDTO
// @Router       /api/sales/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	out, err := h.leaderboardUC.TopProducts(c.UserContext(), "")
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// StaffTopProducts godoc
// @Summary      Top 4 productos del vendedor autenticado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TopProductDTO
// @Router       /api/sales/staff/top-products [get]
func (h *ReportHandler) StaffTopProducts(c *fiber.Ctx) error {
	out, err := h.leaderboardUC.TopProducts(c.UserContext(), GetUserID(c))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// RevenueTrend godoc
// @Summary      Serie diaria de ingresos
// @Description  Exactamente N puntos terminando hoy inclusive; días sin ventas en cero.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        range  query  int  false  "Días de la ventana"  default(7)
// @Success      200  {array}  dto.TrendPointDTO
// @Router       /api/sales/admin/revenue-trend [get]
func (h *ReportHandler) RevenueTrend(c *fiber.Ctx) error {
	days := c.QueryInt("range", 0)
	out, err := h.trendUC.RevenueTrend(c.UserContext(), days)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// StaffSummary godoc
// @Summary      Totales históricos del vendedor autenticado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StaffSummaryDTO
// @Router       /api/sales/staff-summary [get]
func (h *ReportHandler) StaffSummary(c *fiber.Ctx) error {
	out, err := h.statsUC.Summary(c.UserContext(), GetUserID(c))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// RecentSales godoc
// @Summary      Últimas 5 líneas vendidas por el vendedor autenticado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RecentSaleRowDTO
// @Router       /api/sales/staff/recent-sales [get]
func (h *ReportHandler) RecentSales(c *fiber.Ctx) error {
	out, err := h.statsUC.RecentSales(c.UserContext(), GetUserID(c))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// reportError mapea los sentinelas de dominio de reportes a estados HTTP.
func reportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: "rango inválido: type daily|weekly|monthly|custom; custom exige start_date y end_date"})
	case errors.Is(err, domain.ErrInvalidPeriod):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "period inválido: weekly|monthly|yearly"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede consultar sus propias ventas"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
