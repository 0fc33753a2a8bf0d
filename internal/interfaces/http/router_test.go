package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa-api/internal/application/auth"
	"github.com/jhoicas/puntoventa-api/internal/application/sales"
	"github.com/jhoicas/puntoventa-api/internal/application/usecase"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
	apphttp "github.com/jhoicas/puntoventa-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de repos: responden vacío; aquí solo interesa el control de acceso
// por rol de cada ruta, no la lógica de negocio.
// ──────────────────────────────────────────────────────────────────────────────

type stubUsers struct{}

func (stubUsers) Create(*entity.User) error               { return nil }
func (stubUsers) GetByID(string) (*entity.User, error)    { return nil, nil }
func (stubUsers) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (stubUsers) Update(*entity.User) error               { return nil }
func (stubUsers) List() ([]*entity.User, error)           { return nil, nil }
func (stubUsers) ListPending() ([]*entity.User, error)    { return nil, nil }
func (stubUsers) Approve(string) (*entity.User, error)    { return nil, nil }
func (stubUsers) Delete(string) error                     { return nil }

type stubProducts struct{}

func (stubProducts) Create(*entity.Product) error                 { return nil }
func (stubProducts) GetByID(string) (*entity.Product, error)      { return nil, nil }
func (stubProducts) GetForUpdate(string) (*entity.Product, error) { return nil, nil }
func (stubProducts) Update(*entity.Product) error                 { return nil }
func (stubProducts) DecrementQuantity(string, int64) error        { return nil }
func (stubProducts) Search(string, int, int) ([]*entity.Product, int, error) {
	return nil, 0, nil
}
func (stubProducts) LowStock(int64, int) ([]*entity.Product, error) { return nil, nil }
func (stubProducts) Delete(string) error                            { return nil }

type stubSales struct{}

func (stubSales) Create(*entity.Sale) error                      { return nil }
func (stubSales) GetByID(string) (*repository.SaleRecord, error) { return nil, nil }
func (stubSales) List() ([]*repository.SaleRecord, error)        { return nil, nil }

type stubReports struct{}

func (stubReports) ReportRows(context.Context, time.Time, time.Time, string) ([]repository.SaleLineRecord, error) {
	return nil, nil
}
func (stubReports) ReportRowsByStaff(context.Context, string) ([]repository.SaleLineRecord, error) {
	return nil, nil
}
func (stubReports) TopStaff(context.Context, time.Time, int) ([]repository.TopStaffResult, error) {
	return nil, nil
}
func (stubReports) TopProducts(context.Context, string, int) ([]repository.TopProductResult, error) {
	return nil, nil
}
func (stubReports) RevenueByDay(context.Context, time.Time) ([]repository.DailyRevenueResult, error) {
	return nil, nil
}
func (stubReports) StaffSummary(context.Context, string) (repository.StaffSummaryResult, error) {
	return repository.StaffSummaryResult{}, nil
}
func (stubReports) RecentLines(context.Context, string, int) ([]repository.SaleLineRecord, error) {
	return nil, nil
}

type stubNotifs struct{}

func (stubNotifs) Create(*entity.Notification) error { return nil }
func (stubNotifs) List(bool, int) ([]*repository.NotificationRecord, error) {
	return nil, nil
}
func (stubNotifs) MarkAsRead(string) (bool, error) { return false, nil }

type stubTx struct{}

func (stubTx) RunSale(_ context.Context, fn func(repository.ProductRepository, repository.SaleRepository) error) error {
	return fn(stubProducts{}, stubSales{})
}

// buildRouterApp registra el router real sobre los stubs.
func buildRouterApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(stubUsers{}, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		UserUC:         usecase.NewUserUseCase(stubUsers{}),
		ProductUC:      usecase.NewProductUseCase(stubProducts{}),
		NotificationUC: usecase.NewNotificationUseCase(stubNotifs{}, stubProducts{}, stubUsers{}),
		CreateSale:     sales.NewCreateSaleUseCase(stubTx{}, stubSales{}, stubUsers{}),
		ReportUC:       sales.NewReportUseCase(stubReports{}, nil),
		LeaderboardUC:  sales.NewLeaderboardUseCase(stubReports{}),
		TrendUC:        sales.NewTrendUseCase(stubReports{}),
		StaffStatsUC:   sales.NewStaffStatsUseCase(stubReports{}),
		JWTSecret:      testJWTSecret,
	})
	return app
}

func getWithRole(t *testing.T, app *fiber.App, path, role string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Control de acceso de las rutas de ventas
// ──────────────────────────────────────────────────────────────────────────────

// El listado de ventas es para quienes las registran: admin y staff.
func TestRutaListarVentas_AdminYStaffPermitidos(t *testing.T) {
	app := buildRouterApp()
	for _, role := range []string{"admin", "staff"} {
		resp := getWithRole(t, app, "/api/sales", role)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode,
			"rol %s debe poder listar ventas", role)
	}
}

func TestRutaListarVentas_ManagerBloqueado(t *testing.T) {
	app := buildRouterApp()
	resp := getWithRole(t, app, "/api/sales", "manager")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"manager no registra ventas; su vista es el reporte")
}

// El reporte agregado sigue siendo de admin/manager.
func TestRutaReporteVentas_StaffBloqueado(t *testing.T) {
	app := buildRouterApp()
	resp := getWithRole(t, app, "/api/sales/report", "staff")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
