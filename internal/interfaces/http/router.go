package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/puntoventa-api/internal/application/auth"
	"github.com/jhoicas/puntoventa-api/internal/application/sales"
	"github.com/jhoicas/puntoventa-api/internal/application/usecase"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	ProductUC      *usecase.ProductUseCase
	NotificationUC *usecase.NotificationUseCase
	CreateSale     *sales.CreateSaleUseCase
	ReportUC       *sales.ReportUseCase
	LeaderboardUC  *sales.LeaderboardUseCase
	TrendUC        *sales.TrendUseCase
	StaffStatsUC   *sales.StaffStatsUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleAdmin)
	adminOrManager := RequireRole(entity.RoleAdmin, entity.RoleManager)
	adminOrStaff := RequireRole(entity.RoleAdmin, entity.RoleStaff)
	staffOnly := RequireRole(entity.RoleStaff)

	// Auth (registro y login públicos; aprobación solo admin)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Put("/approve/:id", AuthMiddleware(deps.JWTSecret), adminOnly, authHandler.Approve)
	authGroup.Get("/pending", AuthMiddleware(deps.JWTSecret), adminOnly, authHandler.Pending)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.GetMe)
	users.Put("/me", userHandler.UpdateMe)
	users.Get("/", adminOnly, userHandler.List)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	// Products (protegido; escritura solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Sales (protegido). Las rutas con prefijo fijo van antes de /:id.
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale)
	reportHandler := NewReportHandler(deps.ReportUC, deps.LeaderboardUC, deps.TrendUC, deps.StaffStatsUC)
	salesGroup.Get("/report", adminOrManager, reportHandler.GetReport)
	salesGroup.Get("/report/pdf", adminOrManager, reportHandler.GetReportPDF)
	salesGroup.Get("/top-staff", adminOrManager, reportHandler.TopStaff)
	salesGroup.Get("/top-products", adminOrManager, reportHandler.TopProducts)
	salesGroup.Get("/admin/revenue-trend", adminOrManager, reportHandler.RevenueTrend)
	salesGroup.Get("/staff-summary", reportHandler.StaffSummary)
	salesGroup.Get("/staff/top-products", staffOnly, reportHandler.StaffTopProducts)
	salesGroup.Get("/staff/recent-sales", staffOnly, reportHandler.RecentSales)
	salesGroup.Get("/user/:userId", reportHandler.GetReportByUser)
	salesGroup.Post("/", adminOrStaff, saleHandler.Create)
	salesGroup.Get("/", adminOrStaff, saleHandler.List)
	salesGroup.Get("/:id", adminOrStaff, saleHandler.GetByID)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Post("/alert/:productId", staffOnly, notificationHandler.CreateAlert)
	notifications.Get("/", adminOrManager, notificationHandler.List)
	notifications.Patch("/:id/read", adminOrManager, notificationHandler.MarkAsRead)
}
