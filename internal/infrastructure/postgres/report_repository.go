package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes y rankings sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de consultas de reporte.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// lineQuery aplana línea de venta + producto + vendedor, con marcadores para
// referencias rotas igual que el listado de ventas.
const lineQuery = `
	SELECT s.id, si.product_id, si.quantity, si.price_at_sale, s.created_at,
	       COALESCE(p.name, 'Unknown') AS product_name,
	       COALESCE(p.sku, 'N/A') AS sku,
	       COALESCE(u.name, 'Unknown') AS sold_by_name,
	       COALESCE(u.email, 'N/A') AS sold_by_email
	FROM sales s
	JOIN sale_items si ON si.sale_id = s.id
	LEFT JOIN products p ON p.id = si.product_id
	LEFT JOIN users u ON u.id = s.sold_by`

func (r *ReportRepo) lines(ctx context.Context, query string, args ...any) ([]repository.SaleLineRecord, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report lines: %w", err)
	}
	defer rows.Close()

	var list []repository.SaleLineRecord
	for rows.Next() {
		var line repository.SaleLineRecord
		err := rows.Scan(
			&line.SaleID, &line.ProductID, &line.Quantity, &line.PriceAtSale, &line.CreatedAt,
			&line.ProductName, &line.SKU, &line.SoldByName, &line.SoldByEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("scan report line: %w", err)
		}
		list = append(list, line)
	}
	return list, rows.Err()
}

// ReportRows líneas de venta del intervalo [start, end], opcionalmente de un solo vendedor.
func (r *ReportRepo) ReportRows(ctx context.Context, start, end time.Time, staffID string) ([]repository.SaleLineRecord, error) {
	if staffID != "" {
		return r.lines(ctx, lineQuery+`
			WHERE s.created_at >= $1 AND s.created_at <= $2 AND s.sold_by = $3
			ORDER BY s.created_at DESC, si.id`, start, end, staffID)
	}
	return r.lines(ctx, lineQuery+`
		WHERE s.created_at >= $1 AND s.created_at <= $2
		ORDER BY s.created_at DESC, si.id`, start, end)
}

// ReportRowsByStaff todas las líneas históricas de un vendedor.
func (r *ReportRepo) ReportRowsByStaff(ctx context.Context, staffID string) ([]repository.SaleLineRecord, error) {
	return r.lines(ctx, lineQuery+`
		WHERE s.sold_by = $1
		ORDER BY s.created_at DESC, si.id`, staffID)
}

// TopStaff ranking de vendedores por ingreso desde `start`.
func (r *ReportRepo) TopStaff(ctx context.Context, start time.Time, limit int) ([]repository.TopStaffResult, error) {
	query := `
		SELECT s.sold_by,
		       COALESCE(u.name, 'Unknown') AS name,
		       COALESCE(u.email, 'N/A') AS email,
		       SUM(s.total_amount) AS total_sales,
		       COUNT(*) AS sales_count
		FROM sales s
		LEFT JOIN users u ON u.id = s.sold_by
		WHERE s.created_at >= $1
		GROUP BY s.sold_by, u.name, u.email
		ORDER BY total_sales DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, start, limit)
	if err != nil {
		return nil, fmt.Errorf("top staff: %w", err)
	}
	defer rows.Close()

	var list []repository.TopStaffResult
	for rows.Next() {
		var res repository.TopStaffResult
		if err := rows.Scan(&res.UserID, &res.Name, &res.Email, &res.TotalSales, &res.Count); err != nil {
			return nil, fmt.Errorf("scan top staff: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// TopProducts productos más vendidos por unidades. El INNER JOIN omite líneas
// cuyo producto ya no existe.
func (r *ReportRepo) TopProducts(ctx context.Context, staffID string, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT si.product_id, p.name, p.sku, SUM(si.quantity) AS total_sold
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN products p ON p.id = si.product_id`
	args := []any{limit}
	if staffID != "" {
		query += ` WHERE s.sold_by = $2`
		args = append(args, staffID)
	}
	query += `
		GROUP BY si.product_id, p.name, p.sku
		ORDER BY total_sold DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var list []repository.TopProductResult
	for rows.Next() {
		var res repository.TopProductResult
		if err := rows.Scan(&res.ProductID, &res.Name, &res.SKU, &res.TotalSold); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// revenueByDayQuery agrupa en días calendario UTC. Un ::date a secas
// resolvería en la zona horaria de la sesión y los bordes de día no
// coincidirían con las claves UTC que arma el caso de uso del trend.
const revenueByDayQuery = `
	SELECT (s.created_at AT TIME ZONE 'UTC')::date AS day, SUM(s.total_amount) AS total
	FROM sales s
	WHERE s.created_at >= $1
	GROUP BY day
	ORDER BY day ASC`

// RevenueByDay ingreso por día calendario (UTC) desde `start`. Días sin ventas no aparecen.
func (r *ReportRepo) RevenueByDay(ctx context.Context, start time.Time) ([]repository.DailyRevenueResult, error) {
	rows, err := r.q.Query(ctx, revenueByDayQuery, start)
	if err != nil {
		return nil, fmt.Errorf("revenue by day: %w", err)
	}
	defer rows.Close()

	var list []repository.DailyRevenueResult
	for rows.Next() {
		var res repository.DailyRevenueResult
		if err := rows.Scan(&res.Day, &res.Total); err != nil {
			return nil, fmt.Errorf("scan daily revenue: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// staffSummaryQuery agrega por línea de venta. El ingreso se calcula como
// precio × cantidad de cada línea: sumar s.total_amount aquí contaría el total
// de la venta una vez por cada línea que tenga.
const staffSummaryQuery = `
	SELECT COALESCE(SUM(si.price_at_sale * si.quantity), 0) AS total_amount,
	       COALESCE(SUM(si.quantity), 0) AS total_qty,
	       COUNT(DISTINCT s.id) AS transactions
	FROM sales s
	JOIN sale_items si ON si.sale_id = s.id
	WHERE s.sold_by = $1`

// StaffSummary totales históricos del vendedor; ceros si nunca vendió.
func (r *ReportRepo) StaffSummary(ctx context.Context, staffID string) (repository.StaffSummaryResult, error) {
	var res repository.StaffSummaryResult
	err := r.q.QueryRow(ctx, staffSummaryQuery, staffID).Scan(&res.TotalAmount, &res.TotalQty, &res.Transactions)
	if err != nil {
		return repository.StaffSummaryResult{}, fmt.Errorf("staff summary: %w", err)
	}
	return res, nil
}

// RecentLines últimas líneas de venta del vendedor, más recientes primero.
func (r *ReportRepo) RecentLines(ctx context.Context, staffID string, limit int) ([]repository.SaleLineRecord, error) {
	return r.lines(ctx, lineQuery+`
		WHERE s.sold_by = $1
		ORDER BY s.created_at DESC, si.id
		LIMIT $2`, staffID, limit)
}
