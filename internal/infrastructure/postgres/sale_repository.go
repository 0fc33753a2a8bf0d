package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Las ventas son inmutables: no hay UPDATE ni DELETE.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta y sus líneas. Debe invocarse dentro de la misma
// transacción que descuenta el stock para que venta y descuento sean atómicos.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx,
		`INSERT INTO sales (id, total_amount, sold_by, created_at) VALUES ($1, $2, $3, $4)`,
		sale.ID, sale.TotalAmount, sale.SoldBy, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for _, item := range sale.Items {
		_, err := r.q.Exec(ctx,
			`INSERT INTO sale_items (id, sale_id, product_id, quantity, price_at_sale)
			 VALUES ($1, $2, $3, $4, $5)`,
			item.ID, sale.ID, item.ProductID, item.Quantity, item.PriceAtSale,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// saleQuery aplana venta, líneas, producto y vendedor. LEFT JOIN + COALESCE para
// que referencias rotas no tumben el listado: llegan como "Unknown"/"N/A".
const saleQuery = `
	SELECT s.id, s.total_amount, s.sold_by, s.created_at,
	       si.product_id, si.quantity, si.price_at_sale,
	       COALESCE(p.name, 'Unknown') AS product_name,
	       COALESCE(p.sku, 'N/A') AS sku,
	       COALESCE(u.name, 'Unknown') AS sold_by_name,
	       COALESCE(u.email, 'N/A') AS sold_by_email
	FROM sales s
	JOIN sale_items si ON si.sale_id = s.id
	LEFT JOIN products p ON p.id = si.product_id
	LEFT JOIN users u ON u.id = s.sold_by`

// GetByID obtiene una venta con sus líneas resueltas. Devuelve nil si no existe.
func (r *SaleRepo) GetByID(id string) (*repository.SaleRecord, error) {
	records, err := r.query(saleQuery+` WHERE s.id = $1 ORDER BY si.id`, id)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

// List devuelve todas las ventas con líneas resueltas, las más recientes primero.
func (r *SaleRepo) List() ([]*repository.SaleRecord, error) {
	return r.query(saleQuery + ` ORDER BY s.created_at DESC, s.id, si.id`)
}

func (r *SaleRepo) query(query string, args ...any) ([]*repository.SaleRecord, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var (
		records []*repository.SaleRecord
		index   = map[string]*repository.SaleRecord{}
	)
	for rows.Next() {
		var (
			rec  repository.SaleRecord
			line repository.SaleLineRecord
		)
		err := rows.Scan(
			&rec.ID, &rec.TotalAmount, &rec.SoldByID, &rec.CreatedAt,
			&line.ProductID, &line.Quantity, &line.PriceAtSale,
			&line.ProductName, &line.SKU, &line.SoldByName, &line.SoldByEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sale, ok := index[rec.ID]
		if !ok {
			rec.SoldByName = line.SoldByName
			rec.SoldByEmail = line.SoldByEmail
			sale = &rec
			index[rec.ID] = sale
			records = append(records, sale)
		}
		line.SaleID = sale.ID
		line.CreatedAt = sale.CreatedAt
		sale.Items = append(sale.Items, line)
	}
	return records, rows.Err()
}
