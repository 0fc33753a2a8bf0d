package sales_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/puntoventa-api/internal/application/sales"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso de ventas
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		cp := *p
		m[p.ID] = &cp
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) DecrementQuantity(id string, qty int64) error {
	p, ok := r.products[id]
	if !ok || p.Quantity < qty {
		return domain.ErrInsufficientStock
	}
	p.Quantity -= qty
	return nil
}

func (r *fakeProductRepo) Search(_ string, _, _ int) ([]*entity.Product, int, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) LowStock(_ int64, _ int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) quantity(id string) int64 {
	if p, ok := r.products[id]; ok {
		return p.Quantity
	}
	return -1
}

func (r *fakeProductRepo) snapshot() map[string]entity.Product {
	snap := make(map[string]entity.Product, len(r.products))
	for id, p := range r.products {
		snap[id] = *p
	}
	return snap
}

func (r *fakeProductRepo) restore(snap map[string]entity.Product) {
	r.products = make(map[string]*entity.Product, len(snap))
	for id, p := range snap {
		cp := p
		r.products[id] = &cp
	}
}

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.sales = append(r.sales, &cp)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*repository.SaleRecord, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return saleToRecord(s), nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) List() ([]*repository.SaleRecord, error) {
	out := make([]*repository.SaleRecord, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, saleToRecord(s))
	}
	return out, nil
}

func saleToRecord(s *entity.Sale) *repository.SaleRecord {
	rec := &repository.SaleRecord{
		ID:          s.ID,
		TotalAmount: s.TotalAmount,
		SoldByID:    s.SoldBy,
		SoldByName:  "Unknown",
		SoldByEmail: "N/A",
		CreatedAt:   s.CreatedAt,
	}
	for _, it := range s.Items {
		rec.Items = append(rec.Items, repository.SaleLineRecord{
			SaleID:      s.ID,
			ProductID:   it.ProductID,
			ProductName: "Unknown",
			SKU:         "N/A",
			Quantity:    it.Quantity,
			PriceAtSale: it.PriceAtSale,
			CreatedAt:   s.CreatedAt,
		})
	}
	return rec
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	m := make(map[string]*entity.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) ListPending() ([]*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) Approve(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Approved = true
	return u, nil
}

func (r *fakeUserRepo) Delete(id string) error { delete(r.users, id); return nil }

// fakeTxRunner emula la semántica transaccional: si fn falla, restaura el
// estado del repo de productos y descarta la venta (rollback).
type fakeTxRunner struct {
	productRepo *fakeProductRepo
	saleRepo    *fakeSaleRepo
}

var _ sales.SaleTxRunner = (*fakeTxRunner)(nil)

func (tx *fakeTxRunner) RunSale(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	snap := tx.productRepo.snapshot()
	nSales := len(tx.saleRepo.sales)
	if err := fn(tx.productRepo, tx.saleRepo); err != nil {
		tx.productRepo.restore(snap)
		tx.saleRepo.sales = tx.saleRepo.sales[:nSales]
		return err
	}
	return nil
}

// fakeReportRepo devuelve datos precargados para reportes y rankings.
type fakeReportRepo struct {
	rows       []repository.SaleLineRecord
	topStaff   []repository.TopStaffResult
	topProds   []repository.TopProductResult
	revenue    []repository.DailyRevenueResult
	summary    repository.StaffSummaryResult
	lastStart  time.Time
	lastLimits []int
}

var _ repository.ReportRepository = (*fakeReportRepo)(nil)

func (r *fakeReportRepo) ReportRows(_ context.Context, start, end time.Time, staffID string) ([]repository.SaleLineRecord, error) {
	var out []repository.SaleLineRecord
	for _, row := range r.rows {
		if row.CreatedAt.Before(start) || row.CreatedAt.After(end) {
			continue
		}
		if staffID != "" && row.SoldByName != staffID {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *fakeReportRepo) ReportRowsByStaff(_ context.Context, staffID string) ([]repository.SaleLineRecord, error) {
	var out []repository.SaleLineRecord
	for _, row := range r.rows {
		if row.SoldByName == staffID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) TopStaff(_ context.Context, start time.Time, limit int) ([]repository.TopStaffResult, error) {
	r.lastStart = start
	r.lastLimits = append(r.lastLimits, limit)
	if len(r.topStaff) > limit {
		return r.topStaff[:limit], nil
	}
	return r.topStaff, nil
}

func (r *fakeReportRepo) TopProducts(_ context.Context, _ string, limit int) ([]repository.TopProductResult, error) {
	r.lastLimits = append(r.lastLimits, limit)
	if len(r.topProds) > limit {
		return r.topProds[:limit], nil
	}
	return r.topProds, nil
}

func (r *fakeReportRepo) RevenueByDay(_ context.Context, start time.Time) ([]repository.DailyRevenueResult, error) {
	r.lastStart = start
	var out []repository.DailyRevenueResult
	for _, res := range r.revenue {
		if !res.Day.Before(start) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) StaffSummary(_ context.Context, _ string) (repository.StaffSummaryResult, error) {
	return r.summary, nil
}

func (r *fakeReportRepo) RecentLines(_ context.Context, staffID string, limit int) ([]repository.SaleLineRecord, error) {
	rows, _ := r.ReportRowsByStaff(context.Background(), staffID)
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Builders
// ──────────────────────────────────────────────────────────────────────────────

func testProduct(id, name string, qty int64, price string) *entity.Product {
	d, _ := decimal.NewFromString(price)
	now := time.Now()
	return &entity.Product{
		ID: id, Name: name, SKU: "SKU-" + id, Quantity: qty, Price: d,
		CreatedAt: now, UpdatedAt: now,
	}
}

func testSeller(id, name string) *entity.User {
	now := time.Now()
	return &entity.User{
		ID: id, Name: name, Email: name + "@test.local",
		Role: entity.RoleStaff, Approved: true,
		CreatedAt: now, UpdatedAt: now,
	}
}
