package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

// CreateSaleUseCase registra una venta descontando el inventario en una sola
// transacción. Cada producto se bloquea con SELECT FOR UPDATE antes de validar
// y restar, así dos ventas concurrentes del mismo producto no pueden sobrevender.
type CreateSaleUseCase struct {
	txRunner SaleTxRunner
	saleRepo repository.SaleRepository
	userRepo repository.UserRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner SaleTxRunner,
	saleRepo repository.SaleRepository,
	userRepo repository.UserRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner, saleRepo: saleRepo, userRepo: userRepo}
}

// CreateSale procesa las líneas en orden: bloquea el producto, valida stock,
// descuenta, toma el precio vigente como PriceAtSale y acumula el total. Al
// final persiste la venta con sus líneas. Cualquier fallo revierte todo.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	seller, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		SoldBy:    userID,
		CreatedAt: now,
	}
	// Nombre y SKU capturados bajo el bloqueo, para la respuesta.
	type lineView struct {
		name string
		sku  string
	}
	views := make([]lineView, 0, len(in.Items))

	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		for _, it := range in.Items {
			product, err := productRepo.GetForUpdate(it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("producto %s: %w", it.ProductID, domain.ErrNotFound)
			}
			if product.Quantity < it.Quantity {
				return fmt.Errorf("%s: %w", product.Name, domain.ErrInsufficientStock)
			}
			if err := productRepo.DecrementQuantity(product.ID, it.Quantity); err != nil {
				return err
			}
			priceAtSale := product.Price
			sale.Items = append(sale.Items, entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      sale.ID,
				ProductID:   product.ID,
				Quantity:    it.Quantity,
				PriceAtSale: priceAtSale,
			})
			views = append(views, lineView{name: product.Name, sku: product.SKU})
		}
		sale.TotalAmount = sale.ComputeTotal()
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.SaleResponse{
		ID:          sale.ID,
		TotalAmount: sale.TotalAmount,
		SoldBy: dto.SaleSellerResponse{
			ID:    seller.ID,
			Name:  seller.Name,
			Email: seller.Email,
		},
		CreatedAt: sale.CreatedAt,
		Items:     make([]dto.SaleItemResponse, 0, len(sale.Items)),
	}
	for i, item := range sale.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: views[i].name,
			SKU:         views[i].sku,
			Quantity:    item.Quantity,
			PriceAtSale: item.PriceAtSale,
			Total:       item.PriceAtSale.Mul(decimal.NewFromInt(item.Quantity)),
		})
	}
	return resp, nil
}

// ListSales devuelve todas las ventas con líneas y vendedor resueltos.
func (uc *CreateSaleUseCase) ListSales(ctx context.Context) ([]dto.SaleResponse, error) {
	records, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *recordToResponse(r))
	}
	return out, nil
}

// GetSale obtiene una venta por ID. ErrNotFound si no existe.
func (uc *CreateSaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	record, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return recordToResponse(record), nil
}

func recordToResponse(r *repository.SaleRecord) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:          r.ID,
		TotalAmount: r.TotalAmount,
		SoldBy: dto.SaleSellerResponse{
			ID:    r.SoldByID,
			Name:  r.SoldByName,
			Email: r.SoldByEmail,
		},
		CreatedAt: r.CreatedAt,
		Items:     make([]dto.SaleItemResponse, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			SKU:         it.SKU,
			Quantity:    it.Quantity,
			PriceAtSale: it.PriceAtSale,
			Total:       it.PriceAtSale.Mul(decimal.NewFromInt(it.Quantity)),
		})
	}
	return resp
}
