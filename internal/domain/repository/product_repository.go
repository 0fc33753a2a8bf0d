package repository

import "github.com/jhoicas/puntoventa-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos (usable con pool o tx).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de la
	// transacción activa. Fuera de una transacción se comporta como GetByID.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// DecrementQuantity resta `qty` unidades; el caller ya validó stock bajo bloqueo.
	DecrementQuantity(id string, qty int64) error
	Search(search string, limit, offset int) ([]*entity.Product, int, error)
	LowStock(threshold int64, limit int) ([]*entity.Product, error)
	Delete(id string) error
}
