package repository

import "github.com/jhoicas/puntoventa-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
	ListPending() ([]*entity.User, error)
	Approve(id string) (*entity.User, error)
	Delete(id string) error
}
