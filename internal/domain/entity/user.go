package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff" // personal de mostrador: registra ventas y solo ve su propia actividad
)

// ValidRole indica si el rol es uno de los conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleStaff
}

// User representa un usuario del sistema.
// Approved controla el acceso: el registro crea cuentas sin aprobar (salvo admins)
// y el login se rechaza hasta que un admin apruebe.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, manager, staff
	Approved     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
