package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrNotApproved        = errors.New("cuenta pendiente de aprobación")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidRange       = errors.New("rango de reporte inválido o incompleto")
	ErrInvalidPeriod      = errors.New("período inválido")
)
