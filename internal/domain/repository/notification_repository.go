package repository

import "github.com/jhoicas/puntoventa-api/internal/domain/entity"

// NotificationRecord notificación con producto y remitente poblados para listados.
type NotificationRecord struct {
	entity.Notification
	ProductName     string
	ProductSKU      string
	ProductQuantity int64
	SenderName      string
	SenderEmail     string
}

// NotificationRepository puerto de persistencia para notificaciones.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	// List devuelve las más recientes primero; onlyUnread filtra las no leídas.
	List(onlyUnread bool, limit int) ([]*NotificationRecord, error)
	MarkAsRead(id string) (bool, error)
}
