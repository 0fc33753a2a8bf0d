package entity

import "time"

// Notification representa una alerta interna (ej: stock bajo) enviada por el
// personal de mostrador y leída por admin/manager.
type Notification struct {
	ID        string
	Title     string
	Message   string
	ProductID string
	SenderID  string
	IsRead    bool
	CreatedAt time.Time
}
