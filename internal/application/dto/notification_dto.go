package dto

import "time"

// NotificationProductDTO producto referenciado por la alerta.
type NotificationProductDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Quantity int64  `json:"quantity"`
}

// NotificationSenderDTO remitente de la alerta.
type NotificationSenderDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NotificationResponse salida de una notificación con referencias pobladas.
type NotificationResponse struct {
	ID        string                  `json:"id"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Product   *NotificationProductDTO `json:"product,omitempty"`
	Sender    *NotificationSenderDTO  `json:"sender,omitempty"`
	IsRead    bool                    `json:"is_read"`
	CreatedAt time.Time               `json:"created_at"`
}
