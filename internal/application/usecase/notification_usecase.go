package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

const notificationListLimit = 15

// NotificationUseCase alertas de stock bajo: el personal de mostrador las crea,
// admin/manager las lee y las marca como atendidas.
type NotificationUseCase struct {
	notifRepo   repository.NotificationRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(
	notifRepo repository.NotificationRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *NotificationUseCase {
	return &NotificationUseCase{notifRepo: notifRepo, productRepo: productRepo, userRepo: userRepo}
}

// CreateAlert registra una alerta de stock bajo para el producto indicado.
func (uc *NotificationUseCase) CreateAlert(senderID, productID string) (*dto.NotificationResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	sender, err := uc.userRepo.GetByID(senderID)
	if err != nil {
		return nil, err
	}
	senderName := "Unknown"
	if sender != nil {
		senderName = sender.Name
	}

	n := &entity.Notification{
		ID:        uuid.New().String(),
		Title:     "Low Stock Alert",
		Message:   fmt.Sprintf("%s flagged low stock for %s", senderName, product.Name),
		ProductID: productID,
		SenderID:  senderID,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if err := uc.notifRepo.Create(n); err != nil {
		return nil, err
	}
	return &dto.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
		Product: &dto.NotificationProductDTO{
			ID:       product.ID,
			Name:     product.Name,
			SKU:      product.SKU,
			Quantity: product.Quantity,
		},
	}, nil
}

// List devuelve las notificaciones más recientes (máx. 15), por defecto solo
// las no leídas; showAll incluye también las atendidas.
func (uc *NotificationUseCase) List(showAll bool) ([]dto.NotificationResponse, error) {
	records, err := uc.notifRepo.List(!showAll, notificationListLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(records))
	for _, r := range records {
		resp := dto.NotificationResponse{
			ID:        r.ID,
			Title:     r.Title,
			Message:   r.Message,
			IsRead:    r.IsRead,
			CreatedAt: r.CreatedAt,
		}
		if r.ProductID != "" {
			resp.Product = &dto.NotificationProductDTO{
				ID:       r.ProductID,
				Name:     r.ProductName,
				SKU:      r.ProductSKU,
				Quantity: r.ProductQuantity,
			}
		}
		if r.SenderID != "" {
			resp.Sender = &dto.NotificationSenderDTO{
				ID:    r.SenderID,
				Name:  r.SenderName,
				Email: r.SenderEmail,
			}
		}
		out = append(out, resp)
	}
	return out, nil
}

// MarkAsRead marca la notificación como atendida. ErrNotFound si no existe.
func (uc *NotificationUseCase) MarkAsRead(id string) error {
	ok, err := uc.notifRepo.MarkAsRead(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
