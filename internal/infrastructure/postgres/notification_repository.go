package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una nueva notificación.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, title, message, product_id, sender_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.Title, n.Message, n.ProductID, n.SenderID, n.IsRead, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// List devuelve notificaciones con producto y remitente poblados, las más
// recientes primero. Referencias rotas llegan como "Unknown"/"N/A".
func (r *NotificationRepo) List(onlyUnread bool, limit int) ([]*repository.NotificationRecord, error) {
	query := `
		SELECT n.id, n.title, n.message, n.product_id, n.sender_id, n.is_read, n.created_at,
		       COALESCE(p.name, 'Unknown') AS product_name,
		       COALESCE(p.sku, 'N/A') AS product_sku,
		       COALESCE(p.quantity, 0) AS product_quantity,
		       COALESCE(u.name, 'Unknown') AS sender_name,
		       COALESCE(u.email, 'N/A') AS sender_email
		FROM notifications n
		LEFT JOIN products p ON p.id = n.product_id
		LEFT JOIN users u ON u.id = n.sender_id`
	if onlyUnread {
		query += `
		WHERE n.is_read = false`
	}
	query += `
		ORDER BY n.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []*repository.NotificationRecord
	for rows.Next() {
		rec := repository.NotificationRecord{Notification: entity.Notification{}}
		err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Message, &rec.ProductID, &rec.SenderID, &rec.IsRead, &rec.CreatedAt,
			&rec.ProductName, &rec.ProductSKU, &rec.ProductQuantity, &rec.SenderName, &rec.SenderEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// MarkAsRead marca la notificación como leída. Devuelve false si no existe.
func (r *NotificationRepo) MarkAsRead(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("mark notification read: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
