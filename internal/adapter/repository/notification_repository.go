package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/pdv-varejo/internal/domain/notification"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotificationNotFound indica notificação inexistente no negócio
var ErrNotificationNotFound = errors.New("notificação não encontrada")

// NotificationRepository implementa a interface notification.Repository
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository cria uma nova instância de NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) notification.Repository {
	return &NotificationRepository{db: db}
}

// Create implementa notification.Repository.Create. O ID crescente é gerado
// pelo banco e devolvido para o chamador.
func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO notifications (
			business_id, type, title, message, priority, payload, read, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		n.BusinessID, n.Type, n.Title, n.Message, n.Priority, n.Payload,
		n.Read, n.CreatedAt).Scan(&n.ID)

	if err != nil {
		return fmt.Errorf("erro ao gravar notificação: %w", err)
	}

	return nil
}

// List implementa notification.Repository.List
func (r *NotificationRepository) List(ctx context.Context, businessID string, onlyUnread bool, limit, offset int) ([]*notification.Notification, error) {
	query := `SELECT id, business_id, type, title, message, priority, payload,
			read, created_at
		FROM notifications
		WHERE business_id = $1`
	if onlyUnread {
		query += " AND read = FALSE"
	}
	query += " ORDER BY id DESC LIMIT $2 OFFSET $3"

	rows, err := r.db.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar notificações: %w", err)
	}
	defer rows.Close()

	return scanNotificationRows(rows)
}

// CountUnread implementa notification.Repository.CountUnread
func (r *NotificationRepository) CountUnread(ctx context.Context, businessID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM notifications WHERE business_id = $1 AND read = FALSE",
		businessID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar notificações: %w", err)
	}

	return count, nil
}

// FindAfter implementa notification.Repository.FindAfter; é a consulta de
// polling do stream, em ordem crescente de id a partir do cursor do cliente
func (r *NotificationRepository) FindAfter(ctx context.Context, businessID string, lastID int64, limit int) ([]*notification.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, business_id, type, title, message, priority, payload,
			read, created_at
		FROM notifications
		WHERE business_id = $1 AND id > $2
		ORDER BY id ASC
		LIMIT $3`,
		businessID, lastID, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar notificações: %w", err)
	}
	defer rows.Close()

	return scanNotificationRows(rows)
}

// MarkRead implementa notification.Repository.MarkRead
func (r *NotificationRepository) MarkRead(ctx context.Context, businessID string, id int64) error {
	result, err := r.db.Exec(ctx,
		"UPDATE notifications SET read = TRUE WHERE id = $1 AND business_id = $2",
		id, businessID)

	if err != nil {
		return fmt.Errorf("erro ao marcar notificação: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead implementa notification.Repository.MarkAllRead
func (r *NotificationRepository) MarkAllRead(ctx context.Context, businessID string) error {
	_, err := r.db.Exec(ctx,
		"UPDATE notifications SET read = TRUE WHERE business_id = $1 AND read = FALSE",
		businessID)

	if err != nil {
		return fmt.Errorf("erro ao marcar notificações: %w", err)
	}

	return nil
}

// scanNotificationRows processa resultados de consultas de notificações
func scanNotificationRows(rows pgx.Rows) ([]*notification.Notification, error) {
	notifications := make([]*notification.Notification, 0)

	for rows.Next() {
		var n notification.Notification
		var payload []byte
		err := rows.Scan(
			&n.ID, &n.BusinessID, &n.Type, &n.Title, &n.Message, &n.Priority,
			&payload, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler notificação: %w", err)
		}
		n.Payload = payload
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return notifications, nil
}
