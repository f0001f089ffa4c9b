package dto

import (
	"encoding/json"
	"time"

	"github.com/hugohenrick/pdv-varejo/internal/domain/notification"
)

// NotificationResponse representa a resposta de notificação
type NotificationResponse struct {
	ID        int64                 `json:"id"`
	Type      notification.Type     `json:"type"`
	Title     string                `json:"title"`
	Message   string                `json:"message"`
	Priority  notification.Priority `json:"priority"`
	Payload   json.RawMessage       `json:"payload,omitempty"`
	Read      bool                  `json:"read"`
	CreatedAt time.Time             `json:"created_at"`
}

// NotificationListResponse representa a resposta de lista de notificações
type NotificationListResponse struct {
	Items  []NotificationResponse `json:"items"`
	Total  int                    `json:"total"`
	Unread int                    `json:"unread"`
}

// ConnectionResponse representa uma conexão de stream registrada
type ConnectionResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ConnectedAt time.Time `json:"connected_at"`
}

// ConnectionListResponse representa a resposta de lista de conexões ativas
type ConnectionListResponse struct {
	Items []ConnectionResponse `json:"items"`
	Total int                  `json:"total"`
}

// ToNotificationResponse converte uma notificação de domínio para o DTO de resposta
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Priority:  n.Priority,
		Payload:   n.Payload,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationListResponse converte uma lista de notificações para o DTO de resposta
func ToNotificationListResponse(notifications []*notification.Notification, unread int) NotificationListResponse {
	items := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, ToNotificationResponse(n))
	}

	return NotificationListResponse{
		Items:  items,
		Total:  len(items),
		Unread: unread,
	}
}
