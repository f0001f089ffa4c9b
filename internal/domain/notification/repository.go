package notification

import (
	"context"
)

// Repository define a interface para o log de notificações
type Repository interface {
	// Create grava uma notificação e preenche o ID gerado
	Create(ctx context.Context, n *Notification) error

	// List lista as notificações do negócio, mais recentes primeiro
	List(ctx context.Context, businessID string, onlyUnread bool, limit, offset int) ([]*Notification, error)

	// CountUnread conta as notificações não lidas
	CountUnread(ctx context.Context, businessID string) (int, error)

	// FindAfter retorna as notificações com id maior que lastID, em ordem
	// crescente; é a consulta de polling do stream
	FindAfter(ctx context.Context, businessID string, lastID int64, limit int) ([]*Notification, error)

	// MarkRead marca uma notificação como lida
	MarkRead(ctx context.Context, businessID string, id int64) error

	// MarkAllRead marca todas as notificações do negócio como lidas
	MarkAllRead(ctx context.Context, businessID string) error
}
