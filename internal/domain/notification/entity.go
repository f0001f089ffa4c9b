package notification

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrEmptyTitle = errors.New("título da notificação não pode ser vazio")
)

// Type representa o tipo de notificação
type Type string

const (
	TypeInfo     Type = "info"
	TypeLowStock Type = "low_stock"
	TypeSale     Type = "sale"
	TypeDebt     Type = "debt"
)

// Priority representa a prioridade da notificação
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// Notification é uma entrada do log de notificações do negócio. O log é
// apenas-escrita, mutado somente para marcar leitura; o id numérico crescente
// é o cursor de consumo do stream.
type Notification struct {
	ID         int64           `json:"id"`
	BusinessID string          `json:"business_id"`
	Type       Type            `json:"type"`
	Title      string          `json:"title"`
	Message    string          `json:"message"`
	Priority   Priority        `json:"priority"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	Read       bool            `json:"read"`
	CreatedAt  time.Time       `json:"created_at"`
}

// New cria uma nova notificação (o ID é atribuído pelo banco)
func New(businessID string, notifType Type, title, message string, priority Priority, payload json.RawMessage) (*Notification, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if priority == "" {
		priority = PriorityNormal
	}

	return &Notification{
		BusinessID: businessID,
		Type:       notifType,
		Title:      title,
		Message:    message,
		Priority:   priority,
		Payload:    payload,
		CreatedAt:  time.Now(),
	}, nil
}
