package notification

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	payload := json.RawMessage(`{"sale_id":"s1"}`)

	n, err := New("biz", TypeSale, "Venda concluída", "Venda VD-1 registrada", PriorityNormal, payload)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if n.ID != 0 {
		t.Errorf("id = %d, esperado 0 antes da persistência", n.ID)
	}
	if n.Read {
		t.Error("notificação nova não pode nascer lida")
	}
	if string(n.Payload) != `{"sale_id":"s1"}` {
		t.Errorf("payload = %s", n.Payload)
	}
}

func TestNewDefaultsPriority(t *testing.T) {
	n, err := New("biz", TypeLowStock, "Estoque baixo", "", "", nil)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if n.Priority != PriorityNormal {
		t.Errorf("prioridade = %s, esperado normal", n.Priority)
	}
}

func TestNewRequiresTitle(t *testing.T) {
	if _, err := New("biz", TypeInfo, "", "mensagem", PriorityLow, nil); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("erro = %v, esperado ErrEmptyTitle", err)
	}
}
