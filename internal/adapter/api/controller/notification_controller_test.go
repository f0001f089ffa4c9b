package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	notificationdomain "github.com/hugohenrick/pdv-varejo/internal/domain/notification"
)

func streamContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", target, nil)
	return ctx
}

func TestStreamCursor(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   int64
	}{
		{"lastId", "/notifications/stream?lastId=500", 500},
		{"grafia last_id", "/notifications/stream?last_id=42", 42},
		{"lastId tem precedência", "/notifications/stream?lastId=7&last_id=9", 7},
		{"ausente", "/notifications/stream", 0},
		{"não numérico", "/notifications/stream?lastId=abc", 0},
		{"negativo", "/notifications/stream?lastId=-3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := streamContext(t, tt.target)
			if got := streamCursor(ctx); got != tt.want {
				t.Errorf("streamCursor() = %d, esperado %d", got, tt.want)
			}
		})
	}
}

func TestStreamEventName(t *testing.T) {
	if got := streamEventName(notificationdomain.TypeLowStock); got != "low_stock" {
		t.Errorf("evento para estoque baixo = %s, esperado low_stock", got)
	}

	for _, typ := range []notificationdomain.Type{
		notificationdomain.TypeInfo,
		notificationdomain.TypeSale,
		notificationdomain.TypeDebt,
	} {
		if got := streamEventName(typ); got != "notification" {
			t.Errorf("evento para %s = %s, esperado notification", typ, got)
		}
	}
}
