package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/pdv-varejo/internal/domain/user"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "chave-de-teste")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	svc, err := NewJWTService()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	return svc
}

func TestNewJWTServiceRequiresKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	if _, err := NewJWTService(); !errors.Is(err, ErrMissingJWTKey) {
		t.Errorf("erro = %v, esperado ErrMissingJWTKey", err)
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(t)

	u := &user.User{
		ID:         "user-1",
		BusinessID: "biz-1",
		Email:      "maria@mercado.com",
		Name:       "Maria",
		Role:       user.RoleAdmin,
	}

	token, err := svc.GenerateToken(u)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if token == "" {
		t.Fatal("token vazio")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if claims.UserID != u.ID || claims.BusinessID != u.BusinessID {
		t.Errorf("claims = %+v, esperado usuário %s do negócio %s", claims, u.ID, u.BusinessID)
	}
	if claims.Role != string(user.RoleAdmin) {
		t.Errorf("role = %s, esperado admin", claims.Role)
	}
	if claims.ExpiresAt.Before(time.Now()) {
		t.Error("token emitido já expirado")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	for _, token := range []string{"", "abc", "a.b.c"} {
		if _, err := svc.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ValidateToken(%q): erro = %v, esperado ErrInvalidToken", token, err)
		}
	}
}

func TestValidateTokenRejectsOtherKey(t *testing.T) {
	svc := newTestService(t)

	u := &user.User{ID: "user-1", BusinessID: "biz-1", Role: user.RoleCashier}
	token, err := svc.GenerateToken(u)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	other := &JWTService{secretKey: []byte("outra-chave"), expiration: time.Hour}
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("erro = %v, esperado ErrInvalidToken", err)
	}
}

func TestExpirationFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "chave-de-teste")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")

	svc, err := NewJWTService()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if svc.Expiration() != 2*time.Hour {
		t.Errorf("expiração = %v, esperado 2h", svc.Expiration())
	}
}
