package user

import (
	"errors"
	"testing"
)

func TestNewUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{"nome vazio", "", "maria@mercado.com", "segredo", ErrEmptyName},
		{"email vazio", "Maria", "", "segredo", ErrEmptyEmail},
		{"senha curta", "Maria", "maria@mercado.com", "12345", ErrShortPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser("biz", tt.userName, tt.email, tt.password, RoleCashier)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("erro = %v, esperado %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewUserHashesPassword(t *testing.T) {
	u, err := NewUser("biz", "Maria", "maria@mercado.com", "segredo", RoleAdmin)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if u.Password == "segredo" {
		t.Error("senha armazenada em texto puro")
	}
	if !u.CheckPassword("segredo") {
		t.Error("CheckPassword falhou para a senha correta")
	}
	if u.CheckPassword("errada") {
		t.Error("CheckPassword aceitou senha incorreta")
	}

	if !u.IsActive() {
		t.Error("usuário novo deve estar ativo")
	}
	if !u.IsAdmin() {
		t.Error("IsAdmin() = false para admin")
	}
}
