package user

import (
	"context"
)

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID dentro do negócio
	FindByID(ctx context.Context, businessID, id string) (*User, error)

	// FindByEmail busca um usuário pelo email (login, sem escopo de negócio)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// List lista os usuários de um negócio com paginação
	List(ctx context.Context, businessID string, limit, offset int) ([]*User, error)

	// UpdateLastLogin registra o momento do último login
	UpdateLastLogin(ctx context.Context, id string) error

	// ExistsByEmail verifica se já existe usuário com o email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
