package repository

import (
	"context"
	"sync"
	"time"

	"github.com/hugohenrick/pdv-varejo/internal/domain/business"
)

// BusinessValidator valida negócios para o middleware de tenant, com um cache
// curto em memória para não consultar o banco em toda requisição
type BusinessValidator struct {
	repo business.Repository

	mu    sync.Mutex
	cache map[string]validationEntry
	ttl   time.Duration
}

type validationEntry struct {
	valid     bool
	expiresAt time.Time
}

// NewBusinessValidator cria um novo validador de negócios
func NewBusinessValidator(repo business.Repository) *BusinessValidator {
	return &BusinessValidator{
		repo:  repo,
		cache: make(map[string]validationEntry),
		ttl:   30 * time.Second,
	}
}

// ValidateBusiness verifica se o negócio existe e está ativo
func (v *BusinessValidator) ValidateBusiness(businessID string) (bool, error) {
	v.mu.Lock()
	if entry, ok := v.cache[businessID]; ok && time.Now().Before(entry.expiresAt) {
		v.mu.Unlock()
		return entry.valid, nil
	}
	v.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	valid, err := v.repo.Exists(ctx, businessID)
	if err != nil {
		return false, err
	}

	v.mu.Lock()
	v.cache[businessID] = validationEntry{valid: valid, expiresAt: time.Now().Add(v.ttl)}
	v.mu.Unlock()

	return valid, nil
}
