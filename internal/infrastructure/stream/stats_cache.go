package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hugohenrick/pdv-varejo/internal/domain/dashboard"
	"github.com/redis/go-redis/v9"
)

// StatsCache guarda no Redis as estatísticas do painel por negócio e janela
type StatsCache struct {
	rdb *redis.Client
}

// NewStatsCache cria um novo cache de estatísticas
func NewStatsCache(rdb *redis.Client) *StatsCache {
	return &StatsCache{rdb: rdb}
}

// Get busca as estatísticas no cache; o segundo retorno indica acerto
func (c *StatsCache) Get(ctx context.Context, businessID string, r dashboard.Range) (*dashboard.Stats, bool, error) {
	key := fmt.Sprintf(KeyDashboardStats, businessID, r)
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("erro ao consultar cache de estatísticas: %w", err)
	}

	var stats dashboard.Stats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil, false, fmt.Errorf("erro ao decodificar estatísticas: %w", err)
	}
	return &stats, true, nil
}

// Set grava as estatísticas no cache com o TTL padrão
func (c *StatsCache) Set(ctx context.Context, businessID string, r dashboard.Range, stats *dashboard.Stats) error {
	if stats == nil {
		return nil
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("erro ao codificar estatísticas: %w", err)
	}
	key := fmt.Sprintf(KeyDashboardStats, businessID, r)
	return c.rdb.Set(ctx, key, payload, TTLDashboardStats).Err()
}
