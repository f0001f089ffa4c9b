package stream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrConnectionNotFound = errors.New("conexão de stream não encontrada")

// Connection descreve uma conexão de stream ativa para introspecção operacional
type Connection struct {
	ID            string    `json:"id"`
	BusinessID    string    `json:"business_id"`
	UserID        string    `json:"user_id"`
	StartedAt     time.Time `json:"started_at"`
	LastHeartbeat time.Time `json:"last_heartbeat"`
	Closed        bool      `json:"closed"`
}

// Registry mantém no Redis o registro das conexões de stream ativas.
// Cada conexão é um hash com TTL renovado a cada heartbeat; entradas expiradas
// são recolhidas pelo passe periódico de limpeza.
type Registry struct {
	rdb *redis.Client
}

// NewRegistry cria um novo registro de conexões
func NewRegistry(rdb *redis.Client) *Registry {
	return &Registry{rdb: rdb}
}

// Register registra uma nova conexão e retorna seu ID
func (r *Registry) Register(ctx context.Context, businessID, userID string) (string, error) {
	id := uuid.New().String()
	now := time.Now()

	key := fmt.Sprintf(KeyConnection, id)
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"business_id":    businessID,
		"user_id":        userID,
		"started_at":     now.Format(time.RFC3339),
		"last_heartbeat": now.Format(time.RFC3339),
		"closed":         "0",
	})
	pipe.Expire(ctx, key, TTLConnection)
	pipe.SAdd(ctx, fmt.Sprintf(KeyConnectionSet, businessID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("erro ao registrar conexão: %w", err)
	}

	return id, nil
}

// Heartbeat renova o TTL da conexão e registra o instante do heartbeat
func (r *Registry) Heartbeat(ctx context.Context, id string) error {
	key := fmt.Sprintf(KeyConnection, id)
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, key, "last_heartbeat", time.Now().Format(time.RFC3339))
	pipe.Expire(ctx, key, TTLConnection)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("erro ao renovar heartbeat: %w", err)
	}
	return nil
}

// IsClosed verifica se a conexão foi encerrada administrativamente ou expirou
func (r *Registry) IsClosed(ctx context.Context, id string) (bool, error) {
	closed, err := r.rdb.HGet(ctx, fmt.Sprintf(KeyConnection, id), "closed").Result()
	if errors.Is(err, redis.Nil) {
		// Hash expirado: a conexão deve se encerrar
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("erro ao consultar conexão: %w", err)
	}
	return closed == "1", nil
}

// ForceClose marca a conexão para encerramento; o loop do stream encerra ao
// observar a marca no próximo ciclo
func (r *Registry) ForceClose(ctx context.Context, businessID, id string) error {
	key := fmt.Sprintf(KeyConnection, id)

	owner, err := r.rdb.HGet(ctx, key, "business_id").Result()
	if errors.Is(err, redis.Nil) || (err == nil && owner != businessID) {
		return ErrConnectionNotFound
	}
	if err != nil {
		return fmt.Errorf("erro ao consultar conexão: %w", err)
	}

	if err := r.rdb.HSet(ctx, key, "closed", "1").Err(); err != nil {
		return fmt.Errorf("erro ao encerrar conexão: %w", err)
	}
	return nil
}

// Unregister remove a conexão do registro
func (r *Registry) Unregister(ctx context.Context, businessID, id string) error {
	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, fmt.Sprintf(KeyConnection, id))
	pipe.SRem(ctx, fmt.Sprintf(KeyConnectionSet, businessID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("erro ao remover conexão: %w", err)
	}
	return nil
}

// List lista as conexões ativas de um negócio
func (r *Registry) List(ctx context.Context, businessID string) ([]Connection, error) {
	ids, err := r.rdb.SMembers(ctx, fmt.Sprintf(KeyConnectionSet, businessID)).Result()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar conexões: %w", err)
	}

	conns := make([]Connection, 0, len(ids))
	for _, id := range ids {
		fields, err := r.rdb.HGetAll(ctx, fmt.Sprintf(KeyConnection, id)).Result()
		if err != nil {
			return nil, fmt.Errorf("erro ao ler conexão: %w", err)
		}
		if len(fields) == 0 {
			// Hash expirado: conexão morta, fica para o passe de limpeza
			continue
		}

		conn := Connection{
			ID:         id,
			BusinessID: fields["business_id"],
			UserID:     fields["user_id"],
			Closed:     fields["closed"] == "1",
		}
		if t, err := time.Parse(time.RFC3339, fields["started_at"]); err == nil {
			conn.StartedAt = t
		}
		if t, err := time.Parse(time.RFC3339, fields["last_heartbeat"]); err == nil {
			conn.LastHeartbeat = t
		}
		conns = append(conns, conn)
	}

	return conns, nil
}

// Cleanup remove do conjunto do negócio as conexões cujo hash já expirou.
// Retorna quantas entradas foram recolhidas.
func (r *Registry) Cleanup(ctx context.Context, businessID string) (int, error) {
	setKey := fmt.Sprintf(KeyConnectionSet, businessID)
	ids, err := r.rdb.SMembers(ctx, setKey).Result()
	if err != nil {
		return 0, fmt.Errorf("erro ao listar conexões: %w", err)
	}

	removed := 0
	for _, id := range ids {
		exists, err := r.rdb.Exists(ctx, fmt.Sprintf(KeyConnection, id)).Result()
		if err != nil {
			return removed, fmt.Errorf("erro ao verificar conexão: %w", err)
		}
		if exists == 0 {
			if err := r.rdb.SRem(ctx, setKey, id).Err(); err != nil {
				return removed, fmt.Errorf("erro ao remover conexão expirada: %w", err)
			}
			removed++
		}
	}

	return removed, nil
}

// CleanupAll percorre todos os conjuntos de conexões e recolhe entradas mortas
func (r *Registry) CleanupAll(ctx context.Context) (int, error) {
	var cursor uint64
	removed := 0
	for {
		keys, next, err := r.rdb.Scan(ctx, cursor, "stream:conns:*", 100).Result()
		if err != nil {
			return removed, fmt.Errorf("erro ao varrer conjuntos de conexões: %w", err)
		}
		for _, setKey := range keys {
			businessID := setKey[len("stream:conns:"):]
			n, err := r.Cleanup(ctx, businessID)
			if err != nil {
				return removed, err
			}
			removed += n
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return removed, nil
}
