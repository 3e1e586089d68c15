package toggle

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
)

// Counter incrementa e devolve o novo valor como uma operação atômica.
type Counter interface {
	Incr(ctx context.Context) (int64, error)
}

// MemoryCounter é o contador padrão, local ao processo.
type MemoryCounter struct {
	n atomic.Int64
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{}
}

func (c *MemoryCounter) Incr(_ context.Context) (int64, error) {
	return c.n.Add(1), nil
}

// RedisClient é o subconjunto do go-redis usado pelo contador (permite Mocking).
type RedisClient interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisCounter compartilha o contador entre réplicas usando INCR.
type RedisCounter struct {
	client RedisClient
	key    string
}

// NewRedisCounter apaga a chave para que o processo comece de um contador zerado.
func NewRedisCounter(ctx context.Context, client RedisClient, key string) (*RedisCounter, error) {
	if err := client.Del(ctx, key).Err(); err != nil {
		return nil, fmt.Errorf("falha ao reiniciar contador redis %q: %w", key, err)
	}
	return &RedisCounter{client: client, key: key}, nil
}

func (c *RedisCounter) Incr(ctx context.Context) (int64, error) {
	n, err := c.client.Incr(ctx, c.key).Result()
	if err != nil {
		return 0, fmt.Errorf("erro no INCR redis %q: %w", c.key, err)
	}
	return n, nil
}
