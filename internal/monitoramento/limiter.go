package monitoramento

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Limiter decide se uma nova execução manual pode começar.
// O limite é consultivo: erros do backend devem liberar a execução.
type Limiter interface {
	Allow(ctx context.Context, usuarioID uuid.UUID) (bool, error)
}

// comandosRedis cobre os comandos usados pelo limitador.
type comandosRedis interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisLimiter implementa contador atômico por usuário com janela fixa.
// INCR + EXPIRE NX evita a corrida do padrão ler-depois-contar sobre a
// tabela de logs.
type RedisLimiter struct {
	client comandosRedis
	max    int
	janela time.Duration
}

// NewRedisLimiter cria o limitador com máximo de execuções por janela.
func NewRedisLimiter(client *redis.Client, max int, janela time.Duration) *RedisLimiter {
	if max <= 0 {
		max = 5
	}
	if janela <= 0 {
		janela = 5 * time.Minute
	}
	return &RedisLimiter{client: client, max: max, janela: janela}
}

// Allow incrementa o contador do usuário e compara com o limite.
// A janela é armada com EXPIRE NX em toda chamada: uma chave que ficou
// sem TTL por um EXPIRE perdido volta a expirar na chamada seguinte,
// em vez de negar o usuário para sempre.
func (l *RedisLimiter) Allow(ctx context.Context, usuarioID uuid.UUID) (bool, error) {
	key := fmt.Sprintf("monitoramento:execucoes:%s", usuarioID)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if err := l.client.ExpireNX(ctx, key, l.janela).Err(); err != nil {
		return false, err
	}

	return n <= int64(l.max), nil
}
