package monitoramento

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type redisStub struct {
	n         int64
	incrErr   error
	expireErr error
	armados   int
	janela    time.Duration
}

func (s *redisStub) Incr(ctx context.Context, key string) *redis.IntCmd {
	if s.incrErr != nil {
		return redis.NewIntResult(0, s.incrErr)
	}
	s.n++
	return redis.NewIntResult(s.n, nil)
}

func (s *redisStub) ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	if s.expireErr != nil {
		return redis.NewBoolResult(false, s.expireErr)
	}
	s.armados++
	s.janela = expiration
	return redis.NewBoolResult(s.n == 1, nil)
}

func TestRedisLimiterPermiteAteOLimite(t *testing.T) {
	stub := &redisStub{}
	l := &RedisLimiter{client: stub, max: 3, janela: time.Minute}
	usuario := uuid.New()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(context.Background(), usuario)
		if err != nil {
			t.Fatalf("erro inesperado na chamada %d: %v", i+1, err)
		}
		if !ok {
			t.Fatalf("chamada %d dentro do limite deveria passar", i+1)
		}
	}

	ok, err := l.Allow(context.Background(), usuario)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if ok {
		t.Fatal("quarta chamada deveria ser recusada")
	}
	if stub.janela != time.Minute {
		t.Fatalf("janela incorreta: %v", stub.janela)
	}
}

func TestRedisLimiterRearmaJanelaEmTodaChamada(t *testing.T) {
	stub := &redisStub{}
	l := &RedisLimiter{client: stub, max: 5, janela: time.Minute}
	usuario := uuid.New()

	for i := 0; i < 4; i++ {
		if _, err := l.Allow(context.Background(), usuario); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
	}

	// uma chave que perdeu o TTL precisa voltar a expirar na chamada
	// seguinte, então o EXPIRE NX acompanha cada incremento
	if stub.armados != 4 {
		t.Fatalf("esperava EXPIRE NX em toda chamada, veio %d de 4", stub.armados)
	}
}

func TestRedisLimiterPropagaErroDoBackend(t *testing.T) {
	usuario := uuid.New()

	l := &RedisLimiter{client: &redisStub{incrErr: errors.New("fora do ar")}, max: 5, janela: time.Minute}
	if _, err := l.Allow(context.Background(), usuario); err == nil {
		t.Fatal("falha no INCR deveria propagar erro")
	}

	l = &RedisLimiter{client: &redisStub{expireErr: errors.New("fora do ar")}, max: 5, janela: time.Minute}
	if _, err := l.Allow(context.Background(), usuario); err == nil {
		t.Fatal("falha no EXPIRE NX deveria propagar erro")
	}
}
