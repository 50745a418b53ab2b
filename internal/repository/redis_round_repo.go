package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const roundKeyPrefix = "rps:round:"

// RedisRoundRepository stores pending rounds as JSON values with a TTL.
type RedisRoundRepository struct {
	client *redis.Client
}

func NewRedisRoundRepository(client *redis.Client) *RedisRoundRepository {
	return &RedisRoundRepository{client: client}
}

// NewRedisClient connects and pings. Unlike the rate limiter, the round store
// cannot fail open, so a failed ping is returned to the caller.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

func roundKey(id string) string {
	return roundKeyPrefix + id
}

func (r *RedisRoundRepository) Save(ctx context.Context, round *PendingRound, ttl time.Duration) error {
	cp := *round
	cp.ExpiresAt = time.Now().Add(ttl)

	data, err := json.Marshal(&cp)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, roundKey(round.ID), data, ttl).Err()
}

func (r *RedisRoundRepository) Get(ctx context.Context, id string) (*PendingRound, error) {
	data, err := r.client.Get(ctx, roundKey(id)).Bytes()
	return decodeRound(data, err)
}

func (r *RedisRoundRepository) Take(ctx context.Context, id string) (*PendingRound, error) {
	data, err := r.client.GetDel(ctx, roundKey(id)).Bytes()
	return decodeRound(data, err)
}

func (r *RedisRoundRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func decodeRound(data []byte, err error) (*PendingRound, error) {
	if errors.Is(err, redis.Nil) {
		return nil, ErrRoundNotFound
	}
	if err != nil {
		return nil, err
	}

	var round PendingRound
	if err := json.Unmarshal(data, &round); err != nil {
		return nil, fmt.Errorf("decode round: %w", err)
	}
	return &round, nil
}
