package sessions

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/rueidis"
)

const keyPrefix = "thintimer:session:"

// RedisStore keeps session tokens in Redis with a TTL, so sessions expire
// server-side without any sweeper process.
type RedisStore struct {
	client rueidis.Client
	ttl    time.Duration
}

func NewRedisStore(client rueidis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisStore) Issue(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()

	cmd := r.client.B().Set().Key(keyPrefix + token).Value(userID).Ex(r.ttl).Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		return "", err
	}

	return token, nil
}

func (r *RedisStore) Resolve(ctx context.Context, token string) (string, error) {
	cmd := r.client.B().Get().Key(keyPrefix + token).Build()
	result := r.client.Do(ctx, cmd)

	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return "", ErrNoSession
		}
		return "", err
	}

	return result.ToString()
}

func (r *RedisStore) Revoke(ctx context.Context, token string) error {
	cmd := r.client.B().Del().Key(keyPrefix + token).Build()
	return r.client.Do(ctx, cmd).Error()
}
