package session

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the credential in Redis under a configurable key
// prefix. Cross-process mutation of these keys is not observed; each Load
// re-reads the store, so staleness is bounded by one call.
type RedisStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisStore binds a Store to the given Redis client.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "billing-admin:session:"
	}
	return &RedisStore{client: client, prefix: prefix, now: time.Now}
}

func (s *RedisStore) key(name string) string {
	return s.prefix + name
}

// Save writes the token and its expiry as separate entries. The entries also
// carry a Redis TTL slightly past the credential expiry so abandoned
// sessions age out of the store.
func (s *RedisStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	expiresAt := s.now().Add(ttl)
	retention := ttl + time.Hour

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(KeyAuthToken), token, retention)
	pipe.Set(ctx, s.key(KeyTokenExpiry), strconv.FormatInt(expiresAt.UnixMilli(), 10), retention)
	_, err := pipe.Exec(ctx)
	return err
}

// Load returns the stored credential. A missing token, missing expiry entry
// or unparseable expiry all read as "no credential".
func (s *RedisStore) Load(ctx context.Context) (*Credential, error) {
	token, err := s.client.Get(ctx, s.key(KeyAuthToken)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Get(ctx, s.key(KeyTokenExpiry)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, nil
	}
	return &Credential{Token: token, ExpiresAt: time.UnixMilli(millis)}, nil
}

// Clear deletes all session entries together. Idempotent.
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx,
		s.key(KeyAuthToken),
		s.key(KeyTokenExpiry),
		s.key(KeyUserData),
	).Err()
}

// SaveProfile stores the signed-in operator's display record.
func (s *RedisStore) SaveProfile(ctx context.Context, profile []byte) error {
	return s.client.Set(ctx, s.key(KeyUserData), profile, 0).Err()
}

// LoadProfile returns the stored display record, or nil when absent.
func (s *RedisStore) LoadProfile(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(KeyUserData)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
