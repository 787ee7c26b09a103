package sessions

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/blog-platform/internal/logger"
)

// RedisStore keeps sessions in Redis so they survive restarts and can be
// shared between instances. A zero expiration keeps sessions forever.
type RedisStore struct {
	client *redis.Client
	exp    time.Duration
}

func NewRedisStore(client *redis.Client, expiration time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (s *RedisStore) Begin(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	key := sessionKey(token)

	err := s.client.Set(ctx, key, strconv.FormatInt(userID, 10), s.exp).Err()

	logger.Log.Infow("session begin",
		"key", key,
		"error", err,
	)

	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (int64, error) {
	key := sessionKey(token)

	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("session get",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (s *RedisStore) End(ctx context.Context, token string) error {
	key := sessionKey(token)
	err := s.client.Del(ctx, key).Err()

	logger.Log.Infow("session end",
		"key", key,
		"error", err,
	)

	return err
}
