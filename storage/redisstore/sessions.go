// Package redisstore keeps API sessions in Redis so they survive restarts
// and can be shared between instances.
package redisstore

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/studyline/studyline/core"
	"github.com/studyline/studyline/core/session"
)

const keyPrefix = "session:"

type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ session.Store = (*SessionStore)(nil)

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = session.DefaultTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Open connects to Redis and verifies the connection.
func Open(conf *core.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Address,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, errors.Wrap(err, "pinging redis")
	}
	return client, nil
}

func (s *SessionStore) Create(ctx context.Context, teacherID int64) (string, error) {
	token := uuid.NewString()
	value := strconv.FormatInt(teacherID, 10)
	if err := s.client.Set(ctx, keyPrefix+token, value, s.ttl).Err(); err != nil {
		return "", errors.Wrap(err, "storing session")
	}
	return token, nil
}

func (s *SessionStore) Resolve(ctx context.Context, token string) (int64, error) {
	value, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, session.ErrNotFound
		}
		return 0, errors.Wrap(err, "resolving session")
	}
	teacherID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parsing session value")
	}
	return teacherID, nil
}

func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return errors.Wrap(err, "revoking session")
	}
	return nil
}
