package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/career-coach/internal/types"
)

const redisKeyPrefix = "coach:session:"

// redisStore persists sessions in Redis with a sliding TTL. External TTL
// expiry is the deployment's session-destruction mechanism.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func (s *redisStore) Create(ctx context.Context, sess *types.Session) error {
	now := time.Now()
	sess.CreatedAt = now
	sess.UpdatedAt = now
	sess.Version = 1

	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	ok, err := s.client.SetNX(ctx, redisKeyPrefix+sess.ID, raw, s.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyExists
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, id string) (*types.Session, error) {
	val, err := s.client.Get(ctx, redisKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess types.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, err
	}

	// Sliding expiry: reads keep active sessions alive.
	_ = s.client.Expire(ctx, redisKeyPrefix+id, s.ttl).Err()

	return &sess, nil
}

func (s *redisStore) Update(ctx context.Context, sess *types.Session) error {
	key := redisKeyPrefix + sess.ID

	return s.client.Watch(ctx, func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var stored types.Session
		if err := json.Unmarshal([]byte(val), &stored); err != nil {
			return err
		}
		if stored.Version != sess.Version {
			return ErrVersionConflict
		}

		sess.Version++
		sess.UpdatedAt = time.Now()

		raw, err := json.Marshal(sess)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, s.ttl)
			return nil
		})
		return err
	}, key)
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, redisKeyPrefix+id).Err()
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
