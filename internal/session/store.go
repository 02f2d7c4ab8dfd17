package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/career-coach/internal/types"
)

// Store is the read/write contract for session persistence. The schema behind
// a driver is not this package's concern; TTL expiry is the driver's.
type Store interface {
	// Create stores a new session with Version set to 1.
	// Returns ErrAlreadyExists if the id is taken.
	Create(ctx context.Context, sess *types.Session) error

	// Get retrieves a session by id. Returns ErrNotFound for unknown ids.
	Get(ctx context.Context, id string) (*types.Session, error)

	// Update persists a session with optimistic locking: the stored Version
	// must match, and is incremented on success.
	// Returns ErrNotFound or ErrVersionConflict.
	Update(ctx context.Context, sess *types.Session) error

	// Delete removes a session by id. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases driver resources.
	Close() error
}

// StoreType selects a session store driver.
type StoreType string

const (
	StoreTypeMemory StoreType = "memory"
	StoreTypeRedis  StoreType = "redis"
)

// StoreOption configures a session store.
type StoreOption func(*storeConfig)

type storeConfig struct {
	redisClient *redis.Client
	redisTTL    time.Duration
}

// WithRedisClient sets the Redis client for the Redis driver.
func WithRedisClient(client *redis.Client) StoreOption {
	return func(c *storeConfig) {
		c.redisClient = client
	}
}

// WithRedisTTL sets the session TTL for the Redis driver.
func WithRedisTTL(ttl time.Duration) StoreOption {
	return func(c *storeConfig) {
		c.redisTTL = ttl
	}
}

// NewStore creates a session store for the given driver type. The Redis
// driver requires WithRedisClient.
func NewStore(storeType StoreType, opts ...StoreOption) (Store, error) {
	cfg := &storeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch storeType {
	case StoreTypeMemory:
		return newMemoryStore(), nil
	case StoreTypeRedis:
		if cfg.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		ttl := cfg.redisTTL
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		return &redisStore{client: cfg.redisClient, ttl: ttl}, nil
	default:
		return nil, ErrInvalidStoreType
	}
}
