package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sangkips/electrostore-api/internal/config"
	"github.com/sangkips/electrostore-api/internal/domain/entity"
)

const (
	productKeyPrefix  = "product:"
	defaultProductTTL = 5 * time.Minute
	pingTimeout       = 5 * time.Second
)

// ProductCache caches catalog reads by product id
type ProductCache interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, bool, error)
	Set(ctx context.Context, product *entity.Product) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

type redisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopProductCache struct{}

// NewProductCache returns a Redis-backed cache, or a no-op cache when Redis
// is disabled
func NewProductCache(cfg config.RedisConfig) (ProductCache, error) {
	if !cfg.Enabled {
		return NewNoopProductCache(), nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return newRedisProductCache(client, cfg.TTL), nil
}

func newRedisProductCache(client *redis.Client, ttl time.Duration) *redisProductCache {
	if ttl <= 0 {
		ttl = defaultProductTTL
	}
	return &redisProductCache{client: client, ttl: ttl}
}

// NewNoopProductCache returns a cache that never hits
func NewNoopProductCache() ProductCache {
	return &noopProductCache{}
}

func (c *redisProductCache) Get(ctx context.Context, id uuid.UUID) (*entity.Product, bool, error) {
	payload, err := c.client.Get(ctx, productKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var product entity.Product
	if err := json.Unmarshal(payload, &product); err != nil {
		return nil, false, fmt.Errorf("decode product cache: %w", err)
	}

	return &product, true, nil
}

func (c *redisProductCache) Set(ctx context.Context, product *entity.Product) error {
	payload, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("encode product cache: %w", err)
	}

	if err := c.client.Set(ctx, productKey(product.ID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisProductCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, productKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (n *noopProductCache) Get(ctx context.Context, id uuid.UUID) (*entity.Product, bool, error) {
	return nil, false, nil
}

func (n *noopProductCache) Set(ctx context.Context, product *entity.Product) error {
	return nil
}

func (n *noopProductCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return nil
}

func productKey(id uuid.UUID) string {
	return productKeyPrefix + id.String()
}

func buildRedisOptions(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL != "" {
		opt, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host := cfg.Host
	if host == "" {
		host = "127.0.0.1"
	}

	port := cfg.Port
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}, nil
}
