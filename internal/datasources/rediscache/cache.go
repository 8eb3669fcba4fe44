// Package rediscache keeps rendered article lists in Redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/balancednews/news-feed/internal/datasources"
	"github.com/balancednews/news-feed/internal/domain"
	"github.com/redis/go-redis/v9"
)

var _ datasources.ArticleListCache = (*Cache)(nil)

const generationKey = "news:lists:generation"

// Cache stores each list under the current generation. Bumping the generation orphans every
// stored list, which then expires on its TTL.
type Cache struct {
	rdb *redis.Client
}

// NewClient creates a Redis client and checks the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return rdb, nil
}

func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

func listKey(generation int64, key string) string {
	return fmt.Sprintf("news:lists:%d:%s", generation, key)
}

func (c *Cache) generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading list generation: %w", err)
	}
	return gen, nil
}

func (c *Cache) GetArticleList(ctx context.Context, key string) ([]domain.Article, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, false, err
	}

	b, err := c.rdb.Get(ctx, listKey(gen, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading article list: %w", err)
	}

	var articles []domain.Article
	if err := json.Unmarshal(b, &articles); err != nil {
		return nil, false, fmt.Errorf("decoding article list: %w", err)
	}

	return articles, true, nil
}

func (c *Cache) SetArticleList(ctx context.Context, key string, articles []domain.Article, ttl time.Duration) error {
	gen, err := c.generation(ctx)
	if err != nil {
		return err
	}

	b, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("encoding article list: %w", err)
	}

	if err := c.rdb.Set(ctx, listKey(gen, key), b, ttl).Err(); err != nil {
		return fmt.Errorf("writing article list: %w", err)
	}

	return nil
}

func (c *Cache) InvalidateArticleLists(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("bumping list generation: %w", err)
	}
	return nil
}
