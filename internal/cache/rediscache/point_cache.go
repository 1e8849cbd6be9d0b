// Package rediscache кэш текущих балансов в redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fsdevblog/groph-points/internal/domain"
)

const keyPrefix = "points:user:"

type cachedPoint struct {
	ID           int64 `json:"id"`
	Point        int64 `json:"point"`
	UpdateMillis int64 `json:"updateMillis"`
}

type PointCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func New(rdb redis.Cmdable, ttl time.Duration) *PointCache {
	return &PointCache{rdb: rdb, ttl: ttl}
}

// Connect создает клиента redis и проверяет соединение.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}
	return rdb, nil
}

func (c *PointCache) Get(ctx context.Context, userID int64) (*domain.UserPoint, bool, error) {
	val, err := c.rdb.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("[cache/get %d] %w", userID, err)
	}
	point, decodeErr := decode(val)
	if decodeErr != nil {
		return nil, false, fmt.Errorf("[cache/get %d] %w", userID, decodeErr)
	}
	return point, true, nil
}

func (c *PointCache) Set(ctx context.Context, point *domain.UserPoint) error {
	b, err := encode(point)
	if err != nil {
		return fmt.Errorf("[cache/set %d] %w", point.ID, err)
	}
	if setErr := c.rdb.Set(ctx, key(point.ID), b, c.ttl).Err(); setErr != nil {
		return fmt.Errorf("[cache/set %d] %w", point.ID, setErr)
	}
	return nil
}

// Add записывает значение, только если ключа нет. Так чтение, начатое до изменения баланса,
// не перетрет более свежее значение.
func (c *PointCache) Add(ctx context.Context, point *domain.UserPoint) error {
	b, err := encode(point)
	if err != nil {
		return fmt.Errorf("[cache/add %d] %w", point.ID, err)
	}
	if addErr := c.rdb.SetNX(ctx, key(point.ID), b, c.ttl).Err(); addErr != nil {
		return fmt.Errorf("[cache/add %d] %w", point.ID, addErr)
	}
	return nil
}

func (c *PointCache) Delete(ctx context.Context, userID int64) error {
	if err := c.rdb.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("[cache/delete %d] %w", userID, err)
	}
	return nil
}

func key(userID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, userID)
}

func encode(point *domain.UserPoint) ([]byte, error) {
	return json.Marshal(cachedPoint{ //nolint:wrapcheck
		ID:           point.ID,
		Point:        point.Point,
		UpdateMillis: point.UpdateMillis,
	})
}

func decode(b []byte) (*domain.UserPoint, error) {
	var c cachedPoint
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &domain.UserPoint{ID: c.ID, Point: c.Point, UpdateMillis: c.UpdateMillis}, nil
}
