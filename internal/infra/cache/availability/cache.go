package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
)

const (
	keyPrefix   = "availability"
	overviewKey = keyPrefix + ":overview"
	scanCount   = 100
)

// GridKey ключ сетки доступности плавсредства на дату
func GridKey(date time.Time, watercraftTypeID int64) string {
	return fmt.Sprintf("%s:%s:%d", keyPrefix, date.Format(domain.DateFormat), watercraftTypeID)
}

// OverviewKey ключ сводки по всем датам
func OverviewKey() string {
	return overviewKey
}

// Cache кэш ответов доступности в Redis
// Значения хранятся как готовый JSON, инвалидация по дате
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кэш поверх клиента go-redis
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает значение и признак попадания
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get %s: %v", ErrCacheUnavailable, key, err)
	}
	return data, true, nil
}

// Set сохраняет значение с TTL
func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrCacheUnavailable, key, err)
	}
	return nil
}

// InvalidateDate удаляет сетки на дату и сводку
func (c *Cache) InvalidateDate(ctx context.Context, date time.Time) error {
	pattern := fmt.Sprintf("%s:%s:*", keyPrefix, date.Format(domain.DateFormat))
	keys := []string{overviewKey}

	iter := c.client.Scan(ctx, 0, pattern, scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: scan %s: %v", ErrCacheUnavailable, pattern, err)
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// Noop кэш-заглушка, когда Redis выключен
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, string, []byte) error {
	return nil
}

func (Noop) InvalidateDate(context.Context, time.Time) error {
	return nil
}
