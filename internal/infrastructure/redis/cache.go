package redis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"deciCalc/internal/ports"
)

var _ ports.ICache = (*Cache)(nil)

// Cache реализует ports.ICache через Redis. Ключ — строка операции,
// значение — десятичный результат в строковом виде (точность не теряется).
type Cache struct {
	cli *Client
	log *slog.Logger
}

// NewCache возвращает кэш, реализующий ports.ICache.
func NewCache(cli *Client, log *slog.Logger) *Cache {
	return &Cache{cli: cli, log: log}
}

// Get возвращает результат по ключу. Если ключа нет — found == false.
func (c *Cache) Get(ctx context.Context, key string) (value decimal.Decimal, found bool, err error) {
	s, err := c.cli.Client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil { // ключа нет
			return decimal.Decimal{}, false, nil
		}
		c.log.Debug("cache get failed", "key", key, "error", err)
		return decimal.Decimal{}, false, err
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		c.log.Debug("cache parse failed", "key", key, "error", err)
		return decimal.Decimal{}, false, fmt.Errorf("cache parse value: %w", err)
	}
	return v, true, nil
}

// Set сохраняет результат по ключу. Ключи уникальны, дубликаты перезаписываются.
func (c *Cache) Set(ctx context.Context, key string, value decimal.Decimal) error {
	if err := c.cli.Client.Set(ctx, key, value.String(), 0).Err(); err != nil {
		c.log.Debug("cache set failed", "key", key, "error", err)
		return err
	}
	return nil
}
