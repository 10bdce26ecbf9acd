package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"
)

// ICache — контракт кэша результатов вычислений. Ключ — отображение операции
// ("1.5 + 2.5"), значение — точный десятичный результат.
// Ключи уникальны, дубликаты не хранятся.
type ICache interface {
	Get(ctx context.Context, key string) (value decimal.Decimal, found bool, err error)
	Set(ctx context.Context, key string, value decimal.Decimal) error
}
