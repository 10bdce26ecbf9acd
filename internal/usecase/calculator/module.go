package calculator

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"deciCalc/internal/domain"
	"deciCalc/internal/ports"
)

// cacheKey формирует читаемый ключ операции для кэша, например "1.5 + 2.5".
func cacheKey(a, b decimal.Decimal, operation string) string {
	return a.String() + " " + domain.Symbol(operation) + " " + b.String()
}

// UseCase — бизнес-логика сервисного режима калькулятора.
type UseCase struct {
	repo      ports.ICalculationRepository
	cache     ports.ICache
	broker    ports.IProducer
	analytics ports.ICalculationAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс калькулятора.
func New(repo ports.ICalculationRepository, cache ports.ICache, broker ports.IProducer, analytics ports.ICalculationAnalytics, log *slog.Logger) *UseCase {
	return &UseCase{repo: repo, cache: cache, broker: broker, analytics: analytics, log: log}
}
