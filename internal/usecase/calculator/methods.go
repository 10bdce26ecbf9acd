package calculator

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"deciCalc/internal/domain"
)

// Calculate — проверяет кэш; при промахе считает через доменную фабрику,
// сохраняет в БД и в кэш, публикует событие в брокер, возвращает результат.
// Ошибки фабрики (деление на ноль, неизвестная операция) отдаются как есть.
func (u *UseCase) Calculate(ctx context.Context, a, b decimal.Decimal, operation string) (*domain.Calculation, error) {
	key := cacheKey(a, b, operation)
	if cached, found, err := u.cache.Get(ctx, key); err == nil && found {
		return &domain.Calculation{
			OperandA:  a,
			OperandB:  b,
			Operation: operation,
			Result:    cached,
			Timestamp: time.Now(),
		}, nil
	}

	calc, err := domain.NewCalculation(a, b, operation)
	if err != nil {
		return nil, err
	}

	if err := u.repo.SaveCalculation(ctx, calc); err != nil {
		return nil, err
	}
	u.log.Info("calculation saved", "key", key, "result", calc.Result)

	// кэш — оптимизация: вычисление уже в БД, ошибка заполнения не фатальна
	if err := u.cache.Set(ctx, key, calc.Result); err != nil {
		u.log.Warn("cache set", "key", key, "error", err)
	}

	value, err := json.Marshal(calc)
	if err != nil {
		return nil, err
	}

	if err := u.broker.Send(ctx, []byte(key), value); err != nil {
		u.log.Warn("broker send", "key", key, "error", err)
	} else {
		u.log.Info("calculation published", "key", key, "result", calc.Result)
	}

	return &calc, nil
}

// History — история вычислений (обвязка над репозиторием).
func (u *UseCase) History(ctx context.Context) ([]domain.Calculation, error) {
	return u.repo.GetHistory(ctx)
}

// HandleCalculationEvent вызывается консьюмером при получении сообщения из топика (часть ICalculatorUseCase).
func (u *UseCase) HandleCalculationEvent(ctx context.Context, calc domain.Calculation) error {
	if err := u.analytics.WriteCalculation(ctx, calc); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("calculation stored to click", "expr", calc.String())

	return nil
}
