package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"deciCalc/internal/domain"
)

// ICalculatorUseCase — контракт бизнес-логики сервисного режима калькулятора
// (расчёт, история из БД, обработка событий из Kafka).
type ICalculatorUseCase interface {
	Calculate(ctx context.Context, a, b decimal.Decimal, operation string) (*domain.Calculation, error)
	History(ctx context.Context) ([]domain.Calculation, error)
	HandleCalculationEvent(ctx context.Context, calc domain.Calculation) error
}
