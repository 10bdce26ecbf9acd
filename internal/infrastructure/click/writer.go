package click

import (
	"context"
	"fmt"

	"deciCalc/internal/domain"
)

const calculationsAnalyticsFull = "default.calculations_analytics"

// CalculationWriter записывает вычисления в ClickHouse в формате, удобном для
// аналитики (GROUP BY operation, по времени и т.д.). Числа кладём как Float64
// для агрегаций — точные строковые значения остаются в основном репозитории.
type CalculationWriter struct {
	db *Client
}

// NewCalculationWriter создаёт писатель вычислений для аналитики.
func NewCalculationWriter(db *Client) *CalculationWriter {
	return &CalculationWriter{db: db}
}

// EnsureTable создаёт таблицу вычислений для аналитики в default, если её ещё нет. Вызови один раз при старте приложения.
func (w *CalculationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			operand_a Float64,
			operand_b Float64,
			operation String,
			result Float64,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, operation)
		PARTITION BY toYYYYMM(created_at)`,
		calculationsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteCalculation реализует ports.ICalculationAnalytics: пишет одно вычисление в ClickHouse.
func (w *CalculationWriter) WriteCalculation(ctx context.Context, calc domain.Calculation) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (operand_a, operand_b, operation, result, created_at) VALUES (?, ?, ?, ?, ?)",
		calculationsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		calc.OperandA.InexactFloat64(), calc.OperandB.InexactFloat64(),
		calc.Operation, calc.Result.InexactFloat64(), calc.Timestamp)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}
