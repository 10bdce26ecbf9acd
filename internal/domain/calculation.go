package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Calculation — неизменяемая запись об одном вычислении: операнды, имя операции
// и результат, посчитанный в момент создания. ID заполняется БД; в REPL остаётся 0.
type Calculation struct {
	ID        int
	OperandA  decimal.Decimal
	OperandB  decimal.Decimal
	Operation string
	Result    decimal.Decimal
	Timestamp time.Time
}

// NewCalculation создаёт запись: проверяет имя операции и сразу считает результат.
// При ошибке (неизвестная операция, деление на ноль) запись не создаётся.
func NewCalculation(a, b decimal.Decimal, operation string) (Calculation, error) {
	result, err := Apply(operation, a, b)
	if err != nil {
		return Calculation{}, err
	}
	return Calculation{
		OperandA:  a,
		OperandB:  b,
		Operation: operation,
		Result:    result,
		Timestamp: time.Now(),
	}, nil
}

// displayString возвращает значение с его хранимым масштабом: сумма 1.5 и 2.5
// печатается как "4.0", а не как каноническое "4". Масштаб несёт сам decimal:
// у суммы и разности — максимум знаков операндов, у произведения — их сумма.
func displayString(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// String возвращает запись в виде "1.5 + 2.5 = 4.0".
func (c Calculation) String() string {
	result := displayString(c.Result)
	if c.Operation == OpDivide {
		// частное уже округлено политикой деления, хвостовые нули не нужны
		result = c.Result.String()
	}
	return fmt.Sprintf("%s %s %s = %s",
		displayString(c.OperandA), Symbol(c.Operation), displayString(c.OperandB), result)
}
