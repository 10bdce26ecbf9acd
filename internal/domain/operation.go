package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownOperation возвращается, когда операция не поддерживается.
var ErrUnknownOperation = errors.New("unknown operation")

// ErrDivisionByZero возвращается при делении на ноль.
var ErrDivisionByZero = errors.New("division by zero")

// Имена арифметических операций (закрытый набор).
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpDivide   = "divide"
)

// SupportedOperations возвращает имена операций в стабильном порядке (для валидации и help).
func SupportedOperations() []string {
	return []string{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// Symbol возвращает символ операции для отображения: "+", "-", "*", "/".
// Для неизвестного имени возвращает само имя (защитный фоллбэк, см. Calculation.String).
func Symbol(name string) string {
	switch name {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return name
	}
}

// Apply выполняет операцию name над a и b в точной десятичной арифметике.
// Сложение, вычитание и умножение всегда точные; деление округляется до
// decimal.DivisionPrecision (16) знаков после запятой, half away from zero —
// политика фиксированная, 1/3 даёт 0.3333333333333333.
// Деление на ноль — ErrDivisionByZero, неизвестное имя — ErrUnknownOperation.
func Apply(name string, a, b decimal.Decimal) (decimal.Decimal, error) {
	switch name {
	case OpAdd:
		return a.Add(b), nil
	case OpSubtract:
		return a.Sub(b), nil
	case OpMultiply:
		return a.Mul(b), nil
	case OpDivide:
		if b.IsZero() {
			return decimal.Decimal{}, ErrDivisionByZero
		}
		return a.Div(b), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w '%s'. Supported operations: %s",
			ErrUnknownOperation, name, strings.Join(SupportedOperations(), ", "))
	}
}
