package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dec разбирает строку в decimal, падает при ошибке.
func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		a, b      string
		want      string
	}{
		{name: "сложение целых", operation: OpAdd, a: "2", b: "3", want: "5"},
		{name: "сложение дробных без ошибки float", operation: OpAdd, a: "0.1", b: "0.2", want: "0.3"},
		{name: "сложение с дробным результатом", operation: OpAdd, a: "1.5", b: "2.5", want: "4"},
		{name: "вычитание", operation: OpSubtract, a: "10", b: "4", want: "6"},
		{name: "вычитание дробных", operation: OpSubtract, a: "0.3", b: "0.1", want: "0.2"},
		{name: "умножение", operation: OpMultiply, a: "6", b: "7", want: "42"},
		{name: "умножение дробных", operation: OpMultiply, a: "0.1", b: "0.2", want: "0.02"},
		{name: "деление нацело", operation: OpDivide, a: "20", b: "4", want: "5"},
		{name: "деление с бесконечной дробью", operation: OpDivide, a: "1", b: "3", want: "0.3333333333333333"},
		{name: "деление с округлением последней цифры", operation: OpDivide, a: "2", b: "3", want: "0.6666666666666667"},
		{name: "отрицательные числа", operation: OpAdd, a: "-10", b: "-5", want: "-15"},
		{name: "ноль как первый операнд", operation: OpDivide, a: "0", b: "7", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.operation, dec(t, tt.a), dec(t, tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

// Масштаб результата — как в десятичной арифметике: у суммы и разности максимум
// знаков операндов, у произведения их сумма. На него опирается отображение записи.
func TestApply_PreservesScale(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		a, b      string
		wantExp   int32
	}{
		{name: "сумма 1.5 и 2.5 остаётся с одним знаком", operation: OpAdd, a: "1.5", b: "2.5", wantExp: -1},
		{name: "разность берёт больший масштаб", operation: OpSubtract, a: "2.50", b: "1.5", wantExp: -2},
		{name: "произведение складывает масштабы", operation: OpMultiply, a: "1.5", b: "2", wantExp: -1},
		{name: "целые остаются целыми", operation: OpAdd, a: "2", b: "3", wantExp: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.operation, dec(t, tt.a), dec(t, tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.wantExp, got.Exponent())
		})
	}
}

func TestApply_DivisionByZero(t *testing.T) {
	_, err := Apply(OpDivide, dec(t, "10"), dec(t, "0"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestApply_UnknownOperation(t *testing.T) {
	_, err := Apply("modulo", dec(t, "5"), dec(t, "3"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Contains(t, err.Error(), "modulo")
	assert.Contains(t, err.Error(), "add, subtract, multiply, divide")
}

func TestSupportedOperations(t *testing.T) {
	// порядок стабильный: он попадает в help и сообщения об ошибках
	assert.Equal(t, []string{"add", "subtract", "multiply", "divide"}, SupportedOperations())
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "+", Symbol(OpAdd))
	assert.Equal(t, "-", Symbol(OpSubtract))
	assert.Equal(t, "*", Symbol(OpMultiply))
	assert.Equal(t, "/", Symbol(OpDivide))
	// фоллбэк: неизвестное имя отображается как есть
	assert.Equal(t, "modulo", Symbol("modulo"))
}
