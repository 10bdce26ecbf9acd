package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"deciCalc/internal/domain"
)

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name      string
		a         string
		b         string
		operation string
		want      string
	}{
		{
			name:      "сложение целых",
			a:         "10",
			b:         "5",
			operation: domain.OpAdd,
			want:      "10 + 5",
		},
		{
			name:      "вычитание целых",
			a:         "100",
			b:         "50",
			operation: domain.OpSubtract,
			want:      "100 - 50",
		},
		{
			name:      "умножение с дробными",
			a:         "3.14",
			b:         "2",
			operation: domain.OpMultiply,
			want:      "3.14 * 2",
		},
		{
			name:      "деление с дробным результатом",
			a:         "1",
			b:         "3",
			operation: domain.OpDivide,
			want:      "1 / 3",
		},
		{
			name:      "отрицательные числа",
			a:         "-10",
			b:         "-5",
			operation: domain.OpAdd,
			want:      "-10 + -5",
		},
		{
			name:      "ноль",
			a:         "0",
			b:         "0",
			operation: domain.OpAdd,
			want:      "0 + 0",
		},
		{
			name:      "очень маленькое дробное",
			a:         "0.000001",
			b:         "0.000002",
			operation: domain.OpAdd,
			want:      "0.000001 + 0.000002",
		},
		{
			name:      "неизвестная операция попадает в ключ как есть",
			a:         "1",
			b:         "2",
			operation: "modulo",
			want:      "1 modulo 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := decimal.NewFromString(tt.a)
			if err != nil {
				t.Fatalf("parse a: %v", err)
			}
			b, err := decimal.NewFromString(tt.b)
			if err != nil {
				t.Fatalf("parse b: %v", err)
			}
			got := cacheKey(a, b, tt.operation)
			if got != tt.want {
				t.Errorf("cacheKey(%s, %s, %q) = %q, want %q",
					tt.a, tt.b, tt.operation, got, tt.want)
			}
		})
	}
}
