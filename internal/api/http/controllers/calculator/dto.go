package calculator

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// CalculateRequest — запрос на вычисление (для POST /api/v1/calculate).
// Операнды принимаем как decimal: в JSON допустимы и числа, и строки
// ("0.1" надёжнее — не проходит через float на стороне клиента).
type CalculateRequest struct {
	OperandA  decimal.Decimal `json:"operand_a"`
	OperandB  decimal.Decimal `json:"operand_b"`
	Operation string          `json:"operation" binding:"required"`
}

// Validate проверяет, что операция задана (операнды валидирует доменная фабрика).
func (r *CalculateRequest) Validate() error {
	if r.Operation == "" {
		return errors.New("operation is required")
	}
	return nil
}

// CalculateResponse — ответ с результатом.
type CalculateResponse struct {
	Result  decimal.Decimal `json:"result"`
	Message string          `json:"message,omitempty"`
}

// HistoryItem — одна запись в истории (для GET /api/v1/history).
type HistoryItem struct {
	ID        int             `json:"id"`
	OperandA  decimal.Decimal `json:"operand_a"`
	OperandB  decimal.Decimal `json:"operand_b"`
	Operation string          `json:"operation"`
	Result    decimal.Decimal `json:"result"`
	Display   string          `json:"display"`
	Timestamp time.Time       `json:"timestamp"`
}

// HistoryResponse — ответ со списком вычислений.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}
