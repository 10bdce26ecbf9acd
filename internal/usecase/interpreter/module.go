package interpreter

import (
	"log/slog"

	"deciCalc/internal/domain"
)

// Interpreter — ядро REPL-калькулятора: разбирает строку ввода, выполняет
// арифметическую или служебную команду и возвращает одну строку ответа.
// Состояние сессии — история вычислений; один интерпретатор на одну сессию,
// конкурентного доступа нет.
type Interpreter struct {
	history *domain.History
	log     *slog.Logger
}

// New создаёт интерпретатор с пустой историей.
func New(log *slog.Logger) *Interpreter {
	if log == nil {
		log = slog.Default()
	}
	return &Interpreter{history: domain.NewHistory(), log: log}
}

// History возвращает историю сессии (для драйвера и тестов).
func (i *Interpreter) History() *domain.History {
	return i.history
}
