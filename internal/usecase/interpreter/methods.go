package interpreter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"deciCalc/internal/domain"
)

// Process обрабатывает одну строку ввода и возвращает одну строку ответа.
// Служебные команды (help/?/history/clear) матчатся целиком без учёта регистра;
// всё остальное — арифметическая команда "<операция> <число1> <число2>".
// История меняется максимум один раз за вызов: append при успешном вычислении,
// полная очистка на clear, иначе ничего.
func (i *Interpreter) Process(line string) string {
	command := strings.ToLower(strings.TrimSpace(line))

	switch command {
	case "help", "?":
		return i.handleHelp()
	case "history":
		return i.handleHistory()
	case "clear":
		return i.handleClear()
	}

	parts := strings.Fields(command)
	if msg := validateParts(parts); msg != "" {
		return msg
	}

	operation, rawA, rawB := parts[0], parts[1], parts[2]

	a, errA := decimal.NewFromString(rawA)
	b, errB := decimal.NewFromString(rawB)
	if errA != nil || errB != nil {
		i.log.Debug("operand parse failed", "a", rawA, "b", rawB)
		return fmt.Sprintf("Error: '%s' and/or '%s' are not valid numbers. Please enter numeric values.", rawA, rawB)
	}

	calc, err := domain.NewCalculation(a, b, operation)
	if err != nil {
		if errors.Is(err, domain.ErrDivisionByZero) {
			i.log.Debug("division by zero", "a", rawA, "b", rawB)
			return "Error: Division by zero is not allowed."
		}
		// validateParts отсекает неизвестные операции раньше; ветка остаётся
		// для вызовов в обход обычного пути.
		return "Error: " + err.Error()
	}

	i.history.Add(calc)
	i.log.Debug("calculation recorded", "expr", calc.String(), "history_len", i.history.Len())
	return "Result: " + calc.String()
}

// validateParts проверяет форму арифметической команды до разбора чисел:
// ровно три токена, первый — известная операция. Возвращает текст ошибки
// или пустую строку, если форма корректна.
func validateParts(parts []string) string {
	if len(parts) != 3 {
		return "Error: Invalid format. Please use: <operation> <number1> <number2>\n" +
			"Example: add 5 3\n" +
			"Type 'help' for available commands."
	}
	for _, op := range domain.SupportedOperations() {
		if parts[0] == op {
			return ""
		}
	}
	return fmt.Sprintf("Error: Unknown operation '%s'.\nAvailable operations: %s\nType 'help' for more information.",
		parts[0], strings.Join(domain.SupportedOperations(), ", "))
}

func (i *Interpreter) handleHelp() string {
	return "=== Calculator Help ===\n" +
		"\n" +
		"Usage: <operation> <number1> <number2>\n" +
		"\n" +
		"Operations: " + strings.Join(domain.SupportedOperations(), ", ") + "\n" +
		"\n" +
		"Examples:\n" +
		"  add 5 3        => 5 + 3 = 8\n" +
		"  subtract 10 4  => 10 - 4 = 6\n" +
		"  multiply 6 7   => 6 * 7 = 42\n" +
		"  divide 20 4    => 20 / 4 = 5\n" +
		"\n" +
		"Special commands:\n" +
		"  help / ?   - Show this help message\n" +
		"  history    - Show calculation history\n" +
		"  clear      - Clear calculation history\n" +
		"  exit       - Exit the calculator"
}

func (i *Interpreter) handleHistory() string {
	calcs := i.history.GetAll()
	if len(calcs) == 0 {
		return "No calculations in history."
	}

	lines := make([]string, 0, len(calcs)+2)
	lines = append(lines, "=== Calculation History ===")
	for n, c := range calcs {
		lines = append(lines, fmt.Sprintf("  %d. %s", n+1, c))
	}
	lines = append(lines, fmt.Sprintf("\nTotal: %d calculation(s)", len(calcs)))
	return strings.Join(lines, "\n")
}

func (i *Interpreter) handleClear() string {
	i.history.Clear()
	return "History cleared."
}
