package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"deciCalc/internal/pkg/logger"
	"deciCalc/internal/usecase/interpreter"
)

const welcome = `================================
   Welcome to the Calculator!
================================
Type 'help' for available commands.
Type 'exit' to quit.`

// Драйвер REPL: читает строки, печатает ответы интерпретатора.
// Пустые строки пропускает, exit/EOF/Ctrl+C завершают сессию.
func main() {
	log := logger.NewFileOnly("info")
	interp := interpreter.New(log)

	fmt.Println(welcome)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n>>> ")
		if !scanner.Scan() {
			fmt.Println("\nGoodbye!")
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			fmt.Println("Goodbye!")
			break
		}
		fmt.Println(interp.Process(line))
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "Error reading input:", err)
	}
}
