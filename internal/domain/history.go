package domain

// History — история вычислений одной сессии REPL. Создаётся пустой при старте
// сессии, растёт только добавлением в конец, чистится только целиком.
type History struct {
	items []Calculation
}

// NewHistory создаёт пустую историю.
func NewHistory() *History {
	return &History{}
}

// Add добавляет запись в конец истории.
func (h *History) Add(c Calculation) {
	h.items = append(h.items, c)
}

// GetAll возвращает снимок всех записей в порядке добавления.
// Снимок независимый: последующие Add/Clear на него не влияют.
func (h *History) GetAll() []Calculation {
	out := make([]Calculation, len(h.items))
	copy(out, h.items)
	return out
}

// Latest возвращает последнюю запись; ok == false, если история пуста.
func (h *History) Latest() (Calculation, bool) {
	if len(h.items) == 0 {
		return Calculation{}, false
	}
	return h.items[len(h.items)-1], true
}

// Clear очищает историю.
func (h *History) Clear() {
	h.items = nil
}

// Len возвращает количество записей.
func (h *History) Len() int {
	return len(h.items)
}
