package ports

//go:generate mockgen -source=broker.go -destination=../mocks/broker_mock.go -package=mocks

import "context"

// IProducer — контракт публикации события о вычислении в брокер (Kafka).
// Ключ — отрендеренное выражение ("1.5 + 2.5"), значение — JSON записи
// вычисления; топик задаётся при создании реализации (конфиг).
// Use case вызывает Send после сохранения; консьюмер живёт в инфраструктуре.
type IProducer interface {
	Send(ctx context.Context, key, value []byte) error
}
