package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"deciCalc/internal/api/http"
	"deciCalc/internal/infrastructure/click"
	"deciCalc/internal/infrastructure/kafka"
	"deciCalc/internal/infrastructure/mongo"
	"deciCalc/internal/infrastructure/pg"
	"deciCalc/internal/infrastructure/redis"
)

const AppName = "CALCULATOR"

// Config — конфиг приложения. Заполняется через envconfig с префиксом CALCULATOR.
// RepoDriver выбирает репозиторий истории: pg (по умолчанию) или mongo.
type Config struct {
	LogLevel   string            `envconfig:"LOG_LEVEL" default:"info"`
	RepoDriver string            `envconfig:"REPO_DRIVER" default:"pg"`
	Server     http.ServerConfig `envconfig:"SERVER"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
