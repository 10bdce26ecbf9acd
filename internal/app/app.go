package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "deciCalc/internal/api/http"
	"deciCalc/internal/api/http/controllers/calculator"
	"deciCalc/internal/api/http/controllers/system"
	"deciCalc/internal/infrastructure/click"
	"deciCalc/internal/infrastructure/kafka"
	"deciCalc/internal/infrastructure/mongo"
	"deciCalc/internal/infrastructure/pg"
	"deciCalc/internal/infrastructure/redis"
	"deciCalc/internal/pkg/logger"
	"deciCalc/internal/ports"
	calcUsecase "deciCalc/internal/usecase/calculator"
)

// App — приложение сервисного режима, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (инфраструктура подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключается к репозиторию, Redis, Kafka и ClickHouse, инициализирует
// зависимости, запускает консьюмера и HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	log := logger.NewWithLevel(a.cfg.LogLevel)
	slog.SetDefault(log)

	repo, closeRepo, err := a.repository(log)
	if err != nil {
		return err
	}
	defer closeRepo()

	rdb, err := redis.New(&a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer rdb.Close()
	cache := redis.NewCache(rdb, log)

	ch, err := click.New(&a.cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("clickhouse: %w", err)
	}
	defer ch.Close()
	analytics := click.NewCalculationWriter(ch)
	if err := analytics.EnsureTable(context.Background()); err != nil {
		return fmt.Errorf("clickhouse table: %w", err)
	}

	producer := kafka.NewProducer(&a.cfg.Kafka)
	defer producer.Close()

	uc := calcUsecase.New(repo, cache, producer, analytics, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("kafka consumer failed", "error", err)
		}
	}()

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(repo, log),
		calculator.New(uc, log))

	httpAddr := a.cfg.Server.Host + ":" + a.cfg.Server.Port
	slog.Info("application started", "http", httpAddr, "repo", a.cfg.RepoDriver)

	return srv.Start(ctx)
}

// repository подключает репозиторий истории по конфигу: pg (с миграцией) или mongo.
func (a *App) repository(log *slog.Logger) (ports.ICalculationRepository, func(), error) {
	switch a.cfg.RepoDriver {
	case "mongo":
		cli, err := mongo.New(context.Background(), &a.cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		closeFn := func() { _ = cli.Disconnect(context.Background()) }
		return mongo.NewCalculationRepo(cli, log), closeFn, nil
	case "pg", "":
		db, err := pg.New(&a.cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		if err := pg.Migrate(context.Background(), db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewCalculationRepo(db, log), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown repo driver %q", a.cfg.RepoDriver)
	}
}
