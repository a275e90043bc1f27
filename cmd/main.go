package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vendora/order-service/internal/app"
	"github.com/vendora/order-service/internal/config"
	"github.com/vendora/order-service/internal/handler"
	"github.com/vendora/order-service/internal/notifier"
	"github.com/vendora/order-service/internal/postgres"
	"github.com/vendora/order-service/internal/repo"
	"github.com/vendora/order-service/internal/service"
	"github.com/vendora/order-service/pkg/cache"
	"github.com/vendora/order-service/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	marketRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	kafkaNotifier := notifier.NewKafkaNotifier(logger, conf.Kafka)

	orderService := service.NewOrderService(
		logger, txManager, marketRepo, marketRepo, orderCache, kafkaNotifier, conf.Currency,
	)

	httpHandler := handler.NewHTTPHandler(logger, orderService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(orderCache)
	app.SetClosers(kafkaNotifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
