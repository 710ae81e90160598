package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/clique360/backend/internal/api"
	"github.com/clique360/backend/internal/clients/gemini"
	"github.com/clique360/backend/internal/dispatch"
	"github.com/clique360/backend/internal/repository/memory"
	repository "github.com/clique360/backend/internal/repository/postgres"
	"github.com/clique360/backend/internal/service"
	"github.com/clique360/backend/pkg/broker"
	"github.com/clique360/backend/pkg/config"
	"github.com/clique360/backend/pkg/logger"
	"github.com/clique360/backend/pkg/postgres"
)

// ReadTimeout bounds request reads. Responses are unbounded: the chat
// endpoint holds its connection open while the model streams.
const ReadTimeout = 3 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	store, err := newStore(ctx, l, cfg.Store)
	panicOnErr("create store", err)

	var producer service.Producer = broker.Nop{}

	if len(cfg.Kafka.Brokers) > 0 {
		p := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.RecordEventsTopic)
		defer p.Close()

		producer = p
	}

	s := service.New(store, producer)

	geminiClient := gemini.NewClient(cfg.Gemini)
	chat := service.NewChat(geminiClient)

	handler := api.NewHandler(s, chat, dispatch.New(s))
	mw := api.NewMiddleware()

	router := api.NewRouter(handler, mw, cfg.HTTP.BasePath)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:     router,
		ReadTimeout: ReadTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port, "store", cfg.Store.Driver)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func newStore(ctx context.Context, l *slog.Logger, cfg config.Store) (service.Store, error) {
	switch cfg.Driver {
	case "memory":
		return memory.New(l, cfg.File), nil
	case "postgres":
		err := postgres.UpMigrations(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("up migrations: %w", err)
		}

		pool, err := postgres.Connect(ctx, cfg.DSN, cfg.MaxConns)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}

		return repository.New(pool), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
