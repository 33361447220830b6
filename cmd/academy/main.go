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

	"github.com/eduboard/academy/internal/api"
	"github.com/eduboard/academy/internal/broker"
	"github.com/eduboard/academy/internal/notifier"
	"github.com/eduboard/academy/internal/repository"
	"github.com/eduboard/academy/internal/service"
	"github.com/eduboard/academy/pkg/config"
	"github.com/eduboard/academy/pkg/job"
	"github.com/eduboard/academy/pkg/logger"
	"github.com/eduboard/academy/pkg/postgres"
)

const (
	ReadTimeout  = 5 * time.Second
	WriteTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	var mailer service.Notifier = notifier.LogOnly{}
	if cfg.Mailer.Enabled {
		mailer = notifier.NewMailer(cfg.Mailer)
	}

	var producer service.Producer = broker.Noop{}

	if cfg.Kafka.Enabled {
		kafkaProducer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.EventsTopic)
		defer kafkaProducer.Close()

		producer = kafkaProducer
	}

	s := service.New(repo, mailer, producer, cfg.LoginURL)

	{
		job.NewService().
			RegisterJob("mark overdue invoices", time.Hour, s.MarkOverdueInvoices).
			Start(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.JWT.Secret, cfg.JWT.CookieName)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
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

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

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

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
