package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pneumatic/guestbook/internal/api"
	"github.com/pneumatic/guestbook/internal/core/ports"
	"github.com/pneumatic/guestbook/internal/core/service"
	"github.com/pneumatic/guestbook/internal/infrastructure/config"
	"github.com/pneumatic/guestbook/internal/infrastructure/db/redis"
	"github.com/pneumatic/guestbook/internal/infrastructure/db/sqlite"
	"github.com/pneumatic/guestbook/internal/infrastructure/mail"
	"github.com/pneumatic/guestbook/internal/infrastructure/queue"
	"github.com/pneumatic/guestbook/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Env: cfg.Env})

	db, err := sqlite.Connect(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	repo := sqlite.NewUserRepository(db)

	var rdb *goredis.Client
	var guard queue.SendGuard
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		guard = redis.NewNotifyGuard(rdb)
	}

	var notifications ports.NotificationQueue
	if cfg.Mail.Enabled() {
		notifier, err := mail.NewSMTPNotifier(cfg.Mail, log)
		if err != nil {
			log.Fatal().Err(err).Msg("build mail client")
		}
		dispatcher := queue.NewDispatcher(cfg.Queue.Workers, cfg.Queue.Buffer, notifier, guard, log)
		dispatcher.Start(ctx)
		notifications = dispatcher
		log.Info().Str("admin", cfg.Mail.Admin).Msg("new user notifications enabled")
	} else {
		log.Info().Msg("mail relay or admin recipient not configured, notifications disabled")
	}

	registrations := service.NewRegistrationService(repo, notifications)

	e, err := api.NewRouter(cfg, db, rdb, registrations, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build router")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
