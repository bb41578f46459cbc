package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kindmeals/backend/internal/auth"
	"github.com/kindmeals/backend/internal/config"
	"github.com/kindmeals/backend/internal/db"
	"github.com/kindmeals/backend/internal/kafka"
	"github.com/kindmeals/backend/internal/logger"
	"github.com/kindmeals/backend/internal/repository/postgresql"
	"github.com/kindmeals/backend/internal/server"
	"github.com/kindmeals/backend/internal/storage"
	"github.com/kindmeals/backend/internal/sweeper"
	"github.com/kindmeals/backend/internal/upload"
)

func main() {
	cfg := config.Load()

	lg := logger.New()
	defer func() { _ = lg.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := db.Migrate(cfg.DSN(), cfg.MigrationsDir); err != nil {
		lg.Fatal("migrations failed", zap.Error(err))
	}

	database, err := db.Connect(ctx, cfg.DSN())
	if err != nil {
		lg.Fatal("database connect failed", zap.Error(err))
	}
	defer database.Close()

	adminRepo := postgresql.NewAdminRepo(database)
	store := storage.NewPostgresStorage(
		database,
		postgresql.NewLiveDonationRepo(database),
		postgresql.NewAcceptedDonationRepo(database),
		postgresql.NewExpiredDonationRepo(database),
		postgresql.NewFinalDonationRepo(database),
		postgresql.NewDonorRepo(database),
		postgresql.NewRecipientRepo(database),
		postgresql.NewVolunteerRepo(database),
		postgresql.NewNotificationRepo(database),
		adminRepo,
		postgresql.NewOutboxTaskRepo(),
		cfg.KafkaTopic,
		lg,
	)

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := store.CreateAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil && !errors.Is(err, storage.ErrAlreadyExists) {
			lg.Warn("bootstrap admin not created", zap.Error(err))
		}
	}

	uploads, err := upload.NewStore(cfg.UploadDir, cfg.MaxUploadSize)
	if err != nil {
		lg.Fatal("upload store init failed", zap.Error(err))
	}

	directory := auth.NewDirectory(store, 5*time.Minute)
	srv := server.New(store, auth.PassthroughVerifier{}, directory, uploads, lg)

	sweep := sweeper.New(store, sweeper.Config{
		Interval:     cfg.SweepInterval,
		StartupDelay: cfg.SweepStartupDelay,
	}, lg)

	producer := kafka.NewWriterProducer(cfg.KafkaBrokers)
	publisher := kafka.NewPublisher(database, postgresql.NewOutboxTaskRepo(), producer, kafka.PublisherConfig{
		PollInterval: cfg.OutboxPollInterval,
		BatchSize:    cfg.OutboxBatchSize,
		MaxAttempts:  cfg.OutboxMaxAttempts,
	}, lg)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gctx, cfg.Addr())
	})
	g.Go(func() error {
		sweep.Run(gctx)
		return nil
	})
	g.Go(func() error {
		publisher.Run(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		sweep.Shutdown()
		publisher.Shutdown()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		lg.Error("service exited with error", zap.Error(err))
		return
	}
	lg.Info("service stopped")
}
