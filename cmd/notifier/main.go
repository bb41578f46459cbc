package main

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/kindmeals/backend/internal/config"
	"github.com/kindmeals/backend/internal/logger"
	"github.com/kindmeals/backend/internal/repository"
)

// The notifier tails the donation lifecycle topic. It is the attachment
// point for push delivery (FCM, email); for now it logs each event.
func main() {
	cfg := config.Load()

	lg := logger.New()
	defer func() { _ = lg.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.KafkaBrokers,
		GroupID:        cfg.KafkaGroupID,
		Topic:          cfg.KafkaTopic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := reader.Close(); err != nil {
			lg.Error("close kafka reader", zap.Error(err))
		}
	}()

	lg.Info("notifier consuming",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.KafkaTopic),
		zap.String("group", cfg.KafkaGroupID))

	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				lg.Info("notifier stopping")
				return
			}
			lg.Error("read message", zap.Error(err))
			time.Sleep(5 * time.Second)
			continue
		}

		var event repository.DonationEventPayload
		if err := json.Unmarshal(m.Value, &event); err != nil {
			lg.Warn("skipping malformed event",
				zap.String("key", string(m.Key)),
				zap.Error(err))
			continue
		}

		lg.Info("donation event",
			zap.String("event", event.Event),
			zap.String("donation_id", event.DonationID),
			zap.String("donor_id", event.DonorID),
			zap.String("recipient_id", event.RecipientID),
			zap.String("volunteer_id", event.VolunteerID),
			zap.String("food_name", event.FoodName),
			zap.Time("at", event.Timestamp),
			zap.Int64("offset", m.Offset))
	}
}
