package venue

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/venue-microservice/internal/domain"
	"github.com/venue-microservice/internal/domain/repository"
	"github.com/venue-microservice/internal/usecase"
	"github.com/venue-microservice/internal/worker"
	"go.uber.org/zap"
)

// VenueImportWorker обрабатывает события bulk-импорта заведений
type VenueImportWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	venueUC      *usecase.VenueUseCase
	consumerName string
}

// NewVenueImportWorker создает новый VenueImportWorker
func NewVenueImportWorker(
	streamRepo repository.StreamRepository,
	venueUC *usecase.VenueUseCase,
	consumerGroup string,
	logger *zap.Logger,
) *VenueImportWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &VenueImportWorker{
		BaseWorker:   worker.NewBaseWorker("venue-import", consumerGroup, logger),
		streamRepo:   streamRepo,
		venueUC:      venueUC,
		consumerName: consumerName,
	}
}

// Start запускает воркер
func (w *VenueImportWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting VenueImportWorker",
		zap.String("stream", domain.StreamVenueImport),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	// Создаем consumer group
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamVenueImport, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	msgChan, err := w.streamRepo.ConsumeStream(ctx, domain.StreamVenueImport, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		logger.Error("Failed to start stream consumer", zap.Error(err))
		return fmt.Errorf("failed to start stream consumer: %w", err)
	}

	// Основной цикл обработки
	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-msgChan:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

// handleMessage обрабатывает одно сообщение импорта.
// Битые сообщения подтверждаются сразу, чтобы не застревали в PEL.
func (w *VenueImportWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.VenueImportEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		_ = w.streamRepo.AckMessage(ctx, domain.StreamVenueImport, w.ConsumerGroup(), msg.ID)
		return
	}

	if err := w.venueUC.ImportVenue(ctx, event); err != nil {
		logger.Error("Failed to import venue",
			zap.String("message_id", msg.ID),
			zap.String("provider", event.Provider),
			zap.String("provider_place_id", event.ProviderPlaceID),
			zap.Error(err))
		// Без ACK - сообщение будет переобработано
		return
	}

	if err := w.streamRepo.AckMessage(ctx, domain.StreamVenueImport, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Error("Failed to ack message",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return
	}

	logger.Debug("Venue imported",
		zap.String("provider", event.Provider),
		zap.String("provider_place_id", event.ProviderPlaceID))
}
