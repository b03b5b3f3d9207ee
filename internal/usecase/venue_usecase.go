package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/venue-microservice/internal/domain"
	"github.com/venue-microservice/internal/domain/repository"
	"github.com/venue-microservice/internal/pkg/errors"
	"github.com/venue-microservice/internal/pkg/utils"
	"github.com/venue-microservice/internal/usecase/dto"
)

// VenueUseCase - use case жизненного цикла заведений: создание,
// публичные заявки, модерация, постановка bulk-импорта в очередь
type VenueUseCase struct {
	venueRepo  repository.VenueRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

// NewVenueUseCase - создание нового VenueUseCase
func NewVenueUseCase(
	venueRepo repository.VenueRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *VenueUseCase {
	return &VenueUseCase{
		venueRepo:  venueRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// GetByID возвращает заведение по ID
func (uc *VenueUseCase) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	venue, err := uc.venueRepo.GetByID(ctx, id)
	if err != nil {
		if err != errors.ErrVenueNotFound {
			uc.logger.Error("Failed to get venue", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}
	return venue, nil
}

// Create создает заведение напрямую (аутентифицированный владелец) -
// публикуется сразу
func (uc *VenueUseCase) Create(ctx context.Context, req dto.CreateVenueRequest) (*domain.Venue, error) {
	return uc.create(ctx, req, domain.VenueStatusPublished)
}

// Submit создает публичную заявку на заведение - попадает в pending
// до решения модератора
func (uc *VenueUseCase) Submit(ctx context.Context, req dto.CreateVenueRequest) (*domain.Venue, error) {
	return uc.create(ctx, req, domain.VenueStatusPending)
}

func (uc *VenueUseCase) create(ctx context.Context, req dto.CreateVenueRequest, status string) (*domain.Venue, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	venue := &domain.Venue{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Category:    req.Category,
		Address:     req.Address,
		Commune:     req.Commune,
		Phone:       req.Phone,
		Description: req.Description,
		Photos:      pq.StringArray(req.Photos),
		Lat:         req.Lat,
		Lng:         req.Lng,
		Status:      status,
	}

	if err := uc.venueRepo.Create(ctx, venue); err != nil {
		uc.logger.Error("Failed to create venue",
			zap.String("name", req.Name),
			zap.String("status", status),
			zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Venue created",
		zap.String("id", venue.ID),
		zap.String("name", venue.Name),
		zap.String("status", venue.Status))

	return venue, nil
}

// Moderate применяет решение модератора: publish или reject
func (uc *VenueUseCase) Moderate(ctx context.Context, id string, req dto.ModerateVenueRequest) error {
	var status string
	switch req.Action {
	case "publish":
		status = domain.VenueStatusPublished
	case "reject":
		status = domain.VenueStatusRejected
	default:
		return errors.ErrInvalidStatus
	}

	if err := uc.venueRepo.UpdateStatus(ctx, id, status); err != nil {
		if err != errors.ErrVenueNotFound {
			uc.logger.Error("Failed to moderate venue",
				zap.String("id", id),
				zap.String("status", status),
				zap.Error(err))
		}
		return err
	}

	uc.logger.Info("Venue moderated",
		zap.String("id", id),
		zap.String("status", status))

	return nil
}

// QueueImport публикует пакет заведений внешнего провайдера в стрим
// импорта. Upsert выполняет воркер асинхронно
func (uc *VenueUseCase) QueueImport(ctx context.Context, req dto.ImportVenuesRequest) (*dto.ImportVenuesResponse, error) {
	queued := 0
	for i, input := range req.Venues {
		if !utils.ValidateCoordinates(input.Lat, input.Lng) {
			return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
				"venue_index": i,
			})
		}

		event := domain.VenueImportEvent{
			Provider:        input.Provider,
			ProviderPlaceID: input.ProviderPlaceID,
			Name:            input.Name,
			Category:        input.Category,
			Address:         input.Address,
			Commune:         input.Commune,
			Phone:           input.Phone,
			Description:     input.Description,
			Photos:          input.Photos,
			Lat:             input.Lat,
			Lng:             input.Lng,
		}

		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamVenueImport, event); err != nil {
			uc.logger.Error("Failed to queue venue import",
				zap.String("provider", input.Provider),
				zap.String("provider_place_id", input.ProviderPlaceID),
				zap.Error(err))
			return nil, errors.ErrStreamError
		}
		queued++
	}

	uc.logger.Info("Venue import queued", zap.Int("count", queued))

	return &dto.ImportVenuesResponse{Queued: queued}, nil
}

// ImportVenue выполняет upsert одного импортированного заведения.
// Вызывается воркером импорта
func (uc *VenueUseCase) ImportVenue(ctx context.Context, event domain.VenueImportEvent) error {
	if !utils.ValidateCoordinates(event.Lat, event.Lng) {
		return errors.ErrInvalidCoordinates
	}

	provider := event.Provider
	placeID := event.ProviderPlaceID

	venue := &domain.Venue{
		ID:              uuid.NewString(),
		Name:            event.Name,
		Category:        event.Category,
		Address:         event.Address,
		Commune:         event.Commune,
		Phone:           event.Phone,
		Description:     event.Description,
		Photos:          pq.StringArray(event.Photos),
		Lat:             event.Lat,
		Lng:             event.Lng,
		Status:          domain.VenueStatusPublished,
		Provider:        &provider,
		ProviderPlaceID: &placeID,
	}

	if err := uc.venueRepo.UpsertByProvider(ctx, venue); err != nil {
		uc.logger.Error("Failed to upsert imported venue",
			zap.String("provider", provider),
			zap.String("provider_place_id", placeID),
			zap.Error(err))
		return err
	}

	return nil
}
