package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/venue-microservice/internal/domain"
	"github.com/venue-microservice/internal/domain/repository"
	"github.com/venue-microservice/internal/pkg/errors"
	"github.com/venue-microservice/internal/pkg/utils"
	"github.com/venue-microservice/internal/repository/memory"
	"github.com/venue-microservice/internal/usecase/dto"
)

const (
	// Потолки overfetch для bounding box: прямоугольник шире истинного
	// круга, поэтому берём с запасом до точной фильтрации
	minFetchLimit = 2000
	maxFetchLimit = 20000

	maxNearbyLimit = 5000
)

// NearbyUseCase - use case поиска опубликованных заведений в радиусе
type NearbyUseCase struct {
	venueRepo repository.VenueRepository
	cache     *memory.NearbyCache
	logger    *zap.Logger
}

// NewNearbyUseCase - создание нового NearbyUseCase
func NewNearbyUseCase(
	venueRepo repository.VenueRepository,
	cache *memory.NearbyCache,
	logger *zap.Logger,
) *NearbyUseCase {
	return &NearbyUseCase{
		venueRepo: venueRepo,
		cache:     cache,
		logger:    logger,
	}
}

// QueryNearby ищет опубликованные заведения в радиусе от точки,
// отсортированные по возрастанию расстояния
func (uc *NearbyUseCase) QueryNearby(ctx context.Context, req dto.NearbyRequest) (*dto.NearbyResponse, error) {
	// Валидация координат до обращения к хранилищу
	if !utils.ValidateCoordinates(req.Lat, req.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	radiusKm := utils.ClampRadius(req.RadiusKm)

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = domain.CategoryAll
	}
	textQuery := strings.ToLower(strings.TrimSpace(req.Query))

	limit := req.Limit
	if limit <= 0 {
		// Дефолт зависит от радиуса: широкие запросы в плотных районах
		// не должны обрезаться
		if radiusKm > 10 {
			limit = 2000
		} else {
			limit = 500
		}
	}
	if limit > maxNearbyLimit {
		limit = maxNearbyLimit
	}

	cacheKey := fmt.Sprintf("nearby:%.4f:%.4f:%g:%s:%s:%d",
		req.Lat, req.Lng, radiusKm, category, textQuery, limit)

	// Cache hit - возвращаем идентичный прошлый ответ без пересчёта
	if body, ok := uc.cache.Get(cacheKey); ok {
		var cached dto.NearbyResponse
		if err := json.Unmarshal(body, &cached); err == nil {
			uc.logger.Debug("Nearby cache hit", zap.String("key", cacheKey))
			return &cached, nil
		}
		uc.logger.Warn("Failed to unmarshal cached nearby response", zap.String("key", cacheKey))
	}

	box := utils.BoundingBoxAround(req.Lat, req.Lng, radiusKm)

	fetchLimit := limit * 3
	if fetchLimit < minFetchLimit {
		fetchLimit = minFetchLimit
	}
	if fetchLimit > maxFetchLimit {
		fetchLimit = maxFetchLimit
	}

	candidates, err := uc.venueRepo.FindInBoundingBox(ctx, box, category, fetchLimit)
	if err != nil {
		uc.logger.Error("Failed to fetch nearby candidates", zap.Error(err))
		return nil, err
	}

	type scored struct {
		venue    *domain.Venue
		distance float64
	}

	radiusMeters := radiusKm * 1000
	matched := make([]scored, 0, len(candidates))
	for _, v := range candidates {
		distance := utils.HaversineDistance(req.Lat, req.Lng, v.Lat, v.Lng)
		if distance > radiusMeters {
			continue
		}

		if textQuery != "" {
			haystack := strings.ToLower(v.Name + " " + v.Address + " " + v.Commune + " " + v.Category)
			if !strings.Contains(haystack, textQuery) {
				continue
			}
		}

		matched = append(matched, scored{venue: v, distance: distance})
	}

	// Stable sort: при равных расстояниях сохраняется порядок вставки
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].distance < matched[j].distance
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}

	establishments := make([]dto.NearbyVenue, 0, len(matched))
	for _, m := range matched {
		establishments = append(establishments, dto.ConvertNearbyVenue(m.venue, m.distance))
	}

	resp := &dto.NearbyResponse{
		Establishments: establishments,
		Total:          len(establishments),
	}

	if body, err := json.Marshal(resp); err == nil {
		uc.cache.Set(cacheKey, body)
	}

	return resp, nil
}
