package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/venue-microservice/internal/domain"
	"github.com/venue-microservice/internal/domain/repository"
	"github.com/venue-microservice/internal/pkg/errors"
	"github.com/venue-microservice/internal/pkg/utils"
	"github.com/venue-microservice/internal/repository/memory"
	"github.com/venue-microservice/internal/usecase/dto"
)

// RouteUseCase - use case построения и кеширования маршрутов.
// Конкурентные запросы одного ключа схлопываются в один исходящий
// вызов провайдера.
type RouteUseCase struct {
	directions repository.DirectionsRepository
	cache      *memory.RouteCache
	group      singleflight.Group
	logger     *zap.Logger
}

// NewRouteUseCase - создание нового RouteUseCase
func NewRouteUseCase(
	directions repository.DirectionsRepository,
	cache *memory.RouteCache,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		directions: directions,
		cache:      cache,
		logger:     logger,
	}
}

// routeKey строит ключ кеша: квантизация до 4 знаков гасит GPS-дрожание
// и не даёт ключам расползаться
func routeKey(mode string, origin, destination domain.Point) string {
	return fmt.Sprintf("%s:%.4f,%.4f->%.4f,%.4f",
		mode,
		utils.RoundCoord(origin.Lng), utils.RoundCoord(origin.Lat),
		utils.RoundCoord(destination.Lng), utils.RoundCoord(destination.Lat))
}

// GetRoute возвращает маршрут или found=false. Ошибки провайдера
// (HTTP, сеть, таймаут, "нет маршрута") не пробрасываются наверх -
// это нормальный кешируемый исход
func (uc *RouteUseCase) GetRoute(ctx context.Context, req dto.RouteRequest) (*dto.RouteResponse, error) {
	switch req.Mode {
	case domain.ModeDriving, domain.ModeWalking, domain.ModeCycling:
	default:
		return nil, errors.ErrInvalidMode
	}

	if !utils.ValidateCoordinates(req.OriginLat, req.OriginLng) ||
		!utils.ValidateCoordinates(req.DestLat, req.DestLng) {
		return nil, errors.ErrInvalidCoordinates
	}

	origin := domain.Point{Lat: req.OriginLat, Lng: req.OriginLng}
	destination := domain.Point{Lat: req.DestLat, Lng: req.DestLng}
	key := routeKey(req.Mode, origin, destination)

	if result, ok := uc.cache.Get(key); ok {
		uc.logger.Debug("Route cache hit", zap.String("key", key))
		return toRouteResponse(result), nil
	}

	// Единственный исходящий запрос на ключ: остальные вызывающие
	// ждут тот же результат
	v, err, _ := uc.group.Do(key, func() (interface{}, error) {
		route, fetchErr := uc.directions.GetRoute(ctx, origin, destination, req.Mode)
		if fetchErr != nil {
			// Отмена вызывающей стороны не должна отравить кеш
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			uc.logger.Warn("Directions provider failed, treating as no route",
				zap.String("key", key),
				zap.Error(fetchErr))
			result := domain.RouteResult{Found: false}
			uc.cache.Set(key, result)
			return result, nil
		}

		result := domain.RouteResult{Found: route != nil, Route: route}
		uc.cache.Set(key, result)
		return result, nil
	})
	if err != nil {
		// Сюда попадает только отмена контекста: кеш не заполнен,
		// in-flight запись снята
		return &dto.RouteResponse{Found: false}, nil
	}

	return toRouteResponse(v.(domain.RouteResult)), nil
}

func toRouteResponse(result domain.RouteResult) *dto.RouteResponse {
	if !result.Found || result.Route == nil {
		return &dto.RouteResponse{Found: false}
	}

	route := result.Route
	return &dto.RouteResponse{
		Found: true,
		Route: &dto.RouteDTO{
			Distance:          route.Distance,
			Duration:          route.Duration,
			FormattedDistance: utils.FormatDistance(route.Distance),
			FormattedDuration: utils.FormatDuration(route.Duration),
			Geometry:          route.Geometry,
			Steps:             route.Steps,
		},
	}
}
