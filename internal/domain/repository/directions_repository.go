package repository

import (
	"context"

	"github.com/venue-microservice/internal/domain"
)

// DirectionsRepository определяет методы для работы с внешним провайдером маршрутов
type DirectionsRepository interface {
	// GetRoute строит маршрут между двумя точками для режима передвижения.
	// Возвращает (nil, nil), если провайдер не нашёл маршрут.
	GetRoute(ctx context.Context, origin, destination domain.Point, mode string) (*domain.Route, error)
}
