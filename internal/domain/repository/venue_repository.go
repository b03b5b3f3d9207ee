package repository

import (
	"context"

	"github.com/venue-microservice/internal/domain"
)

// VenueRepository определяет методы для работы с заведениями
type VenueRepository interface {
	// GetByID возвращает заведение по ID
	GetByID(ctx context.Context, id string) (*domain.Venue, error)

	// FindInBoundingBox возвращает опубликованные заведения внутри bounding box.
	// category == "all" отключает фильтр по категории.
	FindInBoundingBox(ctx context.Context, box domain.BoundingBox, category string, limit int) ([]*domain.Venue, error)

	// Create сохраняет новое заведение
	Create(ctx context.Context, venue *domain.Venue) error

	// UpdateStatus меняет статус модерации заведения
	UpdateStatus(ctx context.Context, id, status string) error

	// UpsertByProvider вставляет или обновляет заведение по паре
	// (provider, provider_place_id), чтобы повторный импорт не создавал дублей
	UpsertByProvider(ctx context.Context, venue *domain.Venue) error
}
