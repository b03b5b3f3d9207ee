package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/venue-microservice/internal/domain"
	"github.com/venue-microservice/internal/domain/repository"
	"github.com/venue-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type venueRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewVenueRepository(db *DB) repository.VenueRepository {
	return &venueRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const venueColumns = `
	id, name, category, address, commune, phone, description, photos,
	lat, lng, status, provider, provider_place_id, created_at, updated_at
`

func (r *venueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := fmt.Sprintf(`SELECT %s FROM venues WHERE id = $1`, venueColumns)

	var venue domain.Venue
	err := r.db.GetContext(ctx, &venue, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrVenueNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get venue by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &venue, nil
}

// FindInBoundingBox префильтрует заведения по индексированным диапазонам
// lat/lng. Точная круговая фильтрация по haversine выполняется на уровне
// usecase - bounding box шире истинного радиуса.
func (r *venueRepository) FindInBoundingBox(
	ctx context.Context,
	box domain.BoundingBox,
	category string,
	limit int,
) ([]*domain.Venue, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM venues
		WHERE status = $1
		  AND lat BETWEEN $2 AND $3
		  AND lng BETWEEN $4 AND $5
	`, venueColumns)

	args := []interface{}{domain.VenueStatusPublished, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng}
	argIdx := 6

	if category != "" && category != domain.CategoryAll {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, category)
		argIdx++
	}

	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	var venues []*domain.Venue
	if err := r.db.SelectContext(ctx, &venues, query, args...); err != nil {
		r.logger.Error("Failed to find venues in bounding box", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return venues, nil
}

func (r *venueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	query := `
		INSERT INTO venues (
			id, name, category, address, commune, phone, description, photos,
			lat, lng, status, provider, provider_place_id, created_at, updated_at
		) VALUES (
			:id, :name, :category, :address, :commune, :phone, :description, :photos,
			:lat, :lng, :status, :provider, :provider_place_id, NOW(), NOW()
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, venue); err != nil {
		r.logger.Error("Failed to create venue",
			zap.String("id", venue.ID),
			zap.String("name", venue.Name),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *venueRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE venues SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		r.logger.Error("Failed to update venue status",
			zap.String("id", id),
			zap.String("status", status),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if rows == 0 {
		return errors.ErrVenueNotFound
	}

	return nil
}

// UpsertByProvider вставляет или обновляет заведение по паре
// (provider, provider_place_id) - повторный импорт не создаёт дублей
func (r *venueRepository) UpsertByProvider(ctx context.Context, venue *domain.Venue) error {
	query := `
		INSERT INTO venues (
			id, name, category, address, commune, phone, description, photos,
			lat, lng, status, provider, provider_place_id, created_at, updated_at
		) VALUES (
			:id, :name, :category, :address, :commune, :phone, :description, :photos,
			:lat, :lng, :status, :provider, :provider_place_id, NOW(), NOW()
		)
		ON CONFLICT (provider, provider_place_id) DO UPDATE SET
			name        = EXCLUDED.name,
			category    = EXCLUDED.category,
			address     = EXCLUDED.address,
			commune     = EXCLUDED.commune,
			phone       = EXCLUDED.phone,
			description = EXCLUDED.description,
			photos      = EXCLUDED.photos,
			lat         = EXCLUDED.lat,
			lng         = EXCLUDED.lng,
			updated_at  = NOW()
	`

	if _, err := r.db.NamedExecContext(ctx, query, venue); err != nil {
		r.logger.Error("Failed to upsert venue",
			zap.Stringp("provider", venue.Provider),
			zap.Stringp("provider_place_id", venue.ProviderPlaceID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
