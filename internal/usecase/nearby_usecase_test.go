package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venue-microservice/internal/domain"
	"github.com/venue-microservice/internal/pkg/errors"
	"github.com/venue-microservice/internal/repository/memory"
	"github.com/venue-microservice/internal/usecase"
	"github.com/venue-microservice/internal/usecase/dto"
)

// MockVenueRepository is a mock of VenueRepository
type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) FindInBoundingBox(ctx context.Context, box domain.BoundingBox, category string, limit int) ([]*domain.Venue, error) {
	args := m.Called(ctx, box, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockVenueRepository) UpsertByProvider(ctx context.Context, venue *domain.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func publishedVenue(id, name string, lat, lng float64) *domain.Venue {
	return &domain.Venue{
		ID:       id,
		Name:     name,
		Category: "bar",
		Commune:  "Cocody",
		Lat:      lat,
		Lng:      lng,
		Status:   domain.VenueStatusPublished,
	}
}

func TestNearbyUseCase_QueryNearby(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	// Центр Абиджана; смещение по широте на 0.009 ~ 1 км
	center := dto.NearbyRequest{Lat: 5.3261, Lng: -4.0200, RadiusKm: 5}

	t.Run("sorted by ascending distance", func(t *testing.T) {
		mockRepo := &MockVenueRepository{}
		mockRepo.On("FindInBoundingBox", ctx, mock.Anything, "all", mock.Anything).Return([]*domain.Venue{
			publishedVenue("far", "Far Bar", 5.3261+0.027, -4.0200),
			publishedVenue("near", "Near Bar", 5.3261+0.009, -4.0200),
			publishedVenue("mid", "Mid Bar", 5.3261+0.018, -4.0200),
		}, nil)

		uc := usecase.NewNearbyUseCase(mockRepo, memory.NewNearbyCache(10*time.Second, 200), logger)

		resp, err := uc.QueryNearby(ctx, center)
		require.NoError(t, err)
		require.Equal(t, 3, resp.Total)
		assert.Equal(t, "near", resp.Establishments[0].ID)
		assert.Equal(t, "mid", resp.Establishments[1].ID)
		assert.Equal(t, "far", resp.Establishments[2].ID)
		assert.Less(t, resp.Establishments[0].DistanceMeters, resp.Establishments[1].DistanceMeters)
	})

	t.Run("excludes venues outside radius", func(t *testing.T) {
		mockRepo := &MockVenueRepository{}
		// Углы bounding box дальше радиуса - должны отфильтроваться
		mockRepo.On("FindInBoundingBox", ctx, mock.Anything, "all", mock.Anything).Return([]*domain.Venue{
			publishedVenue("inside", "Inside", 5.3261+0.009, -4.0200),
			publishedVenue("corner", "Corner", 5.3261+0.0449, -4.0200+0.0451),
		}, nil)

		uc := usecase.NewNearbyUseCase(mockRepo, memory.NewNearbyCache(10*time.Second, 200), logger)

		resp, err := uc.QueryNearby(ctx, center)
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "inside", resp.Establishments[0].ID)
	})

	t.Run("text filter matches name address commune", func(t *testing.T) {
		mockRepo := &MockVenueRepository{}
		maquis := publishedVenue("m1", "Maquis Le Bon Coin", 5.327, -4.02)
		maquis.Address = "Rue des Jardins"
		other := publishedVenue("o1", "Blue Lounge", 5.328, -4.02)
		mockRepo.On("FindInBoundingBox", ctx, mock.Anything, "all", mock.Anything).Return(
			[]*domain.Venue{maquis, other}, nil)

		uc := usecase.NewNearbyUseCase(mockRepo, memory.NewNearbyCache(10*time.Second, 200), logger)

		req := center
		req.Query = "JARDINS"
		resp, err := uc.QueryNearby(ctx, req)
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "m1", resp.Establishments[0].ID)
	})

	t.Run("limit truncates results", func(t *testing.T) {
		mockRepo := &MockVenueRepository{}
		mockRepo.On("FindInBoundingBox", ctx, mock.Anything, "all", mock.Anything).Return([]*domain.Venue{
			publishedVenue("a", "A", 5.3261+0.009, -4.02),
			publishedVenue("b", "B", 5.3261+0.018, -4.02),
			publishedVenue("c", "C", 5.3261+0.027, -4.02),
		}, nil)

		uc := usecase.NewNearbyUseCase(mockRepo, memory.NewNearbyCache(10*time.Second, 200), logger)

		req := center
		req.Limit = 2
		resp, err := uc.QueryNearby(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, "a", resp.Establishments[0].ID)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		mockRepo := &MockVenueRepository{}
		mockRepo.On("FindInBoundingBox", ctx, mock.Anything, "all", mock.Anything).Return([]*domain.Venue{
			publishedVenue("a", "A", 5.327, -4.02),
		}, nil).Once()

		uc := usecase.NewNearbyUseCase(mockRepo, memory.NewNearbyCache(10*time.Second, 200), logger)

		first, err := uc.QueryNearby(ctx, center)
		require.NoError(t, err)

		// Второй идентичный запрос обслуживается из кеша
		second, err := uc.QueryNearby(ctx, center)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		mockRepo.AssertNumberOfCalls(t, "FindInBoundingBox", 1)
	})

	t.Run("different category misses cache", func(t *testing.T) {
		mockRepo := &MockVenueRepository{}
		mockRepo.On("FindInBoundingBox", ctx, mock.Anything, mock.Anything, mock.Anything).Return(
			[]*domain.Venue{}, nil)

		uc := usecase.NewNearbyUseCase(mockRepo, memory.NewNearbyCache(10*time.Second, 200), logger)

		_, err := uc.QueryNearby(ctx, center)
		require.NoError(t, err)

		req := center
		req.Category = "restaurant"
		_, err = uc.QueryNearby(ctx, req)
		require.NoError(t, err)

		mockRepo.AssertNumberOfCalls(t, "FindInBoundingBox", 2)
	})

	t.Run("invalid coordinates rejected", func(t *testing.T) {
		mockRepo := &MockVenueRepository{}
		uc := usecase.NewNearbyUseCase(mockRepo, memory.NewNearbyCache(10*time.Second, 200), logger)

		_, err := uc.QueryNearby(ctx, dto.NearbyRequest{Lat: 91, Lng: 0, RadiusKm: 5})
		assert.Equal(t, errors.ErrInvalidCoordinates, err)
		mockRepo.AssertNotCalled(t, "FindInBoundingBox")
	})

	t.Run("empty result is valid and cached", func(t *testing.T) {
		mockRepo := &MockVenueRepository{}
		mockRepo.On("FindInBoundingBox", ctx, mock.Anything, "all", mock.Anything).Return(
			[]*domain.Venue{}, nil).Once()

		uc := usecase.NewNearbyUseCase(mockRepo, memory.NewNearbyCache(10*time.Second, 200), logger)

		resp, err := uc.QueryNearby(ctx, center)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.NotNil(t, resp.Establishments)

		resp, err = uc.QueryNearby(ctx, center)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		mockRepo.AssertNumberOfCalls(t, "FindInBoundingBox", 1)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		mockRepo := &MockVenueRepository{}
		mockRepo.On("FindInBoundingBox", ctx, mock.Anything, "all", mock.Anything).Return(
			nil, errors.ErrDatabaseError)

		uc := usecase.NewNearbyUseCase(mockRepo, memory.NewNearbyCache(10*time.Second, 200), logger)

		_, err := uc.QueryNearby(ctx, center)
		assert.Equal(t, errors.ErrDatabaseError, err)
	})
}
