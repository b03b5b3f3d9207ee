package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/venue-microservice/internal/config"
	"github.com/venue-microservice/internal/domain"
	"github.com/venue-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// Профили Mapbox Directions API по режимам передвижения
var modeProfiles = map[string]string{
	domain.ModeDriving: "mapbox/driving",
	domain.ModeWalking: "mapbox/walking",
	domain.ModeCycling: "mapbox/cycling",
}

type client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	language    string
	logger      *zap.Logger
}

// NewDirectionsClient создает новый клиент для Mapbox Directions API
func NewDirectionsClient(cfg *config.MapboxConfig, logger *zap.Logger) repository.DirectionsRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		language:    cfg.Language,
		logger:      logger,
	}
}

// Формат ответа Directions API
type directionsResponse struct {
	Code   string          `json:"code"`
	Routes []responseRoute `json:"routes"`
}

type responseRoute struct {
	Distance float64          `json:"distance"`
	Duration float64          `json:"duration"`
	Geometry responseGeometry `json:"geometry"`
	Legs     []responseLeg    `json:"legs"`
}

type responseGeometry struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type responseLeg struct {
	Steps []responseStep `json:"steps"`
}

type responseStep struct {
	Distance float64          `json:"distance"`
	Duration float64          `json:"duration"`
	Maneuver responseManeuver `json:"maneuver"`
}

type responseManeuver struct {
	Instruction string    `json:"instruction"`
	Location    []float64 `json:"location"`
	Type        string    `json:"type"`
	Modifier    string    `json:"modifier"`
}

// GetRoute строит маршрут между двумя точками. Возвращает (nil, nil),
// если провайдер не нашёл маршрут - это не ошибка.
func (c *client) GetRoute(
	ctx context.Context,
	origin, destination domain.Point,
	mode string,
) (*domain.Route, error) {
	profile, ok := modeProfiles[mode]
	if !ok {
		return nil, fmt.Errorf("unsupported travel mode: %s", mode)
	}

	// Координаты в порядке провайдера: longitude,latitude
	url := fmt.Sprintf("%s/directions/v5/%s/%f,%f;%f,%f?steps=true&geometries=geojson&overview=full&language=%s&access_token=%s",
		c.baseURL,
		profile,
		origin.Lng, origin.Lat,
		destination.Lng, destination.Lat,
		c.language,
		c.accessToken,
	)

	c.logger.Debug("Calling Mapbox Directions API",
		zap.String("profile", profile),
		zap.Float64("origin_lng", origin.Lng),
		zap.Float64("origin_lat", origin.Lat),
		zap.Float64("dest_lng", destination.Lng),
		zap.Float64("dest_lat", destination.Lat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("mapbox API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var directionsResp directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&directionsResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// Non-Ok код и пустой список маршрутов - нормальный исход "нет маршрута"
	if directionsResp.Code != "Ok" || len(directionsResp.Routes) == 0 {
		c.logger.Debug("No route available",
			zap.String("code", directionsResp.Code),
			zap.Int("routes", len(directionsResp.Routes)))
		return nil, nil
	}

	// Берём первый (лучший) маршрут
	best := directionsResp.Routes[0]
	route := &domain.Route{
		Distance: best.Distance,
		Duration: best.Duration,
		Geometry: best.Geometry.Coordinates,
	}

	for _, leg := range best.Legs {
		for _, step := range leg.Steps {
			s := domain.RouteStep{
				Distance:         step.Distance,
				Duration:         step.Duration,
				Instruction:      step.Maneuver.Instruction,
				ManeuverType:     step.Maneuver.Type,
				ManeuverModifier: step.Maneuver.Modifier,
			}
			if len(step.Maneuver.Location) >= 2 {
				s.ManeuverLocation = [2]float64{step.Maneuver.Location[0], step.Maneuver.Location[1]}
			}
			route.Steps = append(route.Steps, s)
		}
	}

	c.logger.Debug("Mapbox Directions API call successful",
		zap.Float64("distance", route.Distance),
		zap.Float64("duration", route.Duration),
		zap.Int("steps", len(route.Steps)))

	return route, nil
}
