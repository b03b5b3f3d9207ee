package mapbox

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venue-microservice/internal/config"
	"github.com/venue-microservice/internal/domain"
)

const directionsOkBody = `{
	"code": "Ok",
	"routes": [{
		"distance": 4200.5,
		"duration": 612.3,
		"geometry": {"coordinates": [[-4.02, 5.3261], [-3.998, 5.295]]},
		"legs": [{
			"steps": [
				{
					"distance": 2000,
					"duration": 300,
					"maneuver": {
						"instruction": "Tournez à droite sur le Boulevard",
						"location": [-4.01, 5.31],
						"type": "turn",
						"modifier": "right"
					}
				},
				{
					"distance": 2200.5,
					"duration": 312.3,
					"maneuver": {
						"instruction": "Vous êtes arrivé",
						"location": [-3.998, 5.295],
						"type": "arrive"
					}
				}
			]
		}]
	}]
}`

func testConfig(baseURL string) *config.MapboxConfig {
	return &config.MapboxConfig{
		BaseURL:        baseURL,
		AccessToken:    "test_token",
		Language:       "fr",
		RequestTimeout: 5,
	}
}

func TestClient_GetRoute(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	origin := domain.Point{Lat: 5.3261, Lng: -4.0200}
	destination := domain.Point{Lat: 5.2950, Lng: -3.9980}

	t.Run("successful request", func(t *testing.T) {
		var capturedPath string
		var capturedQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedPath = r.URL.Path
			capturedQuery = r.URL.RawQuery
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(directionsOkBody))
		}))
		defer server.Close()

		client := NewDirectionsClient(testConfig(server.URL), logger)

		route, err := client.GetRoute(ctx, origin, destination, domain.ModeDriving)
		require.NoError(t, err)
		require.NotNil(t, route)

		assert.Equal(t, 4200.5, route.Distance)
		assert.Equal(t, 612.3, route.Duration)
		assert.Len(t, route.Geometry, 2)
		require.Len(t, route.Steps, 2)
		assert.Equal(t, "Tournez à droite sur le Boulevard", route.Steps[0].Instruction)
		assert.Equal(t, "turn", route.Steps[0].ManeuverType)
		assert.Equal(t, "right", route.Steps[0].ManeuverModifier)
		assert.Equal(t, [2]float64{-4.01, 5.31}, route.Steps[0].ManeuverLocation)

		// Профиль и порядок координат провайдера: longitude,latitude
		assert.Contains(t, capturedPath, "/directions/v5/mapbox/driving/")
		assert.Contains(t, capturedPath, "-4.020000,5.326100;-3.998000,5.295000")
		assert.Contains(t, capturedQuery, "steps=true")
		assert.Contains(t, capturedQuery, "language=fr")
		assert.Contains(t, capturedQuery, "access_token=test_token")
	})

	t.Run("walking profile", func(t *testing.T) {
		var capturedPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capturedPath = r.URL.Path
			w.Write([]byte(directionsOkBody))
		}))
		defer server.Close()

		client := NewDirectionsClient(testConfig(server.URL), logger)

		_, err := client.GetRoute(ctx, origin, destination, domain.ModeWalking)
		require.NoError(t, err)
		assert.True(t, strings.Contains(capturedPath, "mapbox/walking"))
	})

	t.Run("no route code returns nil without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code": "NoRoute", "routes": []}`))
		}))
		defer server.Close()

		client := NewDirectionsClient(testConfig(server.URL), logger)

		route, err := client.GetRoute(ctx, origin, destination, domain.ModeDriving)
		assert.NoError(t, err)
		assert.Nil(t, route)
	})

	t.Run("ok code with empty routes returns nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code": "Ok", "routes": []}`))
		}))
		defer server.Close()

		client := NewDirectionsClient(testConfig(server.URL), logger)

		route, err := client.GetRoute(ctx, origin, destination, domain.ModeDriving)
		assert.NoError(t, err)
		assert.Nil(t, route)
	})

	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "Not Authorized"}`))
		}))
		defer server.Close()

		client := NewDirectionsClient(testConfig(server.URL), logger)

		route, err := client.GetRoute(ctx, origin, destination, domain.ModeDriving)
		assert.Error(t, err)
		assert.Nil(t, route)
		assert.Contains(t, err.Error(), "status 401")
	})

	t.Run("malformed json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code": "Ok", "routes": [`))
		}))
		defer server.Close()

		client := NewDirectionsClient(testConfig(server.URL), logger)

		route, err := client.GetRoute(ctx, origin, destination, domain.ModeDriving)
		assert.Error(t, err)
		assert.Nil(t, route)
	})

	t.Run("unsupported mode", func(t *testing.T) {
		client := NewDirectionsClient(testConfig("http://localhost:1"), logger)

		route, err := client.GetRoute(ctx, origin, destination, "teleport")
		assert.Error(t, err)
		assert.Nil(t, route)
		assert.Contains(t, err.Error(), "unsupported travel mode")
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(directionsOkBody))
		}))
		defer server.Close()

		client := NewDirectionsClient(testConfig(server.URL), logger)

		cancelledCtx, cancel := context.WithCancel(ctx)
		cancel()

		route, err := client.GetRoute(cancelledCtx, origin, destination, domain.ModeDriving)
		assert.Error(t, err)
		assert.Nil(t, route)
	})
}
