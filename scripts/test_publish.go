// +build ignore

// Ручная публикация тестового события импорта в stream:venue:import.
// Запуск: go run scripts/test_publish.go -redis localhost:6379
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

type VenueImportEvent struct {
	Provider        string   `json:"provider"`
	ProviderPlaceID string   `json:"provider_place_id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Address         string   `json:"address,omitempty"`
	Commune         string   `json:"commune,omitempty"`
	Phone           *string  `json:"phone,omitempty"`
	Description     string   `json:"description,omitempty"`
	Photos          []string `json:"photos,omitempty"`
	Lat             float64  `json:"lat"`
	Lng             float64  `json:"lng"`
}

func ptr[T any](v T) *T {
	return &v
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие (Abidjan, Cocody)
	event := VenueImportEvent{
		Provider:        "google",
		ProviderPlaceID: "test-place-001",
		Name:            "Maquis Le Bon Coin",
		Category:        "maquis",
		Address:         "Rue des Jardins",
		Commune:         "Cocody",
		Phone:           ptr("+2250700000000"),
		Lat:             5.3599517,
		Lng:             -4.0082563,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:venue:import",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:venue:import\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Venue: %s (%s)\n", event.Name, event.Category)
	fmt.Printf("   Coordinates: %.6f, %.6f\n", event.Lat, event.Lng)
	fmt.Printf("\nCheck the worker logs, then verify the venue:\n")
	fmt.Printf("   curl 'http://localhost:8080/api/v1/establishments/nearby?lat=%.4f&lng=%.4f&radius_km=1'\n",
		event.Lat, event.Lng)
}
