package dto

import "github.com/venue-microservice/internal/domain"

// NearbyVenue - заведение в выдаче поиска поблизости. distance_meters
// вычисляется на момент запроса и не хранится
type NearbyVenue struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Address        string   `json:"address"`
	Commune        string   `json:"commune"`
	Phone          *string  `json:"phone,omitempty"`
	Description    string   `json:"description"`
	Photos         []string `json:"photos"`
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"lng"`
	DistanceMeters float64  `json:"distance_meters"`
}

// NearbyResponse - результат поиска заведений поблизости,
// отсортирован по возрастанию расстояния
type NearbyResponse struct {
	Establishments []NearbyVenue `json:"establishments"`
	Total          int           `json:"total"`
}

// ConvertNearbyVenue строит DTO из доменной модели с расстоянием
func ConvertNearbyVenue(v *domain.Venue, distanceMeters float64) NearbyVenue {
	return NearbyVenue{
		ID:             v.ID,
		Name:           v.Name,
		Category:       v.Category,
		Address:        v.Address,
		Commune:        v.Commune,
		Phone:          v.Phone,
		Description:    v.Description,
		Photos:         []string(v.Photos),
		Lat:            v.Lat,
		Lng:            v.Lng,
		DistanceMeters: distanceMeters,
	}
}

// RouteResponse - результат построения маршрута. found=false означает
// "маршрут не найден" - нормальный исход, не ошибка
type RouteResponse struct {
	Found bool      `json:"found"`
	Route *RouteDTO `json:"route,omitempty"`
}

// RouteDTO - маршрут с готовыми для UI форматированными значениями
type RouteDTO struct {
	Distance          float64            `json:"distance"`
	Duration          float64            `json:"duration"`
	FormattedDistance string             `json:"formatted_distance"`
	FormattedDuration string             `json:"formatted_duration"`
	Geometry          [][]float64        `json:"geometry"`
	Steps             []domain.RouteStep `json:"steps"`
}

// ImportVenuesResponse - результат постановки пакета импорта в очередь
type ImportVenuesResponse struct {
	Queued int `json:"queued"`
}
