package utils

import (
	"math"

	"github.com/venue-microservice/internal/domain"
)

const (
	earthRadiusM = 6371000.0
	// Градус широты в километрах
	kmPerDegree = 111.32
	// Минимальный cos(lat) - защита от коллапса градуса долготы у полюсов
	minLngCos = 0.2
)

// HaversineDistance вычисляет расстояние между двумя точками в метрах
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLng := (lng2 - lng1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLng/2)*math.Sin(dLng/2)

	// min(1, ...) защищает от NaN при floating-point overshoot на
	// почти антиподальных точках
	return 2 * earthRadiusM * math.Asin(math.Min(1, math.Sqrt(h)))
}

// BoundingBoxAround строит bounding box вокруг точки по плоской аппроксимации
// градусов. Не геометрически точен у полюсов - допустимо для экваториального
// региона деплоя.
func BoundingBoxAround(lat, lng, radiusKm float64) domain.BoundingBox {
	dLat := radiusKm / kmPerDegree
	dLng := radiusKm / (kmPerDegree * math.Max(minLngCos, math.Cos(lat*math.Pi/180.0)))

	return domain.BoundingBox{
		MinLat: lat - dLat,
		MaxLat: lat + dLat,
		MinLng: lng - dLng,
		MaxLng: lng + dLng,
	}
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// RoundCoord округляет координату до 4 знаков (~11 м на экваторе) -
// квантизация для стабильных ключей кеша
func RoundCoord(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// ClampRadius ограничивает радиус поиска диапазоном [1, 50] км
func ClampRadius(radiusKm float64) float64 {
	if radiusKm < 1 {
		return 1
	}
	if radiusKm > 50 {
		return 50
	}
	return radiusKm
}
