package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/venue-microservice/internal/pkg/errors"
)

// queryCoord извлекает обязательную координату из query-параметра.
// Отсутствующий или нечисловой параметр - ошибка: дефолт 0 молча
// превратил бы его в валидную точку (0, 0) в Гвинейском заливе
func queryCoord(c *fiber.Ctx, name string) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"param": name,
		})
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"param": name,
		})
	}

	return v, nil
}
