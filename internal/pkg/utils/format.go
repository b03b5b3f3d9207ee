package utils

import (
	"fmt"
	"math"
)

// FormatDistance форматирует расстояние для UI: метры до километра,
// дальше - километры с одним знаком
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

// FormatDuration форматирует длительность для UI: минуты до часа,
// дальше - "{h}h {m}m"
func FormatDuration(seconds float64) string {
	minutes := int(math.Round(seconds / 60))
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
