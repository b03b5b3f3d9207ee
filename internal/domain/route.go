package domain

// Режимы передвижения, поддерживаемые провайдером маршрутов
const (
	ModeDriving = "driving"
	ModeWalking = "walking"
	ModeCycling = "cycling"
)

// Route представляет построенный маршрут между двумя точками
type Route struct {
	// Общая длина маршрута в метрах
	Distance float64 `json:"distance"`
	// Общая длительность в секундах
	Duration float64 `json:"duration"`
	// Геометрия маршрута: последовательность [lng, lat] от старта к финишу
	Geometry [][]float64 `json:"geometry"`
	// Пошаговые манёвры
	Steps []RouteStep `json:"steps"`
}

// RouteStep - один манёвр маршрута
type RouteStep struct {
	Distance    float64 `json:"distance"`
	Duration    float64 `json:"duration"`
	Instruction string  `json:"instruction"`
	// Точка манёвра как [lng, lat]
	ManeuverLocation [2]float64 `json:"maneuver_location"`
	ManeuverType     string     `json:"maneuver_type"`
	ManeuverModifier string     `json:"maneuver_modifier,omitempty"`
}

// RouteResult - тегированный результат поиска маршрута.
// "Маршрут не найден" - нормальный, кешируемый исход, а не ошибка.
type RouteResult struct {
	Found bool   `json:"found"`
	Route *Route `json:"route,omitempty"`
}

// Signature возвращает (distance, duration) - подпись для детекции замены
// маршрута, поскольку у маршрутов нет стабильного id
func (r *Route) Signature() (float64, float64) {
	return r.Distance, r.Duration
}
