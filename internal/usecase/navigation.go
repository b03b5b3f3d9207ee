package usecase

import (
	"sync"

	"github.com/venue-microservice/internal/domain"
	"github.com/venue-microservice/internal/pkg/utils"
)

// Порог срабатывания манёвра: ближе 35 метров к точке манёвра
// переходим к следующему шагу
const maneuverAdvanceThresholdM = 35.0

// NavigationTracker отслеживает продвижение пользователя по шагам
// активного маршрута. Одна сессия навигации - один трекер; индекс шага
// монотонно не убывает и ограничен последним шагом.
type NavigationTracker struct {
	mu           sync.Mutex
	route        *domain.Route
	stepIndex    int
	lastPosition domain.Point
	active       bool
}

// NewNavigationTracker создает новый NavigationTracker
func NewNavigationTracker() *NavigationTracker {
	return &NavigationTracker{}
}

// Start начинает навигацию по маршруту с первого шага
func (t *NavigationTracker) Start(route *domain.Route) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.route = route
	t.stepIndex = 0
	t.active = route != nil
}

// SetRoute заменяет отслеживаемый маршрут. Индекс шага сбрасывается
// только если подпись (distance, duration) отличается - так детектится
// "это действительно другой маршрут", стабильного id у маршрутов нет
func (t *NavigationTracker) SetRoute(route *domain.Route) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if route == nil {
		t.route = nil
		t.stepIndex = 0
		t.active = false
		return
	}

	if t.route != nil {
		oldDist, oldDur := t.route.Signature()
		newDist, newDur := route.Signature()
		if oldDist == newDist && oldDur == newDur {
			t.route = route
			return
		}
	}

	t.route = route
	t.stepIndex = 0
}

// Stop завершает сессию навигации
func (t *NavigationTracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.route = nil
	t.stepIndex = 0
	t.active = false
}

// Update обрабатывает обновление позиции. Продвигает индекс ровно на один
// шаг за вызов, даже если пользователь перескочил дальше (GPS-скачок) -
// следующее обновление позиции продвинет снова
func (t *NavigationTracker) Update(pos domain.Point) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastPosition = pos

	if !t.active || t.route == nil || len(t.route.Steps) == 0 {
		return
	}
	if t.stepIndex >= len(t.route.Steps)-1 {
		// Остаёмся на последнем шаге: прибытие детектит вызывающая сторона
		return
	}

	step := t.route.Steps[t.stepIndex]
	distance := utils.HaversineDistance(
		pos.Lat, pos.Lng,
		step.ManeuverLocation[1], step.ManeuverLocation[0],
	)
	if distance < maneuverAdvanceThresholdM {
		t.stepIndex++
	}
}

// StepIndex возвращает текущий индекс шага
func (t *NavigationTracker) StepIndex() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stepIndex
}

// CurrentStep возвращает текущий шаг или nil, если навигация неактивна
func (t *NavigationTracker) CurrentStep() *domain.RouteStep {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active || t.route == nil || t.stepIndex >= len(t.route.Steps) {
		return nil
	}
	step := t.route.Steps[t.stepIndex]
	return &step
}

// DistanceToNextManeuver возвращает расстояние в метрах от последней
// позиции до точки текущего манёвра
func (t *NavigationTracker) DistanceToNextManeuver() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active || t.route == nil || t.stepIndex >= len(t.route.Steps) {
		return 0
	}
	step := t.route.Steps[t.stepIndex]
	return utils.HaversineDistance(
		t.lastPosition.Lat, t.lastPosition.Lng,
		step.ManeuverLocation[1], step.ManeuverLocation[0],
	)
}

// Remaining суммирует расстояние и длительность оставшихся шагов.
// Суммирование по шагам, а не "total минус пройденное" - устойчивее
// к округлению на уровне шагов
func (t *NavigationTracker) Remaining() (distanceMeters, durationSeconds float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active || t.route == nil {
		return 0, 0
	}
	for i := t.stepIndex; i < len(t.route.Steps); i++ {
		distanceMeters += t.route.Steps[i].Distance
		durationSeconds += t.route.Steps[i].Duration
	}
	return distanceMeters, durationSeconds
}
