package memory

import (
	"container/list"
	"sync"
	"time"

	"github.com/venue-microservice/internal/domain"
)

type routeEntry struct {
	key        string
	result     domain.RouteResult
	insertedAt time.Time
}

// RouteCache - кеш результатов маршрутизации, включая негативные
// ("маршрут не найден"), чтобы повторные неудачные запросы не били
// по провайдеру. Вытеснение в порядке вставки при переполнении.
type RouteCache struct {
	mu         sync.Mutex
	entries    map[string]*list.Element
	order      *list.List
	ttl        time.Duration
	maxEntries int

	now func() time.Time
}

// NewRouteCache создает новый RouteCache
func NewRouteCache(ttl time.Duration, maxEntries int) *RouteCache {
	return &RouteCache{
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get возвращает закешированный результат, если он ещё не протух
func (c *RouteCache) Get(key string) (domain.RouteResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return domain.RouteResult{}, false
	}

	entry := elem.Value.(*routeEntry)
	if c.now().Sub(entry.insertedAt) > c.ttl {
		c.order.Remove(elem)
		delete(c.entries, key)
		return domain.RouteResult{}, false
	}

	return entry.result, true
}

// Set сохраняет результат, вытесняя самые старые записи при переполнении
func (c *RouteCache) Set(key string, result domain.RouteResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.order.Remove(elem)
		delete(c.entries, key)
	}

	elem := c.order.PushBack(&routeEntry{
		key:        key,
		result:     result,
		insertedAt: c.now(),
	})
	c.entries[key] = elem

	for c.order.Len() > c.maxEntries {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*routeEntry).key)
	}
}

// Len возвращает текущее число записей
func (c *RouteCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
