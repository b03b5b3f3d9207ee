package memory

import (
	"container/list"
	"sync"
	"time"
)

type nearbyEntry struct {
	key        string
	body       []byte
	insertedAt time.Time
}

// NearbyCache - кеш сериализованных ответов поиска поблизости.
// Ограничен по размеру, вытеснение строго в порядке вставки (FIFO, не LRU).
// Инжектируется явно, чтобы тесты могли создавать свежие экземпляры
// и детерминированно проверять TTL и вытеснение.
type NearbyCache struct {
	mu         sync.Mutex
	entries    map[string]*list.Element
	order      *list.List
	ttl        time.Duration
	maxEntries int

	// Переопределяется в тестах
	now func() time.Time
}

// NewNearbyCache создает новый NearbyCache
func NewNearbyCache(ttl time.Duration, maxEntries int) *NearbyCache {
	return &NearbyCache{
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get возвращает закешированный ответ, если он ещё не протух
func (c *NearbyCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	entry := elem.Value.(*nearbyEntry)
	if c.now().Sub(entry.insertedAt) > c.ttl {
		c.order.Remove(elem)
		delete(c.entries, key)
		return nil, false
	}

	return entry.body, true
}

// Set сохраняет ответ, вытесняя самые старые записи при переполнении
func (c *NearbyCache) Set(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.order.Remove(elem)
		delete(c.entries, key)
	}

	elem := c.order.PushBack(&nearbyEntry{
		key:        key,
		body:       body,
		insertedAt: c.now(),
	})
	c.entries[key] = elem

	for c.order.Len() > c.maxEntries {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*nearbyEntry).key)
	}
}

// Len возвращает текущее число записей
func (c *NearbyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
