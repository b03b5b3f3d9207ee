package memory

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/venue-microservice/internal/domain"
)

func TestRouteCache_GetSet(t *testing.T) {
	c := NewRouteCache(3*time.Minute, 200)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	route := &domain.Route{Distance: 4200, Duration: 600}
	c.Set("key", domain.RouteResult{Found: true, Route: route})

	result, ok := c.Get("key")
	assert.True(t, ok)
	assert.True(t, result.Found)
	assert.Equal(t, route, result.Route)
}

func TestRouteCache_NegativeResult(t *testing.T) {
	c := NewRouteCache(3*time.Minute, 200)

	// "Маршрут не найден" кешируется так же, как и найденный
	c.Set("key", domain.RouteResult{Found: false})

	result, ok := c.Get("key")
	assert.True(t, ok)
	assert.False(t, result.Found)
	assert.Nil(t, result.Route)
}

func TestRouteCache_TTLExpiry(t *testing.T) {
	c := NewRouteCache(3*time.Minute, 200)

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set("key", domain.RouteResult{Found: true, Route: &domain.Route{}})

	c.now = func() time.Time { return base.Add(3 * time.Minute) }
	_, ok := c.Get("key")
	assert.True(t, ok)

	c.now = func() time.Time { return base.Add(3*time.Minute + time.Second) }
	_, ok = c.Get("key")
	assert.False(t, ok)
}

func TestRouteCache_FIFOEviction(t *testing.T) {
	c := NewRouteCache(time.Minute, 2)

	c.Set("k0", domain.RouteResult{Found: true})
	c.Set("k1", domain.RouteResult{Found: true})

	_, ok := c.Get("k0")
	assert.True(t, ok)

	c.Set("k2", domain.RouteResult{Found: true})
	assert.Equal(t, 2, c.Len())

	// Вытеснен самый старый, несмотря на недавний Get
	_, ok = c.Get("k0")
	assert.False(t, ok)
	_, ok = c.Get("k1")
	assert.True(t, ok)
}

func TestRouteCache_CapacityStress(t *testing.T) {
	c := NewRouteCache(time.Minute, 200)

	for i := 0; i < 500; i++ {
		c.Set(fmt.Sprintf("k%d", i), domain.RouteResult{Found: true})
	}
	assert.Equal(t, 200, c.Len())

	// Выжили только последние 200 вставок
	_, ok := c.Get("k299")
	assert.False(t, ok)
	_, ok = c.Get("k300")
	assert.True(t, ok)
	_, ok = c.Get("k499")
	assert.True(t, ok)
}
