package domain

import (
	"time"

	"github.com/lib/pq"
)

// Статусы заведения в жизненном цикле модерации
const (
	VenueStatusPending   = "pending"
	VenueStatusPublished = "published"
	VenueStatusRejected  = "rejected"
)

// CategoryAll - wildcard категория, отключает фильтр по категории
const CategoryAll = "all"

// Venue представляет заведение (бар, ресторан, lounge) на карте
type Venue struct {
	ID          string         `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Category    string         `json:"category" db:"category"`
	Address     string         `json:"address" db:"address"`
	Commune     string         `json:"commune" db:"commune"`
	Phone       *string        `json:"phone,omitempty" db:"phone"`
	Description string         `json:"description" db:"description"`
	Photos      pq.StringArray `json:"photos" db:"photos"`
	Lat         float64        `json:"lat" db:"lat"`
	Lng         float64        `json:"lng" db:"lng"`
	Status      string         `json:"status" db:"status"`

	// Идентичность внешнего провайдера для bulk-импорта (upsert без дублей)
	Provider        *string `json:"provider,omitempty" db:"provider"`
	ProviderPlaceID *string `json:"provider_place_id,omitempty" db:"provider_place_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Published проверяет, опубликовано ли заведение
func (v *Venue) Published() bool {
	return v.Status == VenueStatusPublished
}
