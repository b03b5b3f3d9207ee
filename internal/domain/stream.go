package domain

// Stream names (должны совпадать с publisher'ами импорта)
const (
	StreamVenueImport = "stream:venue:import"
)

// VenueImportEvent - входящее событие bulk-импорта заведения из внешнего
// провайдера мест. Upsert идёт по паре (provider, provider_place_id).
type VenueImportEvent struct {
	Provider        string   `json:"provider"`
	ProviderPlaceID string   `json:"provider_place_id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Address         string   `json:"address,omitempty"`
	Commune         string   `json:"commune,omitempty"`
	Phone           *string  `json:"phone,omitempty"`
	Description     string   `json:"description,omitempty"`
	Photos          []string `json:"photos,omitempty"`
	Lat             float64  `json:"lat"`
	Lng             float64  `json:"lng"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
