package dto

// NearbyRequest - запрос на поиск заведений поблизости
type NearbyRequest struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	RadiusKm float64 `json:"radius_km"`
	// "all" или точный тег категории; неизвестные теги не отклоняются
	Category string `json:"category"`
	// Свободный текст, регистронезависимый substring-фильтр
	Query string `json:"q"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=5000"`
}

// RouteRequest - запрос на построение маршрута
type RouteRequest struct {
	OriginLng float64 `json:"origin_lng"`
	OriginLat float64 `json:"origin_lat"`
	DestLng   float64 `json:"dest_lng"`
	DestLat   float64 `json:"dest_lat"`
	Mode      string  `json:"mode" validate:"required,oneof=driving walking cycling"`
}

// CreateVenueRequest - прямое создание заведения (публикуется сразу)
// или публичная заявка (попадает в pending)
type CreateVenueRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Category    string   `json:"category" validate:"required"`
	Address     string   `json:"address"`
	Commune     string   `json:"commune"`
	Phone       *string  `json:"phone,omitempty"`
	Description string   `json:"description"`
	Photos      []string `json:"photos,omitempty"`
	Lat         float64  `json:"lat" validate:"required,min=-90,max=90"`
	Lng         float64  `json:"lng" validate:"required,min=-180,max=180"`
}

// ModerateVenueRequest - решение модератора по заявке
type ModerateVenueRequest struct {
	Action string `json:"action" validate:"required,oneof=publish reject"`
}

// ImportVenuesRequest - пакет заведений внешнего провайдера для bulk-импорта
type ImportVenuesRequest struct {
	Venues []ImportVenueInput `json:"venues" validate:"required,min=1,max=500,dive"`
}

// ImportVenueInput - одно заведение в пакете импорта
type ImportVenueInput struct {
	Provider        string   `json:"provider" validate:"required"`
	ProviderPlaceID string   `json:"provider_place_id" validate:"required"`
	Name            string   `json:"name" validate:"required"`
	Category        string   `json:"category" validate:"required"`
	Address         string   `json:"address"`
	Commune         string   `json:"commune"`
	Phone           *string  `json:"phone,omitempty"`
	Description     string   `json:"description"`
	Photos          []string `json:"photos,omitempty"`
	Lat             float64  `json:"lat" validate:"min=-90,max=90"`
	Lng             float64  `json:"lng" validate:"min=-180,max=180"`
}
