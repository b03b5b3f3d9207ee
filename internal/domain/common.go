package domain

// Point - координаты точки (WGS84, градусы)
type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

// BoundingBox - прямоугольник для грубого префильтра по индексированным колонкам
type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MinLng float64 `json:"min_lng" db:"min_lng"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
	MaxLng float64 `json:"max_lng" db:"max_lng"`
}
