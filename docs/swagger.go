// Package docs Venue Microservice API.
//
// Микросервис каталога заведений. Предоставляет API для поиска ближайших
// опубликованных заведений с фильтрацией по категории и тексту, построения
// маршрутов через Mapbox Directions с кешированием и дедупликацией запросов,
// а также создания, модерации и bulk-импорта заведений через Redis Streams.
//
// Основные возможности:
// - Поиск заведений в радиусе с сортировкой по расстоянию
// - Маршруты driving/walking/cycling с пошаговыми инструкциями
// - Создание и отправка заведений на модерацию
// - Bulk-импорт заведений из внешних провайдеров мест
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
