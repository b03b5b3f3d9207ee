package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venue-microservice/internal/pkg/utils"
	"github.com/venue-microservice/internal/usecase"
	"github.com/venue-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler - обработчик запросов маршрутизации
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// GetRoute - построение маршрута между двумя точками
func (h *RouteHandler) GetRoute(c *fiber.Ctx) error {
	req := dto.RouteRequest{
		Mode: c.Query("mode", "driving"),
	}

	var err error
	if req.OriginLng, err = queryCoord(c, "origin_lng"); err != nil {
		return utils.SendError(c, err)
	}
	if req.OriginLat, err = queryCoord(c, "origin_lat"); err != nil {
		return utils.SendError(c, err)
	}
	if req.DestLng, err = queryCoord(c, "dest_lng"); err != nil {
		return utils.SendError(c, err)
	}
	if req.DestLat, err = queryCoord(c, "dest_lat"); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.GetRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
