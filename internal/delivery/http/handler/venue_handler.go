package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venue-microservice/internal/pkg/utils"
	"github.com/venue-microservice/internal/pkg/validator"
	"github.com/venue-microservice/internal/usecase"
	"github.com/venue-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// VenueHandler - обработчик запросов по заведениям
type VenueHandler struct {
	nearbyUC *usecase.NearbyUseCase
	venueUC  *usecase.VenueUseCase
	logger   *zap.Logger
}

// NewVenueHandler - создание нового VenueHandler
func NewVenueHandler(nearbyUC *usecase.NearbyUseCase, venueUC *usecase.VenueUseCase, logger *zap.Logger) *VenueHandler {
	return &VenueHandler{
		nearbyUC: nearbyUC,
		venueUC:  venueUC,
		logger:   logger,
	}
}

// Nearby - поиск опубликованных заведений в радиусе от точки
func (h *VenueHandler) Nearby(c *fiber.Ctx) error {
	lat, err := queryCoord(c, "lat")
	if err != nil {
		return utils.SendError(c, err)
	}
	lng, err := queryCoord(c, "lng")
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.NearbyRequest{
		Lat:      lat,
		Lng:      lng,
		RadiusKm: c.QueryFloat("radius_km", 5),
		Category: c.Query("category", "all"),
		Query:    c.Query("q"),
		Limit:    c.QueryInt("limit"),
	}

	result, err := h.nearbyUC.QueryNearby(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetByID - получение заведения по ID
func (h *VenueHandler) GetByID(c *fiber.Ctx) error {
	venue, err := h.venueUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, venue, nil)
}

// Create - прямое создание заведения (публикуется сразу)
func (h *VenueHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateVenueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	venue, err := h.venueUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: venue})
}

// Submit - публичная заявка на заведение (попадает в pending)
func (h *VenueHandler) Submit(c *fiber.Ctx) error {
	var req dto.CreateVenueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	venue, err := h.venueUC.Submit(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: venue})
}

// Moderate - решение модератора: publish или reject
func (h *VenueHandler) Moderate(c *fiber.Ctx) error {
	var req dto.ModerateVenueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.venueUC.Moderate(c.Context(), c.Params("id"), req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"status": "ok"}, nil)
}

// Import - постановка пакета заведений внешнего провайдера в очередь импорта
func (h *VenueHandler) Import(c *fiber.Ctx) error {
	var req dto.ImportVenuesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.venueUC.QueueImport(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(utils.SuccessResponse{Data: result})
}
