package handlers

import (
	"strconv"

	"foodshare-backend/domain"
	"foodshare-backend/internal/api/presenters"
	"foodshare-backend/pkg/dropoff"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DropOffHandler interface {
		GetDropOffs(c *fiber.Ctx) error
		GetNearbyDropOffs(c *fiber.Ctx) error
		CreateDropOff(c *fiber.Ctx) error
		UpdateDropOff(c *fiber.Ctx) error
		DeleteDropOff(c *fiber.Ctx) error
	}

	dropOffHandler struct {
		dropOffService dropoff.DropOffService
		validator      *validator.Validate
	}
)

func NewDropOffHandler(dropOffService dropoff.DropOffService, validator *validator.Validate) DropOffHandler {
	return &dropOffHandler{
		dropOffService: dropOffService,
		validator:      validator,
	}
}

func (h *dropOffHandler) GetDropOffs(c *fiber.Ctx) error {
	dropOffs, err := h.dropOffService.GetDropOffs(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedGetDropOffs, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"drop_offs": dropOffs,
		"count":     len(dropOffs),
	}, fiber.StatusOK, domain.MessageSuccessGetDropOffs)
}

func (h *dropOffHandler) GetNearbyDropOffs(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyDropOffs, domain.ErrInvalidCoordinates)
	}

	lng, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyDropOffs, domain.ErrInvalidCoordinates)
	}

	maxDistance, err := strconv.ParseFloat(c.Query("maxDistance", "10"), 64)
	if err != nil || maxDistance <= 0 {
		maxDistance = 10
	}

	dropOffs, err := h.dropOffService.GetNearbyDropOffs(c.Context(), lat, lng, maxDistance)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedGetNearbyDropOffs, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"drop_offs": dropOffs,
		"count":     len(dropOffs),
	}, fiber.StatusOK, domain.MessageSuccessGetNearbyDropOffs)
}

func (h *dropOffHandler) CreateDropOff(c *fiber.Ctx) error {
	req := new(domain.DropOffRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDropOff, err)
	}

	res, err := h.dropOffService.CreateDropOff(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedCreateDropOff, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDropOff)
}

func (h *dropOffHandler) UpdateDropOff(c *fiber.Ctx) error {
	dropOffID := c.Params("id")

	req := new(domain.UpdateDropOffRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDropOff, err)
	}

	res, err := h.dropOffService.UpdateDropOff(c.Context(), dropOffID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedUpdateDropOff, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateDropOff)
}

func (h *dropOffHandler) DeleteDropOff(c *fiber.Ctx) error {
	dropOffID := c.Params("id")

	if err := h.dropOffService.DeleteDropOff(c.Context(), dropOffID); err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedDeleteDropOff, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDropOff)
}
