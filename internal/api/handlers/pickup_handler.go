package handlers

import (
	"foodshare-backend/domain"
	"foodshare-backend/internal/api/presenters"
	"foodshare-backend/pkg/pickup"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PickupHandler interface {
		GetPickups(c *fiber.Ctx) error
		GetUserPickups(c *fiber.Ctx) error
		GetPickupByID(c *fiber.Ctx) error
		CreatePickup(c *fiber.Ctx) error
		CompletePickup(c *fiber.Ctx) error
		CancelPickup(c *fiber.Ctx) error
	}

	pickupHandler struct {
		pickupService pickup.PickupService
		validator     *validator.Validate
	}
)

func NewPickupHandler(pickupService pickup.PickupService, validator *validator.Validate) PickupHandler {
	return &pickupHandler{
		pickupService: pickupService,
		validator:     validator,
	}
}

func (h *pickupHandler) GetPickups(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	pickups, count, err := h.pickupService.GetPickups(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedGetPickups, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"pickups":    pickups,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetPickups)
}

func (h *pickupHandler) GetUserPickups(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := parsePagination(c)

	pickups, count, err := h.pickupService.GetUserPickups(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedGetPickups, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"pickups":    pickups,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetPickups)
}

func (h *pickupHandler) GetPickupByID(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	pickupID := c.Params("id")

	res, err := h.pickupService.GetPickupByID(c.Context(), pickupID, userID, role)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedGetPickups, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPickups)
}

func (h *pickupHandler) CreatePickup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreatePickupRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePickup, err)
	}

	res, err := h.pickupService.CreatePickup(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedCreatePickup, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePickup)
}

func (h *pickupHandler) CompletePickup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	pickupID := c.Params("id")

	if err := h.pickupService.CompletePickup(c.Context(), pickupID, userID, role); err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedCompletePickup, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCompletePickup)
}

func (h *pickupHandler) CancelPickup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	pickupID := c.Params("id")

	if err := h.pickupService.CancelPickup(c.Context(), pickupID, userID, role); err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedCancelPickup, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelPickup)
}
