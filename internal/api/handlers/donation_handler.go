package handlers

import (
	"strconv"

	"foodshare-backend/domain"
	"foodshare-backend/internal/api/presenters"
	"foodshare-backend/pkg/donation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		GetDonations(c *fiber.Ctx) error
		GetUserDonations(c *fiber.Ctx) error
		GetDonationByID(c *fiber.Ctx) error
		CreateDonation(c *fiber.Ctx) error
		UpdateDonationStatus(c *fiber.Ctx) error
		DeleteDonation(c *fiber.Ctx) error
		GetNearbyDonations(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) GetDonations(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	req := domain.ListDonationsRequest{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	}

	donations, count, err := h.donationService.GetDonations(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"donations":  donations,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetUserDonations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	page, limit := parsePagination(c)

	donations, count, err := h.donationService.GetUserDonations(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"donations":  donations,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetDonationByID(c *fiber.Ctx) error {
	donationID := c.Params("id")
	if donationID == "" {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetDonations, domain.ErrDonationNotFound)
	}

	res, err := h.donationService.GetDonationByID(c.Context(), donationID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) CreateDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.DonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image, _ = c.FormFile("image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	res, err := h.donationService.CreateDonation(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedCreateDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) UpdateDonationStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	donationID := c.Params("id")

	req := new(domain.UpdateDonationStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDonation, err)
	}

	if err := h.donationService.UpdateDonationStatus(c.Context(), donationID, req.Status, userID, role); err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedUpdateDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateDonation)
}

func (h *donationHandler) DeleteDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	donationID := c.Params("id")

	if err := h.donationService.DeleteDonation(c.Context(), donationID, userID, role); err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedDeleteDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDonation)
}

func (h *donationHandler) GetNearbyDonations(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Params("lat"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyDonations, domain.ErrInvalidCoordinates)
	}

	lng, err := strconv.ParseFloat(c.Params("lng"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyDonations, domain.ErrInvalidCoordinates)
	}

	maxDistance, err := strconv.ParseFloat(c.Query("maxDistance", "10"), 64)
	if err != nil || maxDistance <= 0 {
		maxDistance = 10
	}

	req := domain.NearbyDonationsRequest{
		Latitude:    lat,
		Longitude:   lng,
		MaxDistance: maxDistance,
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNearbyDonations, err)
	}

	donations, err := h.donationService.GetNearbyDonations(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedGetNearbyDonations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"donations": donations,
		"count":     len(donations),
	}, fiber.StatusOK, domain.MessageSuccessGetNearbyDonations)
}

func parsePagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	return page, limit
}

func paginationMap(page, limit int, count int64) fiber.Map {
	return fiber.Map{
		"page":        page,
		"limit":       limit,
		"total":       count,
		"total_pages": (count + int64(limit) - 1) / int64(limit),
	}
}
