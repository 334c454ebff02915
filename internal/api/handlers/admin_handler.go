package handlers

import (
	"foodshare-backend/domain"
	"foodshare-backend/internal/api/presenters"
	"foodshare-backend/pkg/admin"
	"foodshare-backend/pkg/donation"
	"foodshare-backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetStats(c *fiber.Ctx) error
		GetUsers(c *fiber.Ctx) error
		UpdateUserRole(c *fiber.Ctx) error
		DeleteUser(c *fiber.Ctx) error
		GetDonations(c *fiber.Ctx) error
		ExpireDonations(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService    admin.AdminService
		userService     user.UserService
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewAdminHandler(adminService admin.AdminService, userService user.UserService, donationService donation.DonationService, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		adminService:    adminService,
		userService:     userService,
		donationService: donationService,
		validator:       validator,
	}
}

func (h *adminHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.adminService.GetStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStats)
}

func (h *adminHandler) GetUsers(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	role := c.Query("role")

	users, count, err := h.userService.GetUsers(c.Context(), role, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"users":      users,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *adminHandler) UpdateUserRole(c *fiber.Ctx) error {
	userID := c.Params("id")

	req := new(domain.UpdateUserRoleRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRole, err)
	}

	res, err := h.userService.UpdateUserRole(c.Context(), userID, req.Role)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedUpdateRole, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRole)
}

func (h *adminHandler) DeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")

	if err := h.userService.DeleteUser(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedDeleteUser, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteUser)
}

func (h *adminHandler) GetDonations(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	req := domain.ListDonationsRequest{
		Status:     c.Query("status"),
		IncludeAll: true,
		Page:       page,
		Limit:      limit,
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

func (h *adminHandler) ExpireDonations(c *fiber.Ctx) error {
	count, err := h.donationService.ExpireDonations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedExpireDonations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"expired": count,
	}, fiber.StatusOK, domain.MessageSuccessExpireDonations)
}
