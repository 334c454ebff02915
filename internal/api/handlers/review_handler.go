package handlers

import (
	"foodshare-backend/domain"
	"foodshare-backend/internal/api/presenters"
	"foodshare-backend/pkg/review"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReviewHandler interface {
		CreateReview(c *fiber.Ctx) error
		GetUserReviews(c *fiber.Ctx) error
		GetGivenReviews(c *fiber.Ctx) error
		GetReceivedReviews(c *fiber.Ctx) error
		UpdateReview(c *fiber.Ctx) error
		DeleteReview(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
		validator     *validator.Validate
	}
)

func NewReviewHandler(reviewService review.ReviewService, validator *validator.Validate) ReviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
		validator:     validator,
	}
}

func (h *reviewHandler) CreateReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.ReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReview, err)
	}

	res, err := h.reviewService.CreateReview(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedCreateReview, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReview)
}

func (h *reviewHandler) GetUserReviews(c *fiber.Ctx) error {
	revieweeID := c.Params("id")

	res, err := h.reviewService.GetUserReviews(c.Context(), revieweeID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *reviewHandler) GetGivenReviews(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	reviews, err := h.reviewService.GetGivenReviews(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"reviews": reviews,
	}, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *reviewHandler) GetReceivedReviews(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.reviewService.GetUserReviews(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *reviewHandler) UpdateReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	reviewID := c.Params("id")

	req := new(domain.UpdateReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReview, err)
	}

	res, err := h.reviewService.UpdateReview(c.Context(), reviewID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedUpdateReview, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateReview)
}

func (h *reviewHandler) DeleteReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	reviewID := c.Params("id")

	if err := h.reviewService.DeleteReview(c.Context(), reviewID, userID, role); err != nil {
		return presenters.ErrorResponse(c, domain.HTTPStatus(err), domain.MessageFailedDeleteReview, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReview)
}
