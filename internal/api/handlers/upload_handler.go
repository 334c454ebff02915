package handlers

import (
	"fmt"
	"time"

	"foodshare-backend/domain"
	"foodshare-backend/internal/api/presenters"
	"foodshare-backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type (
	UploadHandler interface {
		UploadFile(c *fiber.Ctx) error
		GetFile(c *fiber.Ctx) error
		DeleteFile(c *fiber.Ctx) error
	}

	uploadHandler struct {
		s3 storage.AwsS3
	}
)

func NewUploadHandler(s3 storage.AwsS3) UploadHandler {
	return &uploadHandler{s3: s3}
}

func (h *uploadHandler) UploadFile(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFile, domain.ErrNoFileUploaded)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.New().String())
	key, err := h.s3.UploadFile(name, file, "uploads", storage.AllowImage...)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFile, err)
	}

	return presenters.SuccessResponse(c, domain.UploadResponse{
		Key:      key,
		URL:      h.s3.GetPublicLinkKey(key),
		Size:     file.Size,
		MimeType: file.Header.Get("Content-Type"),
	}, fiber.StatusCreated, domain.MessageSuccessUploadFile)
}

func (h *uploadHandler) GetFile(c *fiber.Ctx) error {
	key := fmt.Sprintf("uploads/%s", c.Params("id"))

	body, contentType, err := h.s3.DownloadFile(key)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFile, domain.ErrFileNotFound)
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(body)
}

func (h *uploadHandler) DeleteFile(c *fiber.Ctx) error {
	key := fmt.Sprintf("uploads/%s", c.Params("id"))

	if err := h.s3.DeleteFile(key); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteFile, domain.ErrFileNotFound)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFile)
}
