package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrCredentialsInvalid, fiber.StatusUnauthorized},
		{ErrTokenExpired, fiber.StatusUnauthorized},
		{ErrUnauthorizedPickupAccess, fiber.StatusForbidden},
		{ErrDonationNotFound, fiber.StatusNotFound},
		{ErrEmailAlreadyExists, fiber.StatusConflict},
		{ErrDonationNotAvailable, fiber.StatusConflict},
		{ErrPickupAlreadyCompleted, fiber.StatusConflict},
		{ErrExpirationNotFuture, fiber.StatusBadRequest},
		{fmt.Errorf("claiming donation: %w", ErrDonationNotAvailable), fiber.StatusConflict},
		{errors.New("database on fire"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}
