package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister   = "user registered successfully"
	MessageSuccessLogin      = "login successful"
	MessageSuccessGetMe      = "profile retrieved successfully"
	MessageSuccessUpdateRole = "user role updated successfully"
	MessageSuccessDeleteUser = "user deleted successfully"
	MessageSuccessGetUsers   = "users retrieved successfully"

	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedGetMe      = "failed to retrieve profile"
	MessageFailedUpdateRole = "failed to update user role"
	MessageFailedDeleteUser = "failed to delete user"
	MessageFailedGetUsers   = "failed to retrieve users"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrCredentialsInvalid = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

type (
	RegisterRequest struct {
		Name      string  `json:"name" validate:"required"`
		Email     string  `json:"email" validate:"required,email"`
		Password  string  `json:"password" validate:"required,min=6"`
		Role      string  `json:"role" validate:"required,oneof=donor pickup admin"`
		Latitude  float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
		Longitude float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
		Name  string `json:"name"`
	}

	UpdateUserRoleRequest struct {
		Role string `json:"role" validate:"required,oneof=donor pickup admin"`
	}

	User struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		Latitude  float64   `json:"latitude"`
		Longitude float64   `json:"longitude"`
		CreatedAt time.Time `json:"created_at"`
	}
)
