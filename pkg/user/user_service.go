package user

import (
	"context"
	"errors"
	"strings"

	"foodshare-backend/domain"
	"foodshare-backend/entities"
	"foodshare-backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) error
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (*domain.User, error)
		GetUsers(ctx context.Context, role string, page, limit int) ([]*domain.User, int64, error)
		UpdateUserRole(ctx context.Context, id string, role string) (*domain.User, error)
		DeleteUser(ctx context.Context, id string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepository.CheckEmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &entities.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     email,
		Password:  string(hashed),
		Role:      req.Role,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	return s.userRepository.CreateUser(ctx, user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCredentialsInvalid
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role, user.Name)

	return &domain.LoginResponse{
		Token: token,
		Role:  user.Role,
		Name:  user.Name,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return toDomainUser(user), nil
}

func (s *userService) GetUsers(ctx context.Context, role string, page, limit int) ([]*domain.User, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, role, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.User, 0, len(users))
	for _, u := range users {
		result = append(result, toDomainUser(u))
	}

	return result, count, nil
}

func (s *userService) UpdateUserRole(ctx context.Context, id string, role string) (*domain.User, error) {
	valid := false
	for _, r := range domain.ValidRoles {
		if r == role {
			valid = true
			break
		}
	}
	if !valid {
		return nil, domain.ErrInvalidRole
	}

	if err := s.userRepository.UpdateUserRole(ctx, id, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toDomainUser(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

func toDomainUser(user *entities.User) *domain.User {
	return &domain.User{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Latitude:  user.Latitude,
		Longitude: user.Longitude,
		CreatedAt: user.CreatedAt,
	}
}
