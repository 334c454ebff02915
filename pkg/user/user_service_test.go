package user

import (
	"context"
	"testing"

	"foodshare-backend/domain"
	"foodshare-backend/entities"
	"foodshare-backend/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	byID    map[string]*entities.User
	byEmail map[string]*entities.User
}

func newStubUserRepo(users ...*entities.User) *stubUserRepo {
	repo := &stubUserRepo{
		byID:    make(map[string]*entities.User),
		byEmail: make(map[string]*entities.User),
	}
	for _, u := range users {
		repo.byID[u.ID.String()] = u
		repo.byEmail[u.Email] = u
	}
	return repo
}

func (r *stubUserRepo) CreateUser(_ context.Context, user *entities.User) error {
	r.byID[user.ID.String()] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *stubUserRepo) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) CheckEmailExists(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *stubUserRepo) GetUsers(_ context.Context, role string, _, _ int) ([]*entities.User, int64, error) {
	var result []*entities.User
	for _, u := range r.byID {
		if role == "" || u.Role == role {
			result = append(result, u)
		}
	}
	return result, int64(len(result)), nil
}

func (r *stubUserRepo) UpdateUserRole(_ context.Context, id string, role string) error {
	u, ok := r.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Role = role
	return nil
}

func (r *stubUserRepo) DeleteUser(_ context.Context, id string) error {
	u, ok := r.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.byEmail, u.Email)
	delete(r.byID, id)
	return nil
}

type stubJWT struct{}

func (stubJWT) GenerateTokenUser(string, string, string) string  { return "signed-token" }
func (stubJWT) ValidateTokenUser(string) (*gojwt.Token, error)   { return nil, nil }
func (stubJWT) GetClaimsByToken(string) (*jwt.UserClaims, error) { return nil, nil }

func TestRegisterHashesPasswordAndLowercasesEmail(t *testing.T) {
	repo := newStubUserRepo()
	service := NewUserService(repo, stubJWT{})

	err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ben",
		Email:    "  Ben@Example.COM ",
		Password: "hunter22",
		Role:     domain.RoleDonor,
	})

	require.NoError(t, err)
	stored, ok := repo.byEmail["ben@example.com"]
	require.True(t, ok, "email must be stored lowercased and trimmed")
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter22")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	existing := &entities.User{ID: uuid.New(), Email: "taken@example.com", Role: domain.RoleDonor}
	service := NewUserService(newStubUserRepo(existing), stubJWT{})

	err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ben",
		Email:    "Taken@example.com",
		Password: "hunter22",
		Role:     domain.RolePickup,
	})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func loginFixture(t *testing.T) *entities.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	return &entities.User{
		ID:       uuid.New(),
		Name:     "Ben",
		Email:    "ben@example.com",
		Password: string(hashed),
		Role:     domain.RolePickup,
	}
}

func TestLogin(t *testing.T) {
	service := NewUserService(newStubUserRepo(loginFixture(t)), stubJWT{})

	result, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "Ben@Example.com",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, domain.RolePickup, result.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	service := NewUserService(newStubUserRepo(loginFixture(t)), stubJWT{})

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "ben@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLoginUnknownEmail(t *testing.T) {
	service := NewUserService(newStubUserRepo(), stubJWT{})

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter22",
	})

	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestUpdateUserRole(t *testing.T) {
	target := loginFixture(t)
	service := NewUserService(newStubUserRepo(target), stubJWT{})

	result, err := service.UpdateUserRole(context.Background(), target.ID.String(), domain.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, result.Role)
}

func TestUpdateUserRoleInvalid(t *testing.T) {
	target := loginFixture(t)
	service := NewUserService(newStubUserRepo(target), stubJWT{})

	_, err := service.UpdateUserRole(context.Background(), target.ID.String(), "superuser")

	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestDeleteUserNotFound(t *testing.T) {
	service := NewUserService(newStubUserRepo(), stubJWT{})

	err := service.DeleteUser(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
