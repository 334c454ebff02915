package jwt

import (
	"testing"

	"foodshare-backend/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() JWTService {
	return &jwtService{secretKey: "test-secret", issuer: "FOODSHARE"}
}

func TestTokenRoundTrip(t *testing.T) {
	service := testService()
	userID := uuid.NewString()

	token := service.GenerateTokenUser(userID, domain.RolePickup, "Ben")
	require.NotEmpty(t, token)

	claims, err := service.GetClaimsByToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, domain.RolePickup, claims.Role)
	assert.Equal(t, "Ben", claims.Name)
}

func TestTokenWrongSecret(t *testing.T) {
	token := testService().GenerateTokenUser(uuid.NewString(), domain.RoleDonor, "Ana")

	other := &jwtService{secretKey: "other-secret", issuer: "FOODSHARE"}
	_, err := other.GetClaimsByToken(token)

	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenGarbage(t *testing.T) {
	_, err := testService().GetClaimsByToken("not.a.token")

	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
