package admin

import (
	"context"
	"testing"

	"foodshare-backend/domain"
	"foodshare-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdminRepo struct {
	users     []*entities.User
	donations []*entities.Donation
	pickups   int64
	dropOffs  int64
}

func (r *stubAdminRepo) CountUsers(context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubAdminRepo) CountDonations(context.Context) (int64, error) {
	return int64(len(r.donations)), nil
}

func (r *stubAdminRepo) CountPickups(context.Context) (int64, error)  { return r.pickups, nil }
func (r *stubAdminRepo) CountDropOffs(context.Context) (int64, error) { return r.dropOffs, nil }

func (r *stubAdminRepo) CountUsersByRole(context.Context) (map[string]int64, error) {
	result := make(map[string]int64)
	for _, u := range r.users {
		result[u.Role]++
	}
	return result, nil
}

func (r *stubAdminRepo) CountDonationsByStatus(context.Context) (map[string]int64, error) {
	result := make(map[string]int64)
	for _, d := range r.donations {
		result[d.Status]++
	}
	return result, nil
}

func (r *stubAdminRepo) GetRecentDonations(_ context.Context, limit int) ([]*entities.Donation, error) {
	if len(r.donations) > limit {
		return r.donations[:limit], nil
	}
	return r.donations, nil
}

func (r *stubAdminRepo) GetRecentUsers(_ context.Context, limit int) ([]*entities.User, error) {
	if len(r.users) > limit {
		return r.users[:limit], nil
	}
	return r.users, nil
}

func TestGetStats(t *testing.T) {
	repo := &stubAdminRepo{
		users: []*entities.User{
			{ID: uuid.New(), Name: "Ana", Role: domain.RoleDonor},
			{ID: uuid.New(), Name: "Ben", Role: domain.RolePickup},
			{ID: uuid.New(), Name: "Root", Role: domain.RoleAdmin},
		},
		donations: []*entities.Donation{
			{ID: uuid.New(), DonorID: uuid.New(), Status: domain.DonationStatusAvailable},
			{ID: uuid.New(), DonorID: uuid.New(), Status: domain.DonationStatusAvailable},
			{ID: uuid.New(), DonorID: uuid.New(), Status: domain.DonationStatusDelivered},
		},
		pickups:  2,
		dropOffs: 1,
	}
	service := NewAdminService(repo)

	stats, err := service.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.TotalDonations)
	assert.Equal(t, int64(2), stats.TotalPickups)
	assert.Equal(t, int64(1), stats.TotalDropOffs)
	assert.Equal(t, int64(2), stats.DonationsByStatus[domain.DonationStatusAvailable])
	assert.Equal(t, int64(1), stats.UsersByRole[domain.RoleAdmin])
	assert.Len(t, stats.RecentDonations, 3)
	assert.Len(t, stats.RecentUsers, 3)
}
