package donation

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"foodshare-backend/domain"
	"foodshare-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type listCall struct {
	status        string
	category      string
	unexpiredOnly bool
}

type stubDonationRepo struct {
	donations map[string]*entities.Donation
	boxResult []*entities.Donation
	lastList  listCall
	expired   int64
}

func newStubDonationRepo(donations ...*entities.Donation) *stubDonationRepo {
	repo := &stubDonationRepo{donations: make(map[string]*entities.Donation)}
	for _, d := range donations {
		repo.donations[d.ID.String()] = d
	}
	return repo
}

func (r *stubDonationRepo) CreateDonation(_ context.Context, donation *entities.Donation) error {
	r.donations[donation.ID.String()] = donation
	return nil
}

func (r *stubDonationRepo) GetDonationByID(_ context.Context, id string) (*entities.Donation, error) {
	d, ok := r.donations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *stubDonationRepo) GetDonations(_ context.Context, status, category string, unexpiredOnly bool, _, _ int) ([]*entities.Donation, int64, error) {
	r.lastList = listCall{status: status, category: category, unexpiredOnly: unexpiredOnly}
	return nil, 0, nil
}

func (r *stubDonationRepo) GetUserDonations(context.Context, string, int, int) ([]*entities.Donation, int64, error) {
	return nil, 0, nil
}

func (r *stubDonationRepo) GetDonationsInBox(context.Context, float64, float64, float64, float64) ([]*entities.Donation, error) {
	return r.boxResult, nil
}

func (r *stubDonationRepo) UpdateDonationStatus(_ context.Context, id string, status string) error {
	d, ok := r.donations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	d.Status = status
	return nil
}

func (r *stubDonationRepo) UpdateStatusIf(_ context.Context, id string, from, to string) (bool, error) {
	d, ok := r.donations[id]
	if !ok || d.Status != from {
		return false, nil
	}
	d.Status = to
	return true, nil
}

func (r *stubDonationRepo) DeleteDonation(_ context.Context, id string) error {
	if _, ok := r.donations[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.donations, id)
	return nil
}

func (r *stubDonationRepo) ExpireDonations(context.Context, time.Time) (int64, error) {
	return r.expired, nil
}

type stubS3 struct{}

func (stubS3) UploadFile(name string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	return folder + "/" + name, nil
}

func (stubS3) DownloadFile(string) ([]byte, string, error) { return nil, "", nil }
func (stubS3) DeleteFile(string) error                     { return nil }
func (stubS3) GetPublicLinkKey(key string) string          { return "https://cdn.example.com/" + key }

func validRequest() domain.DonationRequest {
	return domain.DonationRequest{
		FoodType:       "bread",
		Category:       "packaged",
		Quantity:       10,
		ExpirationTime: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		Latitude:       52.52,
		Longitude:      13.405,
	}
}

func TestCreateDonation(t *testing.T) {
	repo := newStubDonationRepo()
	service := NewDonationService(repo, stubS3{})

	result, err := service.CreateDonation(context.Background(), validRequest(), uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusAvailable, result.Status)
	assert.Len(t, repo.donations, 1)
}

func TestCreateDonationPastExpiration(t *testing.T) {
	service := NewDonationService(newStubDonationRepo(), stubS3{})

	req := validRequest()
	req.ExpirationTime = time.Now().Add(-time.Hour).Format(time.RFC3339)
	_, err := service.CreateDonation(context.Background(), req, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrExpirationNotFuture)
}

func TestCreateDonationBadExpirationFormat(t *testing.T) {
	service := NewDonationService(newStubDonationRepo(), stubS3{})

	req := validRequest()
	req.ExpirationTime = "next tuesday"
	_, err := service.CreateDonation(context.Background(), req, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrExpirationNotFuture)
}

func TestGetDonationsDefaultsToAvailableUnexpired(t *testing.T) {
	repo := newStubDonationRepo()
	service := NewDonationService(repo, stubS3{})

	_, _, err := service.GetDonations(context.Background(), domain.ListDonationsRequest{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusAvailable, repo.lastList.status)
	assert.True(t, repo.lastList.unexpiredOnly)
}

func TestGetDonationsExplicitStatus(t *testing.T) {
	repo := newStubDonationRepo()
	service := NewDonationService(repo, stubS3{})

	_, _, err := service.GetDonations(context.Background(), domain.ListDonationsRequest{
		Status: domain.DonationStatusExpired, Page: 1, Limit: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusExpired, repo.lastList.status)
	assert.False(t, repo.lastList.unexpiredOnly)
}

func TestGetDonationsIncludeAll(t *testing.T) {
	repo := newStubDonationRepo()
	service := NewDonationService(repo, stubS3{})

	_, _, err := service.GetDonations(context.Background(), domain.ListDonationsRequest{
		IncludeAll: true, Page: 1, Limit: 20,
	})

	require.NoError(t, err)
	assert.Empty(t, repo.lastList.status)
	assert.False(t, repo.lastList.unexpiredOnly)
}

func TestUpdateDonationStatusOwnership(t *testing.T) {
	donor := uuid.New()
	target := &entities.Donation{
		ID:      uuid.New(),
		DonorID: donor,
		Status:  domain.DonationStatusAvailable,
	}
	repo := newStubDonationRepo(target)
	service := NewDonationService(repo, stubS3{})

	err := service.UpdateDonationStatus(context.Background(), target.ID.String(),
		domain.DonationStatusExpired, uuid.NewString(), domain.RoleDonor)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedDonationAccess)

	err = service.UpdateDonationStatus(context.Background(), target.ID.String(),
		domain.DonationStatusExpired, donor.String(), domain.RoleDonor)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusExpired, target.Status)
}

func TestUpdateDonationStatusPickupRoleLimits(t *testing.T) {
	target := &entities.Donation{
		ID:      uuid.New(),
		DonorID: uuid.New(),
		Status:  domain.DonationStatusPickedUp,
	}
	repo := newStubDonationRepo(target)
	service := NewDonationService(repo, stubS3{})
	volunteer := uuid.NewString()

	err := service.UpdateDonationStatus(context.Background(), target.ID.String(),
		domain.DonationStatusExpired, volunteer, domain.RolePickup)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedDonationAccess)

	err = service.UpdateDonationStatus(context.Background(), target.ID.String(),
		domain.DonationStatusDelivered, volunteer, domain.RolePickup)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusDelivered, target.Status)
}

func TestUpdateDonationStatusRejectsUnknownStatus(t *testing.T) {
	donor := uuid.New()
	target := &entities.Donation{ID: uuid.New(), DonorID: donor, Status: domain.DonationStatusAvailable}
	service := NewDonationService(newStubDonationRepo(target), stubS3{})

	err := service.UpdateDonationStatus(context.Background(), target.ID.String(),
		"eaten", donor.String(), domain.RoleDonor)

	assert.ErrorIs(t, err, domain.ErrInvalidDonationStatus)
}

func TestDeleteDonationRequiresOwnerOrAdmin(t *testing.T) {
	donor := uuid.New()
	target := &entities.Donation{ID: uuid.New(), DonorID: donor, Status: domain.DonationStatusAvailable}
	repo := newStubDonationRepo(target)
	service := NewDonationService(repo, stubS3{})

	err := service.DeleteDonation(context.Background(), target.ID.String(), uuid.NewString(), domain.RoleDonor)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedDonationAccess)

	err = service.DeleteDonation(context.Background(), target.ID.String(), uuid.NewString(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.Empty(t, repo.donations)
}

func TestGetNearbyDonationsSortedByDistance(t *testing.T) {
	far := &entities.Donation{ID: uuid.New(), FoodType: "far", Latitude: 52.60, Longitude: 13.50, Status: domain.DonationStatusAvailable}
	near := &entities.Donation{ID: uuid.New(), FoodType: "near", Latitude: 52.521, Longitude: 13.406, Status: domain.DonationStatusAvailable}
	repo := newStubDonationRepo()
	repo.boxResult = []*entities.Donation{far, near}
	service := NewDonationService(repo, stubS3{})

	result, err := service.GetNearbyDonations(context.Background(), domain.NearbyDonationsRequest{
		Latitude:  52.52,
		Longitude: 13.405,
	})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "near", result[0].FoodType)
	assert.Equal(t, "far", result[1].FoodType)
	assert.Less(t, result[0].Distance, result[1].Distance)
	assert.Greater(t, result[0].Distance, 0.0)
}

func TestExpireDonationsReportsCount(t *testing.T) {
	repo := newStubDonationRepo()
	repo.expired = 3
	service := NewDonationService(repo, stubS3{})

	count, err := service.ExpireDonations(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
