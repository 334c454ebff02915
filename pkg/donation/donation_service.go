package donation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"foodshare-backend/domain"
	"foodshare-backend/entities"
	"foodshare-backend/internal/utils"
	"foodshare-backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultNearbyDistanceKm = 10

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.DonationRequest, donorID string) (*domain.Donation, error)
		GetDonations(ctx context.Context, req domain.ListDonationsRequest) ([]*domain.Donation, int64, error)
		GetUserDonations(ctx context.Context, donorID string, page, limit int) ([]*domain.Donation, int64, error)
		GetDonationByID(ctx context.Context, id string) (*domain.Donation, error)
		UpdateDonationStatus(ctx context.Context, id string, status string, userID, role string) error
		DeleteDonation(ctx context.Context, id string, userID, role string) error
		GetNearbyDonations(ctx context.Context, req domain.NearbyDonationsRequest) ([]*domain.Donation, error)
		ExpireDonations(ctx context.Context) (int64, error)
	}

	donationService struct {
		donationRepository DonationRepository
		s3                 storage.AwsS3
	}
)

func NewDonationService(donationRepository DonationRepository, s3 storage.AwsS3) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		s3:                 s3,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.DonationRequest, donorID string) (*domain.Donation, error) {
	donorUUID, err := uuid.Parse(donorID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	expirationTime, err := time.Parse(time.RFC3339, req.ExpirationTime)
	if err != nil {
		return nil, domain.ErrExpirationNotFuture
	}
	if !expirationTime.After(time.Now()) {
		return nil, domain.ErrExpirationNotFuture
	}

	donationID := uuid.New()

	var imageURL string
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("donation-%s", donationID.String()),
			req.Image,
			"donations",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	donation := &entities.Donation{
		ID:             donationID,
		DonorID:        donorUUID,
		FoodType:       req.FoodType,
		Category:       req.Category,
		Quantity:       req.Quantity,
		ExpirationTime: expirationTime,
		Status:         domain.DonationStatusAvailable,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		ImageURL:       imageURL,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	return toDomainDonation(donation), nil
}

func (s *donationService) GetDonations(ctx context.Context, req domain.ListDonationsRequest) ([]*domain.Donation, int64, error) {
	// Public listing defaults to available, unexpired donations.
	status := req.Status
	unexpiredOnly := false
	if status == "" && !req.IncludeAll {
		status = domain.DonationStatusAvailable
		unexpiredOnly = true
	}

	donations, count, err := s.donationRepository.GetDonations(ctx, status, req.Category, unexpiredOnly, req.Page, req.Limit)
	if err != nil {
		return nil, 0, err
	}

	return toDomainDonations(donations), count, nil
}

func (s *donationService) GetUserDonations(ctx context.Context, donorID string, page, limit int) ([]*domain.Donation, int64, error) {
	donations, count, err := s.donationRepository.GetUserDonations(ctx, donorID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toDomainDonations(donations), count, nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string) (*domain.Donation, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	return toDomainDonation(donation), nil
}

// UpdateDonationStatus is the direct status edit behind PUT /donations/:id.
// It checks ownership and enum membership only; the claim/complete/cancel
// lifecycle is enforced by the pickup coordinator, not here.
func (s *donationService) UpdateDonationStatus(ctx context.Context, id string, status string, userID, role string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	switch status {
	case domain.DonationStatusAvailable, domain.DonationStatusPickedUp,
		domain.DonationStatusDelivered, domain.DonationStatusExpired:
	default:
		return domain.ErrInvalidDonationStatus
	}

	isOwner := donation.DonorID.String() == userID
	isAdmin := role == domain.RoleAdmin
	isPickup := role == domain.RolePickup
	if !isOwner && !isAdmin && !isPickup {
		return domain.ErrUnauthorizedDonationAccess
	}
	// Pickup volunteers may only move a donation through the handover
	// states; everything else needs the owner or an admin.
	if isPickup && !isOwner && !isAdmin &&
		status != domain.DonationStatusPickedUp && status != domain.DonationStatusDelivered {
		return domain.ErrUnauthorizedDonationAccess
	}

	return s.donationRepository.UpdateDonationStatus(ctx, id, status)
}

func (s *donationService) DeleteDonation(ctx context.Context, id string, userID, role string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	if donation.DonorID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrUnauthorizedDonationAccess
	}

	return s.donationRepository.DeleteDonation(ctx, id)
}

func (s *donationService) GetNearbyDonations(ctx context.Context, req domain.NearbyDonationsRequest) ([]*domain.Donation, error) {
	maxDistance := req.MaxDistance
	if maxDistance <= 0 {
		maxDistance = defaultNearbyDistanceKm
	}

	minLat, maxLat, minLng, maxLng := utils.BoundingBox(req.Latitude, req.Longitude, maxDistance)

	donations, err := s.donationRepository.GetDonationsInBox(ctx, minLat, maxLat, minLng, maxLng)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Donation, 0, len(donations))
	for _, d := range donations {
		dd := toDomainDonation(d)
		dd.Distance = utils.HaversineDistance(req.Latitude, req.Longitude, d.Latitude, d.Longitude)
		result = append(result, dd)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Distance < result[j].Distance
	})

	return result, nil
}

func (s *donationService) ExpireDonations(ctx context.Context) (int64, error) {
	return s.donationRepository.ExpireDonations(ctx, time.Now())
}

func toDomainDonation(donation *entities.Donation) *domain.Donation {
	result := &domain.Donation{
		ID:             donation.ID.String(),
		DonorID:        donation.DonorID.String(),
		FoodType:       donation.FoodType,
		Category:       donation.Category,
		Quantity:       donation.Quantity,
		ExpirationTime: donation.ExpirationTime,
		Status:         donation.Status,
		Latitude:       donation.Latitude,
		Longitude:      donation.Longitude,
		ImageURL:       donation.ImageURL,
		CreatedAt:      donation.CreatedAt,
		UpdatedAt:      donation.UpdatedAt,
	}
	if donation.Donor != nil {
		result.DonorName = donation.Donor.Name
	}
	return result
}

func toDomainDonations(donations []*entities.Donation) []*domain.Donation {
	result := make([]*domain.Donation, 0, len(donations))
	for _, d := range donations {
		result = append(result, toDomainDonation(d))
	}
	return result
}
