package pickup

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"foodshare-backend/domain"
	"foodshare-backend/entities"
	"foodshare-backend/internal/utils/mailing"
	"foodshare-backend/pkg/donation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// PickupService coordinates the donation/pickup lifecycle: claiming an
	// available donation, completing a claim, and cancelling a pending one.
	// It is the only component that moves both records together.
	PickupService interface {
		CreatePickup(ctx context.Context, req domain.CreatePickupRequest, pickupUserID string) (*domain.Pickup, error)
		GetPickups(ctx context.Context, page, limit int) ([]*domain.Pickup, int64, error)
		GetUserPickups(ctx context.Context, pickupUserID string, page, limit int) ([]*domain.Pickup, int64, error)
		GetPickupByID(ctx context.Context, id string, userID, role string) (*domain.Pickup, error)
		CompletePickup(ctx context.Context, id string, userID, role string) error
		CancelPickup(ctx context.Context, id string, userID, role string) error
	}

	pickupService struct {
		pickupRepository   PickupRepository
		donationRepository donation.DonationRepository
		notifier           mailing.Notifier
	}
)

func NewPickupService(pickupRepository PickupRepository, donationRepository donation.DonationRepository, notifier mailing.Notifier) PickupService {
	return &pickupService{
		pickupRepository:   pickupRepository,
		donationRepository: donationRepository,
		notifier:           notifier,
	}
}

// CreatePickup claims an available donation. The donation is moved to
// picked_up with a conditional update before the pickup row is written, so
// concurrent claims against the same donation cannot both succeed.
func (s *pickupService) CreatePickup(ctx context.Context, req domain.CreatePickupRequest, pickupUserID string) (*domain.Pickup, error) {
	pickupUserUUID, err := uuid.Parse(pickupUserID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	target, err := s.donationRepository.GetDonationByID(ctx, req.DonationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if target.Status != domain.DonationStatusAvailable {
		return nil, domain.ErrDonationNotAvailable
	}

	exists, err := s.pickupRepository.HasActivePickup(ctx, req.DonationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrPickupAlreadyExists
	}

	applied, err := s.donationRepository.UpdateStatusIf(ctx, req.DonationID,
		domain.DonationStatusAvailable, domain.DonationStatusPickedUp)
	if err != nil {
		return nil, err
	}
	if !applied {
		// Lost the race to another claimer or the expiry sweep.
		return nil, domain.ErrDonationNotAvailable
	}

	pickup := &entities.Pickup{
		ID:           uuid.New(),
		DonationID:   target.ID,
		PickupUserID: pickupUserUUID,
		Status:       domain.PickupStatusPending,
	}

	if err := s.pickupRepository.CreatePickup(ctx, pickup); err != nil {
		// Put the donation back so it is not stuck in picked_up with no
		// pickup record behind it.
		if _, revertErr := s.donationRepository.UpdateStatusIf(ctx, req.DonationID,
			domain.DonationStatusPickedUp, domain.DonationStatusAvailable); revertErr != nil {
			log.Printf("error reverting donation %s after failed pickup create: %v", req.DonationID, revertErr)
		}
		return nil, err
	}

	s.notifyDonor(target)

	return toDomainPickup(pickup, target), nil
}

func (s *pickupService) notifyDonor(target *entities.Donation) {
	if target.Donor == nil || target.Donor.Email == "" {
		return
	}
	body := fmt.Sprintf(
		"Dear %s, your donation of %s has been requested for pickup.",
		target.Donor.Name, target.FoodType,
	)
	s.notifier.Notify(target.Donor.Email, "Pickup Request for Your Donation", body)
}

func (s *pickupService) GetPickups(ctx context.Context, page, limit int) ([]*domain.Pickup, int64, error) {
	pickups, count, err := s.pickupRepository.GetPickups(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toDomainPickups(pickups), count, nil
}

func (s *pickupService) GetUserPickups(ctx context.Context, pickupUserID string, page, limit int) ([]*domain.Pickup, int64, error) {
	pickups, count, err := s.pickupRepository.GetUserPickups(ctx, pickupUserID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toDomainPickups(pickups), count, nil
}

func (s *pickupService) GetPickupByID(ctx context.Context, id string, userID, role string) (*domain.Pickup, error) {
	pickup, err := s.pickupRepository.GetPickupByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPickupNotFound
		}
		return nil, err
	}

	isClaimant := pickup.PickupUserID.String() == userID
	isDonor := pickup.Donation != nil && pickup.Donation.DonorID.String() == userID
	if !isClaimant && !isDonor && role != domain.RoleAdmin {
		return nil, domain.ErrUnauthorizedPickupAccess
	}

	return toDomainPickup(pickup, pickup.Donation), nil
}

// CompletePickup marks a pending pickup as completed and the donation as
// delivered. The two writes are sequential; delivery state is driven by
// the pickup row, which is updated first.
func (s *pickupService) CompletePickup(ctx context.Context, id string, userID, role string) error {
	pickup, err := s.pickupRepository.GetPickupByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPickupNotFound
		}
		return err
	}

	if pickup.PickupUserID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrUnauthorizedPickupAccess
	}

	if pickup.Status != domain.PickupStatusPending {
		return domain.ErrPickupAlreadyCompleted
	}

	actor := actorForRole(role)
	if pickup.Donation != nil &&
		!canTransition(pickup.Donation.Status, domain.DonationStatusDelivered, actor) {
		return domain.ErrInvalidDonationStatus
	}

	if err := s.pickupRepository.UpdatePickupStatus(ctx, id, domain.PickupStatusCompleted); err != nil {
		return err
	}

	return s.donationRepository.UpdateDonationStatus(ctx, pickup.DonationID.String(), domain.DonationStatusDelivered)
}

// CancelPickup removes a pending claim and returns the donation to the
// available pool. Completed pickups cannot be cancelled.
func (s *pickupService) CancelPickup(ctx context.Context, id string, userID, role string) error {
	pickup, err := s.pickupRepository.GetPickupByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPickupNotFound
		}
		return err
	}

	if pickup.PickupUserID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrUnauthorizedPickupAccess
	}

	if pickup.Status != domain.PickupStatusPending {
		return domain.ErrPickupNotPending
	}

	// A donation whose expiration passed while it was claimed goes
	// straight to expired rather than being re-listed until the next
	// sweep run.
	restored := domain.DonationStatusAvailable
	if pickup.Donation != nil && !pickup.Donation.ExpirationTime.After(time.Now()) {
		restored = domain.DonationStatusExpired
	}

	if err := s.donationRepository.UpdateDonationStatus(ctx, pickup.DonationID.String(), restored); err != nil {
		return err
	}

	return s.pickupRepository.DeletePickup(ctx, id)
}

func actorForRole(role string) string {
	if role == domain.RoleAdmin {
		return ActorAdmin
	}
	return ActorPickup
}

func toDomainPickup(pickup *entities.Pickup, target *entities.Donation) *domain.Pickup {
	result := &domain.Pickup{
		ID:           pickup.ID.String(),
		DonationID:   pickup.DonationID.String(),
		PickupUserID: pickup.PickupUserID.String(),
		Status:       pickup.Status,
		CreatedAt:    pickup.CreatedAt,
		UpdatedAt:    pickup.UpdatedAt,
	}
	if target != nil {
		result.FoodType = target.FoodType
		if target.Donor != nil {
			result.DonorName = target.Donor.Name
		}
	}
	return result
}

func toDomainPickups(pickups []*entities.Pickup) []*domain.Pickup {
	result := make([]*domain.Pickup, 0, len(pickups))
	for _, p := range pickups {
		result = append(result, toDomainPickup(p, p.Donation))
	}
	return result
}
