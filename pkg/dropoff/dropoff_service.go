package dropoff

import (
	"context"
	"errors"
	"sort"

	"foodshare-backend/domain"
	"foodshare-backend/entities"
	"foodshare-backend/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultNearbyDistanceKm = 10

type (
	DropOffService interface {
		CreateDropOff(ctx context.Context, req domain.DropOffRequest) (*domain.DropOff, error)
		GetDropOffs(ctx context.Context) ([]*domain.DropOff, error)
		GetNearbyDropOffs(ctx context.Context, lat, lng, maxDistance float64) ([]*domain.DropOff, error)
		UpdateDropOff(ctx context.Context, id string, req domain.UpdateDropOffRequest) (*domain.DropOff, error)
		DeleteDropOff(ctx context.Context, id string) error
	}

	dropOffService struct {
		dropOffRepository DropOffRepository
	}
)

func NewDropOffService(dropOffRepository DropOffRepository) DropOffService {
	return &dropOffService{dropOffRepository: dropOffRepository}
}

func (s *dropOffService) CreateDropOff(ctx context.Context, req domain.DropOffRequest) (*domain.DropOff, error) {
	dropOff := &entities.DropOff{
		ID:        uuid.New(),
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	if err := s.dropOffRepository.CreateDropOff(ctx, dropOff); err != nil {
		return nil, err
	}

	return toDomainDropOff(dropOff), nil
}

func (s *dropOffService) GetDropOffs(ctx context.Context) ([]*domain.DropOff, error) {
	dropOffs, err := s.dropOffRepository.GetDropOffs(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DropOff, 0, len(dropOffs))
	for _, d := range dropOffs {
		result = append(result, toDomainDropOff(d))
	}
	return result, nil
}

func (s *dropOffService) GetNearbyDropOffs(ctx context.Context, lat, lng, maxDistance float64) ([]*domain.DropOff, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, domain.ErrInvalidCoordinates
	}
	if maxDistance <= 0 {
		maxDistance = defaultNearbyDistanceKm
	}

	minLat, maxLat, minLng, maxLng := utils.BoundingBox(lat, lng, maxDistance)

	dropOffs, err := s.dropOffRepository.GetDropOffsInBox(ctx, minLat, maxLat, minLng, maxLng)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DropOff, 0, len(dropOffs))
	for _, d := range dropOffs {
		dd := toDomainDropOff(d)
		dd.Distance = utils.HaversineDistance(lat, lng, d.Latitude, d.Longitude)
		result = append(result, dd)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Distance < result[j].Distance
	})

	return result, nil
}

func (s *dropOffService) UpdateDropOff(ctx context.Context, id string, req domain.UpdateDropOffRequest) (*domain.DropOff, error) {
	dropOff, err := s.dropOffRepository.GetDropOffByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDropOffNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		dropOff.Name = req.Name
	}
	if req.Address != "" {
		dropOff.Address = req.Address
	}
	if req.Latitude != nil && req.Longitude != nil {
		dropOff.Latitude = *req.Latitude
		dropOff.Longitude = *req.Longitude
	}

	if err := s.dropOffRepository.UpdateDropOff(ctx, dropOff); err != nil {
		return nil, err
	}

	return toDomainDropOff(dropOff), nil
}

func (s *dropOffService) DeleteDropOff(ctx context.Context, id string) error {
	if err := s.dropOffRepository.DeleteDropOff(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDropOffNotFound
		}
		return err
	}
	return nil
}

func toDomainDropOff(dropOff *entities.DropOff) *domain.DropOff {
	return &domain.DropOff{
		ID:        dropOff.ID.String(),
		Name:      dropOff.Name,
		Address:   dropOff.Address,
		Latitude:  dropOff.Latitude,
		Longitude: dropOff.Longitude,
		CreatedAt: dropOff.CreatedAt,
	}
}
