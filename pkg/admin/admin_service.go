package admin

import (
	"context"

	"foodshare-backend/domain"
)

const recentListLimit = 10

type (
	AdminService interface {
		GetStats(ctx context.Context) (*domain.AdminStats, error)
	}

	adminService struct {
		adminRepository AdminRepository
	}
)

func NewAdminService(adminRepository AdminRepository) AdminService {
	return &adminService{adminRepository: adminRepository}
}

func (s *adminService) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	totalUsers, err := s.adminRepository.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	totalDonations, err := s.adminRepository.CountDonations(ctx)
	if err != nil {
		return nil, err
	}
	totalPickups, err := s.adminRepository.CountPickups(ctx)
	if err != nil {
		return nil, err
	}
	totalDropOffs, err := s.adminRepository.CountDropOffs(ctx)
	if err != nil {
		return nil, err
	}
	usersByRole, err := s.adminRepository.CountUsersByRole(ctx)
	if err != nil {
		return nil, err
	}
	donationsByStatus, err := s.adminRepository.CountDonationsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	recentDonations, err := s.adminRepository.GetRecentDonations(ctx, recentListLimit)
	if err != nil {
		return nil, err
	}
	recentUsers, err := s.adminRepository.GetRecentUsers(ctx, recentListLimit)
	if err != nil {
		return nil, err
	}

	stats := &domain.AdminStats{
		TotalUsers:        totalUsers,
		TotalDonations:    totalDonations,
		TotalPickups:      totalPickups,
		TotalDropOffs:     totalDropOffs,
		UsersByRole:       usersByRole,
		DonationsByStatus: donationsByStatus,
		RecentDonations:   make([]*domain.Donation, 0, len(recentDonations)),
		RecentUsers:       make([]*domain.User, 0, len(recentUsers)),
	}

	for _, d := range recentDonations {
		donation := &domain.Donation{
			ID:             d.ID.String(),
			DonorID:        d.DonorID.String(),
			FoodType:       d.FoodType,
			Category:       d.Category,
			Quantity:       d.Quantity,
			ExpirationTime: d.ExpirationTime,
			Status:         d.Status,
			CreatedAt:      d.CreatedAt,
			UpdatedAt:      d.UpdatedAt,
		}
		if d.Donor != nil {
			donation.DonorName = d.Donor.Name
		}
		stats.RecentDonations = append(stats.RecentDonations, donation)
	}

	for _, u := range recentUsers {
		stats.RecentUsers = append(stats.RecentUsers, &domain.User{
			ID:        u.ID.String(),
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}

	return stats, nil
}
