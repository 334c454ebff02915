package domain

var (
	MessageSuccessGetStats = "statistics retrieved successfully"
	MessageFailedGetStats  = "failed to retrieve statistics"
)

type AdminStats struct {
	TotalUsers        int64            `json:"total_users"`
	TotalDonations    int64            `json:"total_donations"`
	TotalPickups      int64            `json:"total_pickups"`
	TotalDropOffs     int64            `json:"total_drop_offs"`
	UsersByRole       map[string]int64 `json:"users_by_role"`
	DonationsByStatus map[string]int64 `json:"donations_by_status"`
	RecentDonations   []*Donation      `json:"recent_donations"`
	RecentUsers       []*User          `json:"recent_users"`
}
