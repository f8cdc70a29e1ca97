package models

type DashboardStats struct {
	Cars             int64                   `json:"cars"`
	AvailableCars    int64                   `json:"available_cars"`
	Users            int64                   `json:"users"`
	BookingsByStatus map[BookingStatus]int64 `json:"bookings_by_status"`
	CompletedRevenue float64                 `json:"completed_revenue"`
}
