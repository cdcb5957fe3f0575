package dto

import "time"

// TechnicianStanding is one leaderboard row of the cross-operator overview.
type TechnicianStanding struct {
	TechnicianID     uint    `json:"technician_id"`
	TechnicianName   string  `json:"technician_name"`
	OperatorID       uint    `json:"operator_id"`
	AssignedTickets  int     `json:"assigned_tickets"`
	ResolvedTickets  int     `json:"resolved_tickets"`
	TotalPoints      float64 `json:"total_points"`
	MaxPossiblePoints float64 `json:"max_possible_points"`
	WalletBalance    float64 `json:"wallet_balance"`
}

// OverviewSnapshot is the aggregation poller's output, refreshed on a fixed
// interval rather than computed per request.
type OverviewSnapshot struct {
	GeneratedAt  time.Time            `json:"generated_at"`
	TotalTickets int                  `json:"total_tickets"`
	OpenTickets  int                  `json:"open_tickets"`
	Leaderboard  []TechnicianStanding `json:"leaderboard"`
}
