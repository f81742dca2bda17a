package domain

import "time"

// LeaderboardEntry is a cached projection of a senior's User.Points.
// Rank is positional in a points-descending sort and is never stored.
type LeaderboardEntry struct {
	ID        uint      `json:"id"`
	SeniorID  uint      `json:"senior_id"`
	Senior    User      `json:"senior"`
	Points    int       `json:"points"`
	Rank      int       `json:"rank,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
