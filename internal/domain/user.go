package domain

import "time"

const (
	RoleJunior = "junior"
	RoleSenior = "senior"
)

type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	Year      int       `json:"year,omitempty"`
	Course    string    `json:"course,omitempty"`
	Points    int       `json:"points"`
	Badge     string    `json:"badge"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	BadgeNone  = "none"
	BadgeTier1 = "tier1"
	BadgeTier2 = "tier2"
	BadgeTier3 = "tier3"
)

// BadgeTier maps a point total to its badge label. Thresholds are
// monotonic, so a senior's badge never goes backwards.
func BadgeTier(points int) string {
	switch {
	case points >= 18:
		return BadgeTier3
	case points >= 9:
		return BadgeTier2
	case points >= 3:
		return BadgeTier1
	default:
		return BadgeNone
	}
}
