package domain

import "time"

type Doubt struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	AskedByID        uint      `json:"asked_by_id"`
	AskedBy          User      `json:"asked_by"`
	AnsweredByID     *uint     `json:"answered_by_id,omitempty"`
	AnsweredBy       *User     `json:"answered_by,omitempty"`
	SeniorAssignedID *uint     `json:"senior_assigned_id,omitempty"`
	SeniorAssigned   *User     `json:"senior_assigned,omitempty"`
	IsSolved         bool      `json:"is_solved"`
	Answer           string    `json:"answer,omitempty"`
	ImageURL         string    `json:"image_url,omitempty"`
	MeetingLink      string    `json:"meeting_link,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
