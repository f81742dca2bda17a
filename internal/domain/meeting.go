package domain

import "time"

type Meeting struct {
	ID          uint      `json:"id"`
	DoubtID     uint      `json:"doubt_id"`
	CreatedByID uint      `json:"created_by_id"`
	MeetingLink string    `json:"meeting_link"`
	CreatedAt   time.Time `json:"created_at"`
}
