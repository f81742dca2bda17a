package domain

import "time"

const (
	MessageTypeText          = "text"
	MessageTypeImage         = "image"
	MessageTypeMeetingInvite = "meeting-invite"
)

// ChatMessage belongs to exactly one doubt and is immutable once created.
type ChatMessage struct {
	ID          uint      `json:"id"`
	DoubtID     uint      `json:"doubt_id"`
	SenderID    uint      `json:"sender_id"`
	Sender      User      `json:"sender"`
	Message     string    `json:"message"`
	Type        string    `json:"type"`
	MeetingLink string    `json:"meeting_link,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
