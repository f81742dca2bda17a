package realtime

import (
	"encoding/json"
	"time"

	"github.com/doubtlink/doubtlink-api/internal/domain"
)

// Wire event names. Chat messages and meeting invites share one event kind:
// starting a meeting synthesizes a meeting-invite chat message instead of
// emitting its own event.
const (
	EventChatMessage   = "receiveMessage"
	EventDoubtCreated  = "doubt:new"
	EventDoubtAnswered = "doubtReplied"

	EventSendMessage = "sendMessage" // inbound, client-originated
)

// Envelope is the frame exchanged with websocket clients, discriminated by
// the event tag.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// SendMessagePayload is the inbound "sendMessage" contract. Identity travels
// in the payload; the transport itself is anonymous.
type SendMessagePayload struct {
	DoubtID     uint   `json:"doubtId"`
	SenderID    uint   `json:"senderId"`
	Message     string `json:"message"`
	Type        string `json:"type"`
	MeetingLink string `json:"meetingLink,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Outbound payloads carry the same camelCase keys as the inbound contract.
// HTTP responses keep their own snake_case shapes; these types exist so the
// two surfaces can diverge without either leaking into the other.

type UserPayload struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Year   int    `json:"year,omitempty"`
	Course string `json:"course,omitempty"`
	Points int    `json:"points"`
	Badge  string `json:"badge"`
}

type ChatMessagePayload struct {
	ID          uint        `json:"id"`
	DoubtID     uint        `json:"doubtId"`
	SenderID    uint        `json:"senderId"`
	Sender      UserPayload `json:"sender"`
	Message     string      `json:"message"`
	Type        string      `json:"type"`
	MeetingLink string      `json:"meetingLink,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type DoubtPayload struct {
	ID               uint         `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	AskedByID        uint         `json:"askedById"`
	AskedBy          UserPayload  `json:"askedBy"`
	AnsweredByID     *uint        `json:"answeredById,omitempty"`
	AnsweredBy       *UserPayload `json:"answeredBy,omitempty"`
	SeniorAssignedID *uint        `json:"seniorAssignedId,omitempty"`
	SeniorAssigned   *UserPayload `json:"seniorAssigned,omitempty"`
	IsSolved         bool         `json:"isSolved"`
	Answer           string       `json:"answer,omitempty"`
	ImageURL         string       `json:"imageUrl,omitempty"`
	MeetingLink      string       `json:"meetingLink,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

func NewUserPayload(u domain.User) UserPayload {
	return UserPayload{
		ID:     u.ID,
		Name:   u.Name,
		Role:   u.Role,
		Year:   u.Year,
		Course: u.Course,
		Points: u.Points,
		Badge:  u.Badge,
	}
}

func NewChatMessagePayload(m domain.ChatMessage) ChatMessagePayload {
	return ChatMessagePayload{
		ID:          m.ID,
		DoubtID:     m.DoubtID,
		SenderID:    m.SenderID,
		Sender:      NewUserPayload(m.Sender),
		Message:     m.Message,
		Type:        m.Type,
		MeetingLink: m.MeetingLink,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
	}
}

func NewDoubtPayload(d domain.Doubt) DoubtPayload {
	payload := DoubtPayload{
		ID:               d.ID,
		Title:            d.Title,
		Description:      d.Description,
		AskedByID:        d.AskedByID,
		AskedBy:          NewUserPayload(d.AskedBy),
		AnsweredByID:     d.AnsweredByID,
		SeniorAssignedID: d.SeniorAssignedID,
		IsSolved:         d.IsSolved,
		Answer:           d.Answer,
		ImageURL:         d.ImageURL,
		MeetingLink:      d.MeetingLink,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}

	if d.AnsweredBy != nil {
		answeredBy := NewUserPayload(*d.AnsweredBy)
		payload.AnsweredBy = &answeredBy
	}
	if d.SeniorAssigned != nil {
		seniorAssigned := NewUserPayload(*d.SeniorAssigned)
		payload.SeniorAssigned = &seniorAssigned
	}

	return payload
}
