package response

import "github.com/doubtlink/doubtlink-api/internal/domain"

type StartMeetingResponse struct {
	Message     string         `json:"message"`
	MeetingLink string         `json:"meeting_link"`
	Meeting     domain.Meeting `json:"meeting"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
