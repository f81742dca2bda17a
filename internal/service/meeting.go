package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/doubtlink/doubtlink-api/internal/domain"
	"github.com/doubtlink/doubtlink-api/internal/realtime"
)

var (
	ErrOnlySeniorsCanStartMeetings = errors.New("only seniors can start meetings")
)

type MeetingRepository interface {
	Create(ctx context.Context, meeting domain.Meeting) (domain.Meeting, error)
	FindByDoubtID(ctx context.Context, doubtID uint) ([]domain.Meeting, error)
}

type MeetingDoubtRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Doubt, error)
	StampMeetingLink(ctx context.Context, id uint, meetingLink string) error
}

type MeetingChatRepository interface {
	Create(ctx context.Context, message domain.ChatMessage) (domain.ChatMessage, error)
}

type MeetingService struct {
	repo        MeetingRepository
	doubtRepo   MeetingDoubtRepository
	chatRepo    MeetingChatRepository
	broadcaster Broadcaster
}

func NewMeetingService(
	repo MeetingRepository,
	doubtRepo MeetingDoubtRepository,
	chatRepo MeetingChatRepository,
	broadcaster Broadcaster,
) *MeetingService {
	return &MeetingService{
		repo:        repo,
		doubtRepo:   doubtRepo,
		chatRepo:    chatRepo,
		broadcaster: broadcaster,
	}
}

// buildMeetingLink derives a practically unique link from the doubt id and
// the current timestamp; the random suffix guards against two meetings for
// the same doubt within one millisecond.
func buildMeetingLink(doubtID uint) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]

	return fmt.Sprintf("https://meet.jit.si/DoubtLink-%d-%d-%s", doubtID, time.Now().UnixMilli(), suffix)
}

// StartMeeting runs the ordered side effects of starting a meeting:
// persist the meeting, stamp the doubt's link, synthesize a meeting-invite
// chat message, broadcast it. A failure before the chat message aborts and
// surfaces an error; after that the meeting already exists, so failures are
// only logged.
func (s *MeetingService) StartMeeting(ctx context.Context, doubtID uint, senior domain.User) (domain.Meeting, error) {
	if senior.Role != domain.RoleSenior {
		return domain.Meeting{}, ErrOnlySeniorsCanStartMeetings
	}

	if _, err := s.doubtRepo.FindByID(ctx, doubtID); err != nil {
		return domain.Meeting{}, fmt.Errorf("s.doubtRepo.FindByID -> %w", err)
	}

	meetingLink := buildMeetingLink(doubtID)

	meeting, err := s.repo.Create(ctx, domain.Meeting{
		DoubtID:     doubtID,
		CreatedByID: senior.ID,
		MeetingLink: meetingLink,
	})
	if err != nil {
		return domain.Meeting{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if err = s.doubtRepo.StampMeetingLink(ctx, doubtID, meetingLink); err != nil {
		return domain.Meeting{}, fmt.Errorf("s.doubtRepo.StampMeetingLink -> %w", err)
	}

	message, err := s.chatRepo.Create(ctx, domain.ChatMessage{
		DoubtID:     doubtID,
		SenderID:    senior.ID,
		Type:        domain.MessageTypeMeetingInvite,
		MeetingLink: meetingLink,
		Message:     fmt.Sprintf("%s started a meeting for this doubt.", senior.Name),
	})
	if err != nil {
		zap.L().Warn("meeting started but invite message was not persisted",
			zap.Uint("doubt_id", doubtID),
			zap.Uint("meeting_id", meeting.ID),
			zap.Error(err))

		return meeting, nil
	}

	s.broadcaster.Publish(realtime.EventChatMessage, realtime.NewChatMessagePayload(message))

	return meeting, nil
}

func (s *MeetingService) GetMeetings(ctx context.Context, doubtID uint) ([]domain.Meeting, error) {
	meetings, err := s.repo.FindByDoubtID(ctx, doubtID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByDoubtID -> %w", err)
	}

	return meetings, nil
}
