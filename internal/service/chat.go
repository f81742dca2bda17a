package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/doubtlink/doubtlink-api/internal/domain"
	"github.com/doubtlink/doubtlink-api/internal/metrics"
)

var (
	ErrMeetingLinkRequired = errors.New("meeting link is required for a meeting invite")
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message domain.ChatMessage) (domain.ChatMessage, error)
	FindByDoubtID(ctx context.Context, doubtID uint, limit, offset int) ([]domain.ChatMessage, error)
}

type ChatDoubtRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Doubt, error)
}

type ChatService struct {
	repo      ChatMessageRepository
	doubtRepo ChatDoubtRepository
}

func NewChatService(repo ChatMessageRepository, doubtRepo ChatDoubtRepository) *ChatService {
	return &ChatService{
		repo:      repo,
		doubtRepo: doubtRepo,
	}
}

// SaveMessage persists a chat message after checking its doubt exists.
// Broadcasting is the caller's job and must only happen once this returns
// without error.
func (s *ChatService) SaveMessage(ctx context.Context, message domain.ChatMessage) (domain.ChatMessage, error) {
	if message.Type == "" {
		message.Type = domain.MessageTypeText
	}
	if message.Type == domain.MessageTypeMeetingInvite && message.MeetingLink == "" {
		return domain.ChatMessage{}, ErrMeetingLinkRequired
	}

	if _, err := s.doubtRepo.FindByID(ctx, message.DoubtID); err != nil {
		return domain.ChatMessage{}, fmt.Errorf("s.doubtRepo.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, message)
	if err != nil {
		return domain.ChatMessage{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	metrics.MessagesPersisted.Inc()

	return created, nil
}

func (s *ChatService) GetMessages(ctx context.Context, doubtID uint, limit, offset int) ([]domain.ChatMessage, error) {
	messages, err := s.repo.FindByDoubtID(ctx, doubtID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByDoubtID -> %w", err)
	}

	return messages, nil
}
