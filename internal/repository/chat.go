package repository

import (
	"context"
	"fmt"

	"github.com/doubtlink/doubtlink-api/internal/domain"
	"github.com/doubtlink/doubtlink-api/internal/repository/dao"
)

type ChatMessageDAO interface {
	Insert(ctx context.Context, message dao.ChatMessage) (dao.ChatMessage, error)
	FindByDoubtID(ctx context.Context, doubtID uint, limit, offset int) ([]dao.ChatMessage, error)
}

type ChatMessageRepository struct {
	dao ChatMessageDAO
}

func NewChatMessageRepository(dao ChatMessageDAO) *ChatMessageRepository {
	return &ChatMessageRepository{
		dao: dao,
	}
}

func (r *ChatMessageRepository) Create(ctx context.Context, message domain.ChatMessage) (domain.ChatMessage, error) {
	created, err := r.dao.Insert(ctx, dao.ChatMessage{
		DoubtID:     message.DoubtID,
		SenderID:    message.SenderID,
		Message:     message.Message,
		Type:        message.Type,
		MeetingLink: message.MeetingLink,
		ImageURL:    message.ImageURL,
	})
	if err != nil {
		return domain.ChatMessage{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return chatMessageDaoToDomain(created), nil
}

func (r *ChatMessageRepository) FindByDoubtID(ctx context.Context, doubtID uint, limit, offset int) ([]domain.ChatMessage, error) {
	found, err := r.dao.FindByDoubtID(ctx, doubtID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDoubtID -> %w", err)
	}

	messages := make([]domain.ChatMessage, 0, len(found))
	for _, m := range found {
		messages = append(messages, chatMessageDaoToDomain(m))
	}

	return messages, nil
}

func chatMessageDaoToDomain(m dao.ChatMessage) domain.ChatMessage {
	return domain.ChatMessage{
		ID:          m.ID,
		DoubtID:     m.DoubtID,
		SenderID:    m.SenderID,
		Sender:      userDaoToDomain(m.Sender),
		Message:     m.Message,
		Type:        m.Type,
		MeetingLink: m.MeetingLink,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
	}
}
