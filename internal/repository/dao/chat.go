package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ChatMessage struct {
	ID uint `gorm:"primaryKey"`

	DoubtID uint `gorm:"not null;index"`

	SenderID uint `gorm:"not null"`
	Sender   User

	Message     string
	Type        string `gorm:"not null;default:text"` // "text", "image" or "meeting-invite"
	MeetingLink string
	ImageURL    string

	CreatedAt time.Time `gorm:"not null"`
}

type ChatMessageDAO struct {
	db *gorm.DB
}

func NewChatMessageDAO(db *gorm.DB) *ChatMessageDAO {
	return &ChatMessageDAO{
		db: db,
	}
}

func (d *ChatMessageDAO) Insert(ctx context.Context, message ChatMessage) (ChatMessage, error) {
	result := d.db.WithContext(ctx).Create(&message)
	if result.Error != nil {
		return ChatMessage{}, result.Error
	}

	if err := d.db.WithContext(ctx).Preload("Sender").First(&message, message.ID).Error; err != nil {
		return ChatMessage{}, err
	}

	return message, nil
}

func (d *ChatMessageDAO) FindByDoubtID(ctx context.Context, doubtID uint, limit, offset int) ([]ChatMessage, error) {
	var messages []ChatMessage

	result := d.db.WithContext(ctx).
		Preload("Sender").
		Where("doubt_id = ?", doubtID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}

	return messages, nil
}
