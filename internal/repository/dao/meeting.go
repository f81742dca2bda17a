package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Meeting struct {
	ID uint `gorm:"primaryKey"`

	DoubtID     uint   `gorm:"not null;index"`
	CreatedByID uint   `gorm:"not null"`
	MeetingLink string `gorm:"unique;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type MeetingDAO struct {
	db *gorm.DB
}

func NewMeetingDAO(db *gorm.DB) *MeetingDAO {
	return &MeetingDAO{
		db: db,
	}
}

func (d *MeetingDAO) Insert(ctx context.Context, meeting Meeting) (Meeting, error) {
	result := d.db.WithContext(ctx).Create(&meeting)
	if result.Error != nil {
		return Meeting{}, result.Error
	}

	return meeting, nil
}

func (d *MeetingDAO) FindByDoubtID(ctx context.Context, doubtID uint) ([]Meeting, error) {
	var meetings []Meeting

	result := d.db.WithContext(ctx).
		Where("doubt_id = ?", doubtID).
		Order("created_at DESC").
		Find(&meetings)
	if result.Error != nil {
		return nil, result.Error
	}

	return meetings, nil
}
