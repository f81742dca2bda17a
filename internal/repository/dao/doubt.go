package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrDoubtNotFound      = errors.New("doubt not found")
	ErrDoubtAlreadySolved = errors.New("doubt already solved")
)

type Doubt struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`

	AskedByID uint `gorm:"not null;index"`
	AskedBy   User

	AnsweredByID *uint
	AnsweredBy   *User

	SeniorAssignedID *uint `gorm:"index"`
	SeniorAssigned   *User

	IsSolved    bool `gorm:"not null;default:false"`
	Answer      string
	ImageURL    string
	MeetingLink string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type DoubtDAO struct {
	db *gorm.DB
}

func NewDoubtDAO(db *gorm.DB) *DoubtDAO {
	return &DoubtDAO{
		db: db,
	}
}

func (d *DoubtDAO) Insert(ctx context.Context, doubt Doubt) (Doubt, error) {
	result := d.db.WithContext(ctx).Create(&doubt)
	if result.Error != nil {
		return Doubt{}, result.Error
	}

	return d.FindByID(ctx, doubt.ID)
}

func (d *DoubtDAO) FindByID(ctx context.Context, id uint) (Doubt, error) {
	var doubt Doubt

	result := d.db.WithContext(ctx).
		Preload("AskedBy").
		Preload("AnsweredBy").
		Preload("SeniorAssigned").
		First(&doubt, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Doubt{}, ErrDoubtNotFound
		}

		return Doubt{}, result.Error
	}

	return doubt, nil
}

func (d *DoubtDAO) FindAll(ctx context.Context) ([]Doubt, error) {
	var doubts []Doubt

	result := d.db.WithContext(ctx).
		Preload("AskedBy").
		Preload("AnsweredBy").
		Preload("SeniorAssigned").
		Order("created_at DESC").
		Find(&doubts)
	if result.Error != nil {
		return nil, result.Error
	}

	return doubts, nil
}

// MarkSolved stamps answer, answeredBy and isSolved in one update, guarded
// by is_solved = false so a doubt can only be solved once.
func (d *DoubtDAO) MarkSolved(ctx context.Context, id, seniorID uint, answer string) (Doubt, error) {
	result := d.db.WithContext(ctx).
		Model(&Doubt{}).
		Where("id = ? AND is_solved = ?", id, false).
		Updates(map[string]interface{}{
			"answer":         answer,
			"answered_by_id": seniorID,
			"is_solved":      true,
		})
	if result.Error != nil {
		return Doubt{}, result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := d.FindByID(ctx, id); err != nil {
			return Doubt{}, err
		}

		return Doubt{}, ErrDoubtAlreadySolved
	}

	return d.FindByID(ctx, id)
}

func (d *DoubtDAO) StampMeetingLink(ctx context.Context, id uint, meetingLink string) error {
	result := d.db.WithContext(ctx).
		Model(&Doubt{}).
		Where("id = ?", id).
		Update("meeting_link", meetingLink)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDoubtNotFound
	}

	return nil
}
