package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaderboardEntry struct {
	ID uint `gorm:"primaryKey"`

	SeniorID uint `gorm:"uniqueIndex;not null"`
	Senior   User

	Points int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type LeaderboardDAO struct {
	db *gorm.DB
}

func NewLeaderboardDAO(db *gorm.DB) *LeaderboardDAO {
	return &LeaderboardDAO{
		db: db,
	}
}

// Upsert keeps exactly one entry per senior: insert on first answer,
// overwrite the points mirror on every one after.
func (d *LeaderboardDAO) Upsert(ctx context.Context, seniorID uint, points int) error {
	entry := LeaderboardEntry{
		SeniorID: seniorID,
		Points:   points,
	}

	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "senior_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"points": points, "updated_at": time.Now()}),
	}).Create(&entry)

	return result.Error
}

func (d *LeaderboardDAO) FindAllByPointsDesc(ctx context.Context) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry

	result := d.db.WithContext(ctx).
		Preload("Senior").
		Order("points DESC").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}
