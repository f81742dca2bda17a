package repository

import (
	"context"
	"fmt"

	"github.com/doubtlink/doubtlink-api/internal/domain"
	"github.com/doubtlink/doubtlink-api/internal/repository/dao"
)

type LeaderboardDAO interface {
	Upsert(ctx context.Context, seniorID uint, points int) error
	FindAllByPointsDesc(ctx context.Context) ([]dao.LeaderboardEntry, error)
}

type LeaderboardRepository struct {
	dao LeaderboardDAO
}

func NewLeaderboardRepository(dao LeaderboardDAO) *LeaderboardRepository {
	return &LeaderboardRepository{
		dao: dao,
	}
}

func (r *LeaderboardRepository) Upsert(ctx context.Context, seniorID uint, points int) error {
	if err := r.dao.Upsert(ctx, seniorID, points); err != nil {
		return fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return nil
}

func (r *LeaderboardRepository) FindAllByPointsDesc(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	found, err := r.dao.FindAllByPointsDesc(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByPointsDesc -> %w", err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(found))
	for _, e := range found {
		entries = append(entries, domain.LeaderboardEntry{
			ID:        e.ID,
			SeniorID:  e.SeniorID,
			Senior:    userDaoToDomain(e.Senior),
			Points:    e.Points,
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		})
	}

	return entries, nil
}
