package service

import (
	"context"
	"fmt"

	"github.com/doubtlink/doubtlink-api/internal/domain"
)

type LeaderboardRepository interface {
	FindAllByPointsDesc(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type LeaderboardService struct {
	repo LeaderboardRepository
}

func NewLeaderboardService(repo LeaderboardRepository) *LeaderboardService {
	return &LeaderboardService{
		repo: repo,
	}
}

// GetLeaderboard returns entries sorted by points descending with 1-based
// positional ranks. Ranks are recomputed on every read, never stored; ties
// keep the underlying sort's stable order.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	entries, err := s.repo.FindAllByPointsDesc(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllByPointsDesc -> %w", err)
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}
