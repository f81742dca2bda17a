package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doubtlink/doubtlink-api/internal/domain"
)

type stubLeaderboardReader struct {
	entries []domain.LeaderboardEntry
	err     error
}

func (s *stubLeaderboardReader) FindAllByPointsDesc(_ context.Context) ([]domain.LeaderboardEntry, error) {
	return s.entries, s.err
}

func TestLeaderboardService_GetLeaderboard(t *testing.T) {
	t.Run("ranks are positional in points-descending order", func(t *testing.T) {
		svc := NewLeaderboardService(&stubLeaderboardReader{
			entries: []domain.LeaderboardEntry{
				{SeniorID: 2, Points: 9, Senior: domain.User{ID: 2, Name: "Ravi"}},
				{SeniorID: 1, Points: 5, Senior: domain.User{ID: 1, Name: "Meera"}},
				{SeniorID: 3, Points: 2, Senior: domain.User{ID: 3, Name: "Dev"}},
			},
		})

		entries, err := svc.GetLeaderboard(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 3)

		assert.Equal(t, []int{9, 5, 2}, []int{entries[0].Points, entries[1].Points, entries[2].Points})
		assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})
	})

	t.Run("empty leaderboard is fine", func(t *testing.T) {
		svc := NewLeaderboardService(&stubLeaderboardReader{})

		entries, err := svc.GetLeaderboard(context.Background())
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("repository failure propagates", func(t *testing.T) {
		svc := NewLeaderboardService(&stubLeaderboardReader{err: errors.New("store unavailable")})

		_, err := svc.GetLeaderboard(context.Background())
		assert.Error(t, err)
	})
}
