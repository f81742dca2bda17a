package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/doubtlink/doubtlink-api/internal/domain"
	"github.com/doubtlink/doubtlink-api/internal/realtime"
	"github.com/doubtlink/doubtlink-api/internal/repository"
)

var (
	ErrDoubtNotFound        = repository.ErrDoubtNotFound
	ErrDoubtAlreadySolved   = repository.ErrDoubtAlreadySolved
	ErrOnlyJuniorsCanAsk    = errors.New("only juniors can post doubts")
	ErrOnlySeniorsCanAnswer = errors.New("only seniors can answer")
)

// Broadcaster is the notification fan-out bus as the services see it.
// Publishing is fire-and-forget; callers persist first, then publish.
type Broadcaster interface {
	Publish(event string, data any)
}

type DoubtRepository interface {
	Create(ctx context.Context, doubt domain.Doubt) (domain.Doubt, error)
	FindByID(ctx context.Context, id uint) (domain.Doubt, error)
	FindAll(ctx context.Context) ([]domain.Doubt, error)
	MarkSolved(ctx context.Context, id, seniorID uint, answer string) (domain.Doubt, error)
}

type PointsUserRepository interface {
	AwardPoint(ctx context.Context, id uint) (int, error)
}

type PointsLeaderboardRepository interface {
	Upsert(ctx context.Context, seniorID uint, points int) error
}

type DoubtService struct {
	repo            DoubtRepository
	userRepo        PointsUserRepository
	leaderboardRepo PointsLeaderboardRepository
	broadcaster     Broadcaster
}

func NewDoubtService(
	repo DoubtRepository,
	userRepo PointsUserRepository,
	leaderboardRepo PointsLeaderboardRepository,
	broadcaster Broadcaster,
) *DoubtService {
	return &DoubtService{
		repo:            repo,
		userRepo:        userRepo,
		leaderboardRepo: leaderboardRepo,
		broadcaster:     broadcaster,
	}
}

func (s *DoubtService) CreateDoubt(ctx context.Context, doubt domain.Doubt, asker domain.User) (domain.Doubt, error) {
	if asker.Role != domain.RoleJunior {
		return domain.Doubt{}, ErrOnlyJuniorsCanAsk
	}

	doubt.AskedByID = asker.ID
	created, err := s.repo.Create(ctx, doubt)
	if err != nil {
		return domain.Doubt{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	s.broadcaster.Publish(realtime.EventDoubtCreated, realtime.NewDoubtPayload(created))

	return created, nil
}

func (s *DoubtService) GetDoubts(ctx context.Context) ([]domain.Doubt, error) {
	doubts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return doubts, nil
}

func (s *DoubtService) GetDoubt(ctx context.Context, id uint) (domain.Doubt, error) {
	doubt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Doubt{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return doubt, nil
}

// AnswerDoubt marks the doubt solved, awards the senior one point, mirrors
// the new total into the leaderboard and broadcasts the updated doubt.
// Each step aborts the remaining ones on failure; the broadcast fires only
// after every write succeeded. A doubt's seniorAssigned is advisory and is
// not checked here.
func (s *DoubtService) AnswerDoubt(ctx context.Context, doubtID uint, answer string, senior domain.User) (domain.Doubt, error) {
	if senior.Role != domain.RoleSenior {
		return domain.Doubt{}, ErrOnlySeniorsCanAnswer
	}

	updated, err := s.repo.MarkSolved(ctx, doubtID, senior.ID, answer)
	if err != nil {
		return domain.Doubt{}, fmt.Errorf("s.repo.MarkSolved -> %w", err)
	}

	points, err := s.userRepo.AwardPoint(ctx, senior.ID)
	if err != nil {
		return domain.Doubt{}, fmt.Errorf("s.userRepo.AwardPoint -> %w", err)
	}

	if updated.AnsweredBy != nil {
		updated.AnsweredBy.Points = points
		updated.AnsweredBy.Badge = domain.BadgeTier(points)
	}

	if err = s.leaderboardRepo.Upsert(ctx, senior.ID, points); err != nil {
		// The point total is already committed; the leaderboard now lags it.
		// The handler logs the surfaced error once.
		return domain.Doubt{}, fmt.Errorf("s.leaderboardRepo.Upsert (senior %d, points %d) -> %w", senior.ID, points, err)
	}

	s.broadcaster.Publish(realtime.EventDoubtAnswered, realtime.NewDoubtPayload(updated))

	return updated, nil
}
