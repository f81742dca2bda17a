package repository

import (
	"context"
	"fmt"

	"github.com/doubtlink/doubtlink-api/internal/domain"
	"github.com/doubtlink/doubtlink-api/internal/repository/dao"
)

var (
	ErrDoubtNotFound      = dao.ErrDoubtNotFound
	ErrDoubtAlreadySolved = dao.ErrDoubtAlreadySolved
)

type DoubtDAO interface {
	Insert(ctx context.Context, doubt dao.Doubt) (dao.Doubt, error)
	FindByID(ctx context.Context, id uint) (dao.Doubt, error)
	FindAll(ctx context.Context) ([]dao.Doubt, error)
	MarkSolved(ctx context.Context, id, seniorID uint, answer string) (dao.Doubt, error)
	StampMeetingLink(ctx context.Context, id uint, meetingLink string) error
}

type DoubtRepository struct {
	dao DoubtDAO
}

func NewDoubtRepository(dao DoubtDAO) *DoubtRepository {
	return &DoubtRepository{
		dao: dao,
	}
}

func (r *DoubtRepository) Create(ctx context.Context, doubt domain.Doubt) (domain.Doubt, error) {
	created, err := r.dao.Insert(ctx, dao.Doubt{
		Title:            doubt.Title,
		Description:      doubt.Description,
		AskedByID:        doubt.AskedByID,
		SeniorAssignedID: doubt.SeniorAssignedID,
		ImageURL:         doubt.ImageURL,
	})
	if err != nil {
		return domain.Doubt{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return doubtDaoToDomain(created), nil
}

func (r *DoubtRepository) FindByID(ctx context.Context, id uint) (domain.Doubt, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Doubt{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return doubtDaoToDomain(found), nil
}

func (r *DoubtRepository) FindAll(ctx context.Context) ([]domain.Doubt, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	doubts := make([]domain.Doubt, 0, len(found))
	for _, d := range found {
		doubts = append(doubts, doubtDaoToDomain(d))
	}

	return doubts, nil
}

func (r *DoubtRepository) MarkSolved(ctx context.Context, id, seniorID uint, answer string) (domain.Doubt, error) {
	updated, err := r.dao.MarkSolved(ctx, id, seniorID, answer)
	if err != nil {
		return domain.Doubt{}, fmt.Errorf("r.dao.MarkSolved -> %w", err)
	}

	return doubtDaoToDomain(updated), nil
}

func (r *DoubtRepository) StampMeetingLink(ctx context.Context, id uint, meetingLink string) error {
	if err := r.dao.StampMeetingLink(ctx, id, meetingLink); err != nil {
		return fmt.Errorf("r.dao.StampMeetingLink -> %w", err)
	}

	return nil
}

func doubtDaoToDomain(d dao.Doubt) domain.Doubt {
	doubt := domain.Doubt{
		ID:               d.ID,
		Title:            d.Title,
		Description:      d.Description,
		AskedByID:        d.AskedByID,
		AskedBy:          userDaoToDomain(d.AskedBy),
		AnsweredByID:     d.AnsweredByID,
		SeniorAssignedID: d.SeniorAssignedID,
		IsSolved:         d.IsSolved,
		Answer:           d.Answer,
		ImageURL:         d.ImageURL,
		MeetingLink:      d.MeetingLink,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}

	if d.AnsweredBy != nil {
		answeredBy := userDaoToDomain(*d.AnsweredBy)
		doubt.AnsweredBy = &answeredBy
	}
	if d.SeniorAssigned != nil {
		seniorAssigned := userDaoToDomain(*d.SeniorAssigned)
		doubt.SeniorAssigned = &seniorAssigned
	}

	return doubt
}
