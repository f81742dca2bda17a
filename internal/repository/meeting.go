package repository

import (
	"context"
	"fmt"

	"github.com/doubtlink/doubtlink-api/internal/domain"
	"github.com/doubtlink/doubtlink-api/internal/repository/dao"
)

type MeetingDAO interface {
	Insert(ctx context.Context, meeting dao.Meeting) (dao.Meeting, error)
	FindByDoubtID(ctx context.Context, doubtID uint) ([]dao.Meeting, error)
}

type MeetingRepository struct {
	dao MeetingDAO
}

func NewMeetingRepository(dao MeetingDAO) *MeetingRepository {
	return &MeetingRepository{
		dao: dao,
	}
}

func (r *MeetingRepository) Create(ctx context.Context, meeting domain.Meeting) (domain.Meeting, error) {
	created, err := r.dao.Insert(ctx, dao.Meeting{
		DoubtID:     meeting.DoubtID,
		CreatedByID: meeting.CreatedByID,
		MeetingLink: meeting.MeetingLink,
	})
	if err != nil {
		return domain.Meeting{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return meetingDaoToDomain(created), nil
}

func (r *MeetingRepository) FindByDoubtID(ctx context.Context, doubtID uint) ([]domain.Meeting, error) {
	found, err := r.dao.FindByDoubtID(ctx, doubtID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDoubtID -> %w", err)
	}

	meetings := make([]domain.Meeting, 0, len(found))
	for _, m := range found {
		meetings = append(meetings, meetingDaoToDomain(m))
	}

	return meetings, nil
}

func meetingDaoToDomain(m dao.Meeting) domain.Meeting {
	return domain.Meeting{
		ID:          m.ID,
		DoubtID:     m.DoubtID,
		CreatedByID: m.CreatedByID,
		MeetingLink: m.MeetingLink,
		CreatedAt:   m.CreatedAt,
	}
}
