package service

import (
	"context"
	"sync"

	"github.com/doubtlink/doubtlink-api/internal/domain"
	"github.com/doubtlink/doubtlink-api/internal/repository"
)

// callLog records cross-fake call order so tests can assert sequencing.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(call string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
}

func (l *callLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.calls...)
}

type publishedEvent struct {
	Event string
	Data  any
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	log    *callLog
	events []publishedEvent
}

func (b *fakeBroadcaster) Publish(event string, data any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.log.add("broadcaster.Publish:" + event)
	b.events = append(b.events, publishedEvent{Event: event, Data: data})
}

func (b *fakeBroadcaster) published() []publishedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]publishedEvent(nil), b.events...)
}

type fakeDoubtRepo struct {
	mu     sync.Mutex
	log    *callLog
	nextID uint
	doubts map[uint]domain.Doubt

	failCreate     error
	failMarkSolved error
	failStamp      error
}

func newFakeDoubtRepo(log *callLog) *fakeDoubtRepo {
	return &fakeDoubtRepo{
		log:    log,
		doubts: make(map[uint]domain.Doubt),
	}
}

func (r *fakeDoubtRepo) seed(doubt domain.Doubt) domain.Doubt {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	doubt.ID = r.nextID
	r.doubts[doubt.ID] = doubt

	return doubt
}

func (r *fakeDoubtRepo) Create(_ context.Context, doubt domain.Doubt) (domain.Doubt, error) {
	r.log.add("doubtRepo.Create")
	if r.failCreate != nil {
		return domain.Doubt{}, r.failCreate
	}

	return r.seed(doubt), nil
}

func (r *fakeDoubtRepo) FindByID(_ context.Context, id uint) (domain.Doubt, error) {
	r.log.add("doubtRepo.FindByID")
	r.mu.Lock()
	defer r.mu.Unlock()

	doubt, ok := r.doubts[id]
	if !ok {
		return domain.Doubt{}, repository.ErrDoubtNotFound
	}

	return doubt, nil
}

func (r *fakeDoubtRepo) FindAll(_ context.Context) ([]domain.Doubt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doubts := make([]domain.Doubt, 0, len(r.doubts))
	for _, d := range r.doubts {
		doubts = append(doubts, d)
	}

	return doubts, nil
}

func (r *fakeDoubtRepo) MarkSolved(_ context.Context, id, seniorID uint, answer string) (domain.Doubt, error) {
	r.log.add("doubtRepo.MarkSolved")
	if r.failMarkSolved != nil {
		return domain.Doubt{}, r.failMarkSolved
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doubt, ok := r.doubts[id]
	if !ok {
		return domain.Doubt{}, repository.ErrDoubtNotFound
	}
	if doubt.IsSolved {
		return domain.Doubt{}, repository.ErrDoubtAlreadySolved
	}

	doubt.IsSolved = true
	doubt.Answer = answer
	doubt.AnsweredByID = &seniorID
	doubt.AnsweredBy = &domain.User{ID: seniorID, Role: domain.RoleSenior}
	r.doubts[id] = doubt

	return doubt, nil
}

func (r *fakeDoubtRepo) StampMeetingLink(_ context.Context, id uint, meetingLink string) error {
	r.log.add("doubtRepo.StampMeetingLink")
	if r.failStamp != nil {
		return r.failStamp
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doubt, ok := r.doubts[id]
	if !ok {
		return repository.ErrDoubtNotFound
	}
	doubt.MeetingLink = meetingLink
	r.doubts[id] = doubt

	return nil
}

type fakeUserRepo struct {
	mu     sync.Mutex
	log    *callLog
	points map[uint]int

	failAward error
}

func newFakeUserRepo(log *callLog) *fakeUserRepo {
	return &fakeUserRepo{
		log:    log,
		points: make(map[uint]int),
	}
}

func (r *fakeUserRepo) AwardPoint(_ context.Context, id uint) (int, error) {
	r.log.add("userRepo.AwardPoint")
	if r.failAward != nil {
		return 0, r.failAward
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.points[id]++

	return r.points[id], nil
}

type fakeLeaderboardRepo struct {
	mu      sync.Mutex
	log     *callLog
	entries map[uint]int

	failUpsert error
}

func newFakeLeaderboardRepo(log *callLog) *fakeLeaderboardRepo {
	return &fakeLeaderboardRepo{
		log:     log,
		entries: make(map[uint]int),
	}
}

func (r *fakeLeaderboardRepo) Upsert(_ context.Context, seniorID uint, points int) error {
	r.log.add("leaderboardRepo.Upsert")
	if r.failUpsert != nil {
		return r.failUpsert
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[seniorID] = points

	return nil
}

type fakeMeetingRepo struct {
	mu       sync.Mutex
	log      *callLog
	nextID   uint
	meetings []domain.Meeting

	failCreate error
}

func newFakeMeetingRepo(log *callLog) *fakeMeetingRepo {
	return &fakeMeetingRepo{log: log}
}

func (r *fakeMeetingRepo) Create(_ context.Context, meeting domain.Meeting) (domain.Meeting, error) {
	r.log.add("meetingRepo.Create")
	if r.failCreate != nil {
		return domain.Meeting{}, r.failCreate
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	meeting.ID = r.nextID
	r.meetings = append(r.meetings, meeting)

	return meeting, nil
}

func (r *fakeMeetingRepo) FindByDoubtID(_ context.Context, doubtID uint) ([]domain.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var meetings []domain.Meeting
	for _, m := range r.meetings {
		if m.DoubtID == doubtID {
			meetings = append(meetings, m)
		}
	}

	return meetings, nil
}

type fakeChatRepo struct {
	mu       sync.Mutex
	log      *callLog
	nextID   uint
	messages []domain.ChatMessage

	failCreate error
}

func newFakeChatRepo(log *callLog) *fakeChatRepo {
	return &fakeChatRepo{log: log}
}

func (r *fakeChatRepo) Create(_ context.Context, message domain.ChatMessage) (domain.ChatMessage, error) {
	r.log.add("chatRepo.Create")
	if r.failCreate != nil {
		return domain.ChatMessage{}, r.failCreate
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	message.ID = r.nextID
	r.messages = append(r.messages, message)

	return message, nil
}

func (r *fakeChatRepo) FindByDoubtID(_ context.Context, doubtID uint, limit, offset int) ([]domain.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var messages []domain.ChatMessage
	for _, m := range r.messages {
		if m.DoubtID == doubtID {
			messages = append(messages, m)
		}
	}

	return messages, nil
}
