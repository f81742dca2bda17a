package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doubtlink/doubtlink-api/internal/domain"
	"github.com/doubtlink/doubtlink-api/internal/realtime"
)

func newMeetingServiceForTest() (*MeetingService, *fakeMeetingRepo, *fakeDoubtRepo, *fakeChatRepo, *fakeBroadcaster, *callLog) {
	log := &callLog{}
	meetingRepo := newFakeMeetingRepo(log)
	doubtRepo := newFakeDoubtRepo(log)
	chatRepo := newFakeChatRepo(log)
	broadcaster := &fakeBroadcaster{log: log}
	svc := NewMeetingService(meetingRepo, doubtRepo, chatRepo, broadcaster)

	return svc, meetingRepo, doubtRepo, chatRepo, broadcaster, log
}

func TestMeetingService_StartMeeting(t *testing.T) {
	junior := domain.User{ID: 1, Name: "Asha", Role: domain.RoleJunior}
	senior := domain.User{ID: 2, Name: "Ravi", Role: domain.RoleSenior}

	t.Run("junior cannot start a meeting", func(t *testing.T) {
		svc, _, _, _, _, _ := newMeetingServiceForTest()

		_, err := svc.StartMeeting(context.Background(), 1, junior)
		assert.ErrorIs(t, err, ErrOnlySeniorsCanStartMeetings)
	})

	t.Run("unknown doubt is rejected", func(t *testing.T) {
		svc, meetingRepo, _, chatRepo, broadcaster, _ := newMeetingServiceForTest()

		_, err := svc.StartMeeting(context.Background(), 42, senior)
		assert.ErrorIs(t, err, ErrDoubtNotFound)
		assert.Empty(t, meetingRepo.meetings)
		assert.Empty(t, chatRepo.messages)
		assert.Empty(t, broadcaster.published())
	})

	t.Run("persists meeting, stamps doubt and posts exactly one invite", func(t *testing.T) {
		svc, meetingRepo, doubtRepo, chatRepo, broadcaster, _ := newMeetingServiceForTest()
		doubt := doubtRepo.seed(domain.Doubt{Title: "t", Description: "d", AskedByID: junior.ID})

		meeting, err := svc.StartMeeting(context.Background(), doubt.ID, senior)
		require.NoError(t, err)

		assert.Equal(t, doubt.ID, meeting.DoubtID)
		assert.Equal(t, senior.ID, meeting.CreatedByID)
		assert.True(t, strings.HasPrefix(meeting.MeetingLink,
			fmt.Sprintf("https://meet.jit.si/DoubtLink-%d-", doubt.ID)))

		require.Len(t, meetingRepo.meetings, 1)

		stamped, err := doubtRepo.FindByID(context.Background(), doubt.ID)
		require.NoError(t, err)
		assert.Equal(t, meeting.MeetingLink, stamped.MeetingLink)

		require.Len(t, chatRepo.messages, 1)
		invite := chatRepo.messages[0]
		assert.Equal(t, domain.MessageTypeMeetingInvite, invite.Type)
		assert.Equal(t, doubt.ID, invite.DoubtID)
		assert.Equal(t, meeting.MeetingLink, invite.MeetingLink)
		assert.Equal(t, "Ravi started a meeting for this doubt.", invite.Message)

		events := broadcaster.published()
		require.Len(t, events, 1)
		assert.Equal(t, realtime.EventChatMessage, events[0].Event)
	})

	t.Run("two meetings for the same doubt get distinct links", func(t *testing.T) {
		svc, _, doubtRepo, _, _, _ := newMeetingServiceForTest()
		doubt := doubtRepo.seed(domain.Doubt{Title: "t", Description: "d", AskedByID: junior.ID})

		first, err := svc.StartMeeting(context.Background(), doubt.ID, senior)
		require.NoError(t, err)
		second, err := svc.StartMeeting(context.Background(), doubt.ID, senior)
		require.NoError(t, err)

		assert.NotEqual(t, first.MeetingLink, second.MeetingLink)
	})

	t.Run("meeting persist failure aborts everything", func(t *testing.T) {
		svc, meetingRepo, doubtRepo, chatRepo, broadcaster, _ := newMeetingServiceForTest()
		doubt := doubtRepo.seed(domain.Doubt{Title: "t", Description: "d", AskedByID: junior.ID})
		meetingRepo.failCreate = errors.New("store unavailable")

		_, err := svc.StartMeeting(context.Background(), doubt.ID, senior)
		require.Error(t, err)

		unstamped, findErr := doubtRepo.FindByID(context.Background(), doubt.ID)
		require.NoError(t, findErr)
		assert.Empty(t, unstamped.MeetingLink)
		assert.Empty(t, chatRepo.messages)
		assert.Empty(t, broadcaster.published())
	})

	t.Run("stamp failure aborts invite and broadcast", func(t *testing.T) {
		svc, _, doubtRepo, chatRepo, broadcaster, _ := newMeetingServiceForTest()
		doubt := doubtRepo.seed(domain.Doubt{Title: "t", Description: "d", AskedByID: junior.ID})
		doubtRepo.failStamp = errors.New("store unavailable")

		_, err := svc.StartMeeting(context.Background(), doubt.ID, senior)
		require.Error(t, err)
		assert.Empty(t, chatRepo.messages)
		assert.Empty(t, broadcaster.published())
	})

	t.Run("invite persist failure is accepted, meeting survives", func(t *testing.T) {
		svc, meetingRepo, doubtRepo, chatRepo, broadcaster, _ := newMeetingServiceForTest()
		doubt := doubtRepo.seed(domain.Doubt{Title: "t", Description: "d", AskedByID: junior.ID})
		chatRepo.failCreate = errors.New("store unavailable")

		meeting, err := svc.StartMeeting(context.Background(), doubt.ID, senior)
		require.NoError(t, err)
		assert.NotZero(t, meeting.ID)
		require.Len(t, meetingRepo.meetings, 1)
		assert.Empty(t, broadcaster.published())
	})

	t.Run("side effects run in order, broadcast last", func(t *testing.T) {
		svc, _, doubtRepo, _, _, log := newMeetingServiceForTest()
		doubt := doubtRepo.seed(domain.Doubt{Title: "t", Description: "d", AskedByID: junior.ID})

		_, err := svc.StartMeeting(context.Background(), doubt.ID, senior)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"doubtRepo.FindByID",
			"meetingRepo.Create",
			"doubtRepo.StampMeetingLink",
			"chatRepo.Create",
			"broadcaster.Publish:" + realtime.EventChatMessage,
		}, log.all())
	})
}
