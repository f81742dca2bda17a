package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doubtlink/doubtlink-api/internal/domain"
)

func marshalToMap(t *testing.T, v any) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	return m
}

func TestChatMessagePayload_WireKeysMatchInboundContract(t *testing.T) {
	payload := NewChatMessagePayload(domain.ChatMessage{
		ID:          7,
		DoubtID:     3,
		SenderID:    2,
		Sender:      domain.User{ID: 2, Name: "Ravi", Role: domain.RoleSenior},
		Message:     "join me",
		Type:        domain.MessageTypeMeetingInvite,
		MeetingLink: "https://meet.jit.si/DoubtLink-3-1-abc",
		ImageURL:    "/uploads/board.png",
		CreatedAt:   time.Now(),
	})

	m := marshalToMap(t, payload)

	for _, key := range []string{"id", "doubtId", "senderId", "sender", "message", "type", "meetingLink", "imageUrl", "createdAt"} {
		assert.Contains(t, m, key)
	}
	for _, key := range []string{"doubt_id", "sender_id", "meeting_link", "image_url", "created_at"} {
		assert.NotContains(t, m, key)
	}

	sender, ok := m["sender"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ravi", sender["name"])
}

func TestDoubtPayload_WireKeys(t *testing.T) {
	seniorID := uint(2)
	payload := NewDoubtPayload(domain.Doubt{
		ID:           5,
		Title:        "recursion",
		Description:  "base case overflows",
		AskedByID:    1,
		AskedBy:      domain.User{ID: 1, Name: "Asha", Role: domain.RoleJunior},
		AnsweredByID: &seniorID,
		AnsweredBy:   &domain.User{ID: 2, Name: "Ravi", Role: domain.RoleSenior},
		IsSolved:     true,
		Answer:       "try memoization",
	})

	m := marshalToMap(t, payload)

	for _, key := range []string{"id", "title", "askedById", "askedBy", "answeredById", "answeredBy", "isSolved", "answer"} {
		assert.Contains(t, m, key)
	}
	for _, key := range []string{"asked_by_id", "answered_by_id", "is_solved"} {
		assert.NotContains(t, m, key)
	}

	assert.Equal(t, true, m["isSolved"])
}
