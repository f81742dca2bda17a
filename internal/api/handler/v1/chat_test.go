package v1

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doubtlink/doubtlink-api/internal/domain"
	"github.com/doubtlink/doubtlink-api/internal/realtime"
)

type fakeChatService struct {
	saved    []domain.ChatMessage
	saveErr  error
	resolved domain.User
}

func (s *fakeChatService) SaveMessage(_ context.Context, message domain.ChatMessage) (domain.ChatMessage, error) {
	s.saved = append(s.saved, message)
	if s.saveErr != nil {
		return domain.ChatMessage{}, s.saveErr
	}

	message.ID = uint(len(s.saved))
	message.Sender = s.resolved
	message.CreatedAt = time.Now()

	return message, nil
}

func (s *fakeChatService) GetMessages(_ context.Context, _ uint, _, _ int) ([]domain.ChatMessage, error) {
	return nil, nil
}

type fakeChatHub struct {
	events []struct {
		Event string
		Data  any
	}
}

func (h *fakeChatHub) Attach(_ *websocket.Conn, _ realtime.InboundHandler) {}

func (h *fakeChatHub) Publish(event string, data any) {
	h.events = append(h.events, struct {
		Event string
		Data  any
	}{event, data})
}

func sendMessageFrame(t *testing.T, payload realtime.SendMessagePayload) []byte {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	frame, err := json.Marshal(realtime.Envelope{Event: realtime.EventSendMessage, Data: data})
	require.NoError(t, err)

	return frame
}

func TestChatHandler_HandleInbound(t *testing.T) {
	t.Run("persists then broadcasts the saved record", func(t *testing.T) {
		svc := &fakeChatService{resolved: domain.User{ID: 2, Name: "Ravi", Role: domain.RoleSenior}}
		hub := &fakeChatHub{}
		handler := NewChatHandler(svc, hub)

		handler.handleInbound(sendMessageFrame(t, realtime.SendMessagePayload{
			DoubtID:  3,
			SenderID: 2,
			Message:  "try memoization",
		}))

		require.Len(t, svc.saved, 1)
		assert.Equal(t, uint(3), svc.saved[0].DoubtID)

		require.Len(t, hub.events, 1)
		assert.Equal(t, realtime.EventChatMessage, hub.events[0].Event)

		payload, ok := hub.events[0].Data.(realtime.ChatMessagePayload)
		require.True(t, ok)
		assert.NotZero(t, payload.ID)
		assert.Equal(t, "Ravi", payload.Sender.Name)
		assert.Equal(t, "try memoization", payload.Message)
	})

	t.Run("malformed frame is dropped", func(t *testing.T) {
		svc := &fakeChatService{}
		hub := &fakeChatHub{}
		handler := NewChatHandler(svc, hub)

		handler.handleInbound([]byte(`{not json`))

		assert.Empty(t, svc.saved)
		assert.Empty(t, hub.events)
	})

	t.Run("unknown event is dropped", func(t *testing.T) {
		svc := &fakeChatService{}
		hub := &fakeChatHub{}
		handler := NewChatHandler(svc, hub)

		frame, err := json.Marshal(realtime.Envelope{Event: "subscribe", Data: json.RawMessage(`{}`)})
		require.NoError(t, err)
		handler.handleInbound(frame)

		assert.Empty(t, svc.saved)
		assert.Empty(t, hub.events)
	})

	t.Run("persistence failure suppresses the broadcast", func(t *testing.T) {
		svc := &fakeChatService{saveErr: errors.New("store unavailable")}
		hub := &fakeChatHub{}
		handler := NewChatHandler(svc, hub)

		handler.handleInbound(sendMessageFrame(t, realtime.SendMessagePayload{
			DoubtID:  3,
			SenderID: 2,
			Message:  "hello",
		}))

		require.Len(t, svc.saved, 1)
		assert.Empty(t, hub.events)
	})
}
