package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds a registered session without a live connection.
// The Run loop only ever touches the send channel, so no conn is needed.
func newTestClient(h *Hub, buffer int) *Client {
	c := &Client{
		hub:       h,
		send:      make(chan []byte, buffer),
		sessionID: "test-session",
	}
	h.register <- c

	return c
}

func recvFrame(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case frame, ok := <-c.send:
		require.True(t, ok, "send channel closed")
		return frame
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for frame")
		return nil
	}
}

func TestHub_PublishFansOutToAllSessions(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := newTestClient(hub, 8)
	second := newTestClient(hub, 8)

	hub.Publish(EventDoubtCreated, map[string]any{"title": "pointers"})

	for _, c := range []*Client{first, second} {
		var envelope Envelope
		require.NoError(t, json.Unmarshal(recvFrame(t, c), &envelope))
		assert.Equal(t, EventDoubtCreated, envelope.Event)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(envelope.Data, &payload))
		assert.Equal(t, "pointers", payload["title"])
	}
}

func TestHub_UnregisteredSessionStopsReceiving(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	staying := newTestClient(hub, 8)
	leaving := newTestClient(hub, 8)

	hub.unregister <- leaving

	hub.Publish(EventChatMessage, map[string]any{"message": "hello"})

	frame := recvFrame(t, staying)
	assert.Contains(t, string(frame), EventChatMessage)

	// Unregistering closes the send channel without delivering anything.
	select {
	case frame, ok := <-leaving.send:
		assert.False(t, ok, "expected closed channel, got frame %q", frame)
	case <-time.After(time.Second):
		t.Fatal("leaving session's send channel was never closed")
	}
}

func TestHub_SlowSessionIsDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	slow := newTestClient(hub, 1)
	healthy := newTestClient(hub, 8)

	// First publish fills the slow session's buffer; the second finds it
	// full and evicts the session.
	hub.Publish(EventChatMessage, map[string]any{"seq": 1})
	hub.Publish(EventChatMessage, map[string]any{"seq": 2})

	recvFrame(t, healthy)
	recvFrame(t, healthy)

	recvFrame(t, slow)
	select {
	case _, ok := <-slow.send:
		assert.False(t, ok, "slow session should have been evicted")
	case <-time.After(time.Second):
		t.Fatal("slow session's send channel was never closed")
	}

	// The healthy session keeps receiving after the eviction.
	hub.Publish(EventDoubtAnswered, map[string]any{"seq": 3})
	frame := recvFrame(t, healthy)
	assert.Contains(t, string(frame), EventDoubtAnswered)
}
