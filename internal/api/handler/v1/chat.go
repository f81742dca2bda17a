package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/doubtlink/doubtlink-api/internal/api/handler/v1/response"
	"github.com/doubtlink/doubtlink-api/internal/domain"
	"github.com/doubtlink/doubtlink-api/internal/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production!
	},
}

type ChatService interface {
	SaveMessage(ctx context.Context, message domain.ChatMessage) (domain.ChatMessage, error)
	GetMessages(ctx context.Context, doubtID uint, limit, offset int) ([]domain.ChatMessage, error)
}

// ChatHub is the realtime bus as the websocket handler sees it.
type ChatHub interface {
	Attach(conn *websocket.Conn, onInbound realtime.InboundHandler)
	Publish(event string, data any)
}

type ChatHandler struct {
	svc ChatService
	hub ChatHub
}

func NewChatHandler(svc ChatService, hub ChatHub) *ChatHandler {
	return &ChatHandler{
		svc: svc,
		hub: hub,
	}
}

// HandleWebSocket godoc
// @Summary      Establish a realtime connection
// @Description  Upgrades to websocket; every connected session receives every broadcast event
// @Tags         chat
// @Produce      json
// @Success      101 {string} string "Switching Protocols to WebSocket"
// @Failure      400 {object} response.Err
// @Router       /ws [get]
func (h *ChatHandler) HandleWebSocket(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))

		return
	}

	h.hub.Attach(conn, h.handleInbound)
}

// handleInbound routes client-originated events. Only "sendMessage" is
// understood: persist the chat message, then broadcast the persisted record
// (with resolved sender identity) to every session, the sender included.
// There is no error channel back to the sending client; failures are logged
// and the frame is dropped.
func (h *ChatHandler) handleInbound(frame []byte) {
	var envelope realtime.Envelope
	if err := json.Unmarshal(frame, &envelope); err != nil {
		zap.L().Warn("dropping malformed inbound frame", zap.Error(err))

		return
	}

	if envelope.Event != realtime.EventSendMessage {
		zap.L().Warn("dropping unknown inbound event", zap.String("event", envelope.Event))

		return
	}

	var payload realtime.SendMessagePayload
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		zap.L().Warn("dropping malformed sendMessage payload", zap.Error(err))

		return
	}

	saved, err := h.svc.SaveMessage(context.Background(), domain.ChatMessage{
		DoubtID:     payload.DoubtID,
		SenderID:    payload.SenderID,
		Message:     payload.Message,
		Type:        payload.Type,
		MeetingLink: payload.MeetingLink,
		ImageURL:    payload.ImageURL,
	})
	if err != nil {
		zap.L().Warn("failed to persist inbound chat message, not broadcasting",
			zap.Uint("doubt_id", payload.DoubtID),
			zap.Error(err))

		return
	}

	h.hub.Publish(realtime.EventChatMessage, realtime.NewChatMessagePayload(saved))
}

// HandleGetChatMessages godoc
// @Summary      Get chat messages for a doubt
// @Tags         chat
// @Produce      json
// @Param        doubtID path  int true  "Doubt ID"
// @Param        limit   query int false "Number of messages to retrieve (default 50)"
// @Param        offset  query int false "Offset for pagination (default 0)"
// @Success      200 {array}  domain.ChatMessage
// @Failure      400 {object} response.Err
// @Failure      401 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /doubts/{doubtID}/messages [get]
// @Security     BearerAuth
func (h *ChatHandler) HandleGetChatMessages(ctx *gin.Context) {
	doubtID, err := strconv.ParseUint(ctx.Param("doubtID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid doubt ID")))

		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	messages, err := h.svc.GetMessages(ctx.Request.Context(), uint(doubtID), limit, offset)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, messages)
}
