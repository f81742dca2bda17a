package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doubtlink/doubtlink-api/internal/api/handler/v1/response"
	"github.com/doubtlink/doubtlink-api/internal/domain"
	"github.com/doubtlink/doubtlink-api/internal/service"
)

type MeetingService interface {
	StartMeeting(ctx context.Context, doubtID uint, senior domain.User) (domain.Meeting, error)
	GetMeetings(ctx context.Context, doubtID uint) ([]domain.Meeting, error)
}

type MeetingHandler struct {
	svc  MeetingService
	uSvc UserService
}

func NewMeetingHandler(svc MeetingService, uSvc UserService) *MeetingHandler {
	return &MeetingHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleStartMeeting godoc
// @Summary      Start a meeting for a doubt
// @Description  Persists a meeting, stamps the doubt's link and posts a meeting-invite chat message
// @Tags         meetings
// @Produce      json
// @Param        doubtID   path      int true "Doubt ID"
// @Success      201      {object}   response.StartMeetingResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /doubts/{doubtID}/meeting [post]
// @Security     BearerAuth
func (h *MeetingHandler) HandleStartMeeting(ctx *gin.Context) {
	doubtID, err := strconv.ParseUint(ctx.Param("doubtID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid doubt ID")))

		return
	}

	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	meeting, err := h.svc.StartMeeting(ctx.Request.Context(), uint(doubtID), user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOnlySeniorsCanStartMeetings):
			response.RenderErr(ctx, response.ErrForbidden(service.ErrOnlySeniorsCanStartMeetings))
		case errors.Is(err, service.ErrDoubtNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrDoubtNotFound))
		default:
			err = fmt.Errorf("v1.HandleStartMeeting -> h.svc.StartMeeting -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, response.StartMeetingResponse{
		Message:     "meeting started",
		MeetingLink: meeting.MeetingLink,
		Meeting:     meeting,
	})
}

// HandleGetMeetings godoc
// @Summary      List meetings for a doubt
// @Tags         meetings
// @Produce      json
// @Param        doubtID  path     int true "Doubt ID"
// @Success      200      {array}  domain.Meeting
// @Failure      400      {object} response.Err
// @Failure      401      {object} response.Err
// @Failure      500      {object} response.Err
// @Router       /doubts/{doubtID}/meetings [get]
// @Security     BearerAuth
func (h *MeetingHandler) HandleGetMeetings(ctx *gin.Context) {
	doubtID, err := strconv.ParseUint(ctx.Param("doubtID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid doubt ID")))

		return
	}

	meetings, err := h.svc.GetMeetings(ctx.Request.Context(), uint(doubtID))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMeetings -> h.svc.GetMeetings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, meetings)
}
