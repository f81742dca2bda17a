package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doubtlink/doubtlink-api/internal/api/handler/v1/request"
	"github.com/doubtlink/doubtlink-api/internal/api/handler/v1/response"
	"github.com/doubtlink/doubtlink-api/internal/domain"
	"github.com/doubtlink/doubtlink-api/internal/service"
)

type DoubtService interface {
	CreateDoubt(ctx context.Context, doubt domain.Doubt, asker domain.User) (domain.Doubt, error)
	GetDoubts(ctx context.Context) ([]domain.Doubt, error)
	GetDoubt(ctx context.Context, id uint) (domain.Doubt, error)
	AnswerDoubt(ctx context.Context, doubtID uint, answer string, senior domain.User) (domain.Doubt, error)
}

type DoubtHandler struct {
	svc  DoubtService
	uSvc UserService
}

func NewDoubtHandler(svc DoubtService, uSvc UserService) *DoubtHandler {
	return &DoubtHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateDoubt godoc
// @Summary      Post a new doubt
// @Description  Juniors post a question thread, optionally assigned to a specific senior
// @Tags         doubts
// @Produce      json
// @Param        request   body      request.CreateDoubtRequest true "request body"
// @Success      201      {object}   domain.Doubt
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /doubts [post]
// @Security     BearerAuth
func (h *DoubtHandler) HandleCreateDoubt(ctx *gin.Context) {
	var req request.CreateDoubtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	doubt, err := h.svc.CreateDoubt(ctx.Request.Context(), domain.Doubt{
		Title:            req.Title,
		Description:      req.Description,
		SeniorAssignedID: req.SeniorAssignedID,
		ImageURL:         req.ImageURL,
	}, user)
	if err != nil {
		if errors.Is(err, service.ErrOnlyJuniorsCanAsk) {
			response.RenderErr(ctx, response.ErrForbidden(service.ErrOnlyJuniorsCanAsk))

			return
		}

		err = fmt.Errorf("v1.HandleCreateDoubt -> h.svc.CreateDoubt -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, doubt)
}

// HandleGetDoubts godoc
// @Summary      List all doubts
// @Tags         doubts
// @Produce      json
// @Success      200  {array}   domain.Doubt
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /doubts [get]
// @Security     BearerAuth
func (h *DoubtHandler) HandleGetDoubts(ctx *gin.Context) {
	doubts, err := h.svc.GetDoubts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDoubts -> h.svc.GetDoubts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, doubts)
}

// HandleAnswerDoubt godoc
// @Summary      Answer a doubt
// @Description  Seniors answer a doubt; awards one point and updates the leaderboard
// @Tags         doubts
// @Produce      json
// @Param        doubtID   path      int true "Doubt ID"
// @Param        request   body      request.AnswerDoubtRequest true "request body"
// @Success      200      {object}   domain.Doubt
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /doubts/{doubtID}/answer [post]
// @Security     BearerAuth
func (h *DoubtHandler) HandleAnswerDoubt(ctx *gin.Context) {
	doubtID, err := strconv.ParseUint(ctx.Param("doubtID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid doubt ID")))

		return
	}

	var req request.AnswerDoubtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	doubt, err := h.svc.AnswerDoubt(ctx.Request.Context(), uint(doubtID), req.Answer, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOnlySeniorsCanAnswer):
			response.RenderErr(ctx, response.ErrForbidden(service.ErrOnlySeniorsCanAnswer))
		case errors.Is(err, service.ErrDoubtNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrDoubtNotFound))
		case errors.Is(err, service.ErrDoubtAlreadySolved):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrDoubtAlreadySolved))
		default:
			err = fmt.Errorf("v1.HandleAnswerDoubt -> h.svc.AnswerDoubt -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, doubt)
}
