package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doubtlink/doubtlink-api/internal/api/handler/v1/response"
	"github.com/doubtlink/doubtlink-api/internal/domain"
)

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type LeaderboardHandler struct {
	svc LeaderboardService
}

func NewLeaderboardHandler(svc LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		svc: svc,
	}
}

// HandleGetLeaderboard godoc
// @Summary      Get the seniors leaderboard
// @Description  Entries sorted by points descending with positional ranks
// @Tags         leaderboard
// @Produce      json
// @Success      200  {array}   domain.LeaderboardEntry
// @Failure      500  {object}  response.Err
// @Router       /leaderboard [get]
func (h *LeaderboardHandler) HandleGetLeaderboard(ctx *gin.Context) {
	entries, err := h.svc.GetLeaderboard(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetLeaderboard -> h.svc.GetLeaderboard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, entries)
}
