package v1

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doubtlink/doubtlink-api/internal/api/handler/v1/response"
)

type UploadHandler struct {
	uploadDir string
}

func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{
		uploadDir: uploadDir,
	}
}

// HandleUpload godoc
// @Summary      Upload an image
// @Description  Stores the file and returns a retrievable URL to embed in doubts or chat messages
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file true "image file"
// @Success      201  {object}  response.UploadResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /uploads [post]
// @Security     BearerAuth
func (h *UploadHandler) HandleUpload(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("missing image file")))

		return
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	if err = ctx.SaveUploadedFile(file, filepath.Join(h.uploadDir, filename)); err != nil {
		err = fmt.Errorf("v1.HandleUpload -> ctx.SaveUploadedFile -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.UploadResponse{
		URL: "/uploads/" + filename,
	})
}
