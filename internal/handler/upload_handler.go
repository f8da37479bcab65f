package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tkexclusiv/catalog_api/internal/service"
	"github.com/tkexclusiv/catalog_api/internal/utils"
)

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadImage handles POST /upload-image.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		utils.Fail(c, utils.NewMethodNotAllowedError())
		return
	}

	var req service.UploadInput
	if err := bindJSON(c, &req); err != nil {
		utils.Fail(c, err)
		return
	}

	url, err := h.uploadService.UploadImage(c.Request.Context(), req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"url": url})
}
