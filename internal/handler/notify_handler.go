package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tkexclusiv/catalog_api/internal/service"
	"github.com/tkexclusiv/catalog_api/internal/utils"
)

type NotifyHandler struct {
	notifyService *service.NotifyService
}

func NewNotifyHandler(notifyService *service.NotifyService) *NotifyHandler {
	return &NotifyHandler{notifyService: notifyService}
}

// NotifyStock handles POST /notify-stock. Once the request validates the
// response is success whether or not the mail went out.
func (h *NotifyHandler) NotifyStock(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		utils.Fail(c, utils.NewMethodNotAllowedError())
		return
	}

	var req struct {
		ProductName string `json:"productName" binding:"required"`
		Email       string `json:"email" binding:"required"`
		Phone       string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, utils.NewValidationError("Product name and email are required"))
		return
	}

	err := h.notifyService.NotifyStock(c.Request.Context(), service.NotifyInput{
		ProductName: req.ProductName,
		Email:       req.Email,
		Phone:       req.Phone,
	})
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Notification request received",
	})
}
