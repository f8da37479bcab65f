package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tkexclusiv/catalog_api/internal/service"
	"github.com/tkexclusiv/catalog_api/internal/utils"
)

// SessionTokenHeader carries the customer session token.
const SessionTokenHeader = "X-Session-Token"

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Handle dispatches on the action query parameter, login by default.
func (h *AuthHandler) Handle(c *gin.Context) {
	switch c.DefaultQuery("action", "login") {
	case "register":
		h.register(c)
	case "login":
		h.login(c)
	case "logout":
		h.logout(c)
	case "me":
		h.me(c)
	default:
		utils.Fail(c, utils.NewValidationError("Invalid action"))
	}
}

func (h *AuthHandler) register(c *gin.Context) {
	var req service.RegisterInput
	if err := bindJSON(c, &req); err != nil {
		utils.Fail(c, err)
		return
	}
	res, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, http.StatusOK, res)
}

func (h *AuthHandler) login(c *gin.Context) {
	var req service.LoginInput
	if err := bindJSON(c, &req); err != nil {
		utils.Fail(c, err)
		return
	}
	res, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, http.StatusOK, res)
}

func (h *AuthHandler) logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), c.GetHeader(SessionTokenHeader)); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) me(c *gin.Context) {
	user, err := h.authService.Me(c.Request.Context(), c.GetHeader(SessionTokenHeader))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"user": user})
}
