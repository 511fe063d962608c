package handlers

import (
	"errors"
	"net/http"

	"discussion-board/config"
	"discussion-board/helper"
	"discussion-board/middleware"
	"discussion-board/models"
	"discussion-board/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  services.AuthService
	Helper       *helper.HTTPHelper
	SecureCookie bool
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h, SecureCookie: secureCookie}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	if err := h.Helper.Validate.Struct(req); err != nil {
		h.Helper.SendInvalid(c, err)
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.setTokenCookie(c, response.Token)
	h.Helper.SendSuccess(c, "Register success", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	if err := h.Helper.Validate.Struct(req); err != nil {
		h.Helper.SendInvalid(c, err)
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.Helper.SendUnauthorizedError(c, err.Error(), h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendDatabaseError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.setTokenCookie(c, response.Token)
	h.Helper.SendSuccess(c, "Login success", response)
}

// Logout drops the browser token and returns to the discussion list.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.SecureCookie, true)
	c.Redirect(http.StatusSeeOther, "/discussions")
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.GetUserByID(userID.(uint))
	if err != nil {
		h.Helper.SendNotFoundError(c, "User not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", user)
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, int(config.JWTExpiration.Seconds()), "/", "", h.SecureCookie, true)
}
