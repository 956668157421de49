package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khasanoff/uaa_backend/internal/apperrors"
	portssvc "github.com/khasanoff/uaa_backend/internal/core/ports/services"
	"github.com/khasanoff/uaa_backend/internal/middleware"
	"github.com/khasanoff/uaa_backend/internal/platform/config"
)

// oauthStateCookie carries the CSRF state between the redirect and the callback.
const oauthStateCookie = "oauth_state"

// googleOAuthHandler handles the browser-driven Google OAuth flow.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	frontendURL        string
}

// newGoogleOAuthHandler creates a new googleOAuthHandler.
func newGoogleOAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *googleOAuthHandler {
	return &googleOAuthHandler{
		googleOAuthService: services.GoogleOAuth,
		userService:        services.User,
		tokenService:       services.Token,
		frontendURL:        cfg.FrontendURL,
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes on /api/user.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newGoogleOAuthHandler(cfg, services)

	google := rg.Group("/google")
	{
		google.GET("", h.redirectToGoogle)
		google.GET("/callback", h.googleCallback)
	}
}

// redirectToGoogle godoc
// @Summary Start Google login
// @Description Redirects the browser to the Google consent page.
// @Tags oauth
// @Success 302
// @Router /api/user/google [get]
func (h *googleOAuthHandler) redirectToGoogle(c *gin.Context) {
	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusFound, h.googleOAuthService.GetLoginURL(c.Request.Context(), state))
}

// googleCallback godoc
// @Summary Handle the Google OAuth callback
// @Description Exchanges the authorization code, validates the ID token, finds or creates the user and redirects to the frontend with a session token.
// @Tags oauth
// @Success 302
// @Failure 400 {object} dto.ErrorResponse "Google Login failed"
// @Router /api/user/google/callback [get]
func (h *googleOAuthHandler) googleCallback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch on Google callback")
		respondError(c, apperrors.NewBadRequestError("Google Login failed"))
		return
	}
	// State is single-use
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		respondError(c, apperrors.NewBadRequestError("Google Login failed"))
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Warn("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		respondError(c, apperrors.NewBadRequestError("Google Login failed"))
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Warn("ID token missing from Google token response")
		respondError(c, apperrors.NewBadRequestError("Google Login failed"))
		return
	}

	info, err := h.googleOAuthService.ValidateIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		respondError(c, apperrors.NewBadRequestError("Google Login failed"))
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(ctx, *info)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokenService.IssueAuthToken(ctx, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusFound, h.frontendURL+"/auto-login?token="+token)
}
