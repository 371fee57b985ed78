package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulbhardwaj94/IMDB-Clone/internal/logger"
)

const googleProviderName = "google"

// GoogleLogin begins the external flow: state and PKCE material go
// into short-lived cookies, the browser goes to Google.
func (h *Handler) GoogleLogin(c *gin.Context) {
	p, err := h.providers.Get(googleProviderName)
	if err != nil {
		logger.Warn("google sign-in requested but provider not configured", nil)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	state := generateState(c)
	_, codeChallenge := generatePKCE(c)

	authURL := p.AuthCodeURL(state, codeChallenge)
	c.Redirect(http.StatusFound, authURL)
}

// GoogleCallback finishes the external flow. Every provider-reported
// failure lands the user back on the login form.
func (h *Handler) GoogleCallback(c *gin.Context) {
	p, err := h.providers.Get(googleProviderName)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if !validateState(c) {
		logger.Warn("oauth callback state mismatch", nil)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	// Provider-reported error (user denied consent, expired request).
	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("oauth callback returned error", map[string]any{
			"provider": googleProviderName,
			"error":    errParam,
			"desc":     c.Query("error_description"),
		})
		c.Redirect(http.StatusFound, "/login")
		return
	}

	code := c.Query("code")
	if code == "" {
		logger.Error("oauth callback missing code and error", nil)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	codeVerifier := getPKCEVerifier(c)
	if codeVerifier == "" {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	identity, err := p.ExchangeCode(
		c.Request.Context(),
		code,
		codeVerifier,
	)
	if err != nil {
		logAuthFailure("google code exchange failed", err)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	u, err := h.credentialService.FindOrCreateByGoogleID(
		c.Request.Context(),
		identity.ProviderUserID,
	)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "something went wrong, try again later")
		return
	}

	if err := h.startSession(c, u); err != nil {
		renderError(c, http.StatusInternalServerError, "something went wrong, try again later")
		return
	}

	c.Redirect(http.StatusFound, "/userpage")
}
