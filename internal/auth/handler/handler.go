package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rahulbhardwaj94/IMDB-Clone/internal/auth/credentials"
	"github.com/rahulbhardwaj94/IMDB-Clone/internal/auth/provider"
	"github.com/rahulbhardwaj94/IMDB-Clone/internal/logger"
	"github.com/rahulbhardwaj94/IMDB-Clone/internal/session"
	"github.com/rahulbhardwaj94/IMDB-Clone/internal/user"
)

type Handler struct {
	providers         *provider.Registry
	sessionStore      session.Store
	credentialService *credentials.Service
	sessionTTL        time.Duration
}

func NewHandler(
	registry *provider.Registry,
	sessionStore session.Store,
	credentialService *credentials.Service,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		providers:         registry,
		sessionStore:      sessionStore,
		credentialService: credentialService,
		sessionTTL:        sessionTTL,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/register", h.RegisterForm)
	r.POST("/register", h.Register)
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/auth/google", h.GoogleLogin)
	r.GET("/auth/google/userpage", h.GoogleCallback)
	r.GET("/logout", h.Logout)
}

// startSession binds a fresh token to the user's claims and issues the
// session cookie. Called after any successful authentication.
func (h *Handler) startSession(c *gin.Context, u *user.User) error {
	sessionID, err := session.GenerateID()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(h.sessionTTL)

	if err := h.sessionStore.Create(
		c.Request.Context(),
		session.Session{
			SessionID: sessionID,
			UserID:    u.ID,
			Username:  u.Username,
			ExpiresAt: expiresAt,
		},
	); err != nil {
		return err
	}

	session.SetCookie(
		c.Writer,
		sessionID,
		expiresAt,
		session.CookieOptions{
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		},
	)

	return nil
}

func (h *Handler) Logout(c *gin.Context) {

	// Delete session from store (best-effort); unknown tokens are a
	// no-op, logout stays idempotent.
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		_ = h.sessionStore.Delete(c.Request.Context(), cookie.Value)
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Path:     "/",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.Redirect(http.StatusFound, "/")
}

// renderError shows the generic user-visible error page. Store and
// network failures end up here instead of crashing the handler.
func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}

func logAuthFailure(event string, err error) {
	logger.Warn(event, map[string]any{
		"error": err.Error(),
	})
}
