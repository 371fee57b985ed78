package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulbhardwaj94/IMDB-Clone/internal/auth/credentials"
)

func (h *Handler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	u, err := h.credentialService.Authenticate(
		c.Request.Context(),
		username,
		password,
	)

	if err != nil {
		if errors.Is(err, credentials.ErrInvalidCredentials) {
			logAuthFailure("login rejected", err)
			c.Redirect(http.StatusFound, "/login")
			return
		}

		renderError(c, http.StatusInternalServerError, "something went wrong, try again later")
		return
	}

	if err := h.startSession(c, u); err != nil {
		renderError(c, http.StatusInternalServerError, "something went wrong, try again later")
		return
	}

	c.Redirect(http.StatusFound, "/userpage")
}
