package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulbhardwaj94/IMDB-Clone/internal/user"
)

func (h *Handler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

func (h *Handler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	u, err := h.credentialService.Register(
		c.Request.Context(),
		username,
		password,
	)

	if err != nil {
		if errors.Is(err, user.ErrStoreUnavailable) {
			renderError(c, http.StatusInternalServerError, "something went wrong, try again later")
			return
		}

		// Duplicate username, short password and the like all send the
		// user back to the form.
		logAuthFailure("registration rejected", err)
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if err := h.startSession(c, u); err != nil {
		renderError(c, http.StatusInternalServerError, "something went wrong, try again later")
		return
	}

	c.Redirect(http.StatusFound, "/userpage")
}
