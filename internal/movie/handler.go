package movie

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulbhardwaj94/IMDB-Clone/internal/logger"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/search", h.Search)
}

// Search renders the results view for ?movie=<title>.
func (h *Handler) Search(c *gin.Context) {
	title := c.Query("movie")

	view, err := h.client.Lookup(c.Request.Context(), title)

	switch {
	case err == nil:
		c.HTML(http.StatusOK, "search.html", view)

	case errors.Is(err, ErrPartialData):
		// Still renderable, some rating sources absent upstream.
		logger.Warn("movie lookup returned partial ratings", map[string]any{
			"title": title,
		})
		c.HTML(http.StatusOK, "search.html", view)

	case errors.Is(err, ErrEmptyTitle):
		h.renderError(c, http.StatusBadRequest, "enter a movie title to search")

	case errors.Is(err, ErrNotFound):
		h.renderError(c, http.StatusNotFound, "no movie found for \""+title+"\"")

	case errors.Is(err, ErrUpstreamTimeout):
		logger.Error("movie lookup timed out", map[string]any{
			"title": title,
		})
		h.renderError(c, http.StatusGatewayTimeout, "the movie service took too long to answer")

	default:
		logger.Error("movie lookup failed", map[string]any{
			"title": title,
			"error": err.Error(),
		})
		h.renderError(c, http.StatusBadGateway, "the movie service is unavailable")
	}
}

func (h *Handler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}
