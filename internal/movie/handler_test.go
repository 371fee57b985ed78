package movie

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newSearchRouter(t *testing.T, upstream http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.LoadHTMLGlob("../../web/templates/*.html")

	NewHandler(stubUpstream(t, upstream)).RegisterRoutes(router)
	return router
}

func doSearch(router *gin.Engine, title string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search?movie="+url.QueryEscape(title), nil)
	router.ServeHTTP(rec, req)
	return rec
}

func TestSearchRoute(t *testing.T) {
	t.Run("renders the extracted fields", func(t *testing.T) {
		router := newSearchRouter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(inceptionFixture))
		})

		rec := doSearch(router, "Inception")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Inception")
		assert.Contains(t, body, "2010")
		assert.Contains(t, body, "Christopher Nolan")
		assert.Contains(t, body, "8.8/10")
		assert.Contains(t, body, "87%")
		assert.Contains(t, body, "74/100")
	})

	t.Run("partial ratings still render", func(t *testing.T) {
		router := newSearchRouter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"Title": "Obscure",
				"Year": "1999",
				"Ratings": [{"Source": "Internet Movie Database", "Value": "6.1/10"}],
				"Response": "True"
			}`))
		})

		rec := doSearch(router, "Obscure")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Obscure")
		assert.Contains(t, body, "6.1/10")
		assert.NotContains(t, body, "Rotten Tomatoes")
	})

	t.Run("missing title is a caller error", func(t *testing.T) {
		router := newSearchRouter(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("upstream must not be called")
		})

		rec := doSearch(router, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "enter a movie title")
	})

	t.Run("upstream not-found renders the error view", func(t *testing.T) {
		router := newSearchRouter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Response": "False", "Error": "Movie not found!"}`))
		})

		rec := doSearch(router, "no such movie")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "no movie found")
	})

	t.Run("broken upstream renders the error view", func(t *testing.T) {
		router := newSearchRouter(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		})

		rec := doSearch(router, "Inception")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
