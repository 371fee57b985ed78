package movie

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inceptionFixture = `{
	"Title": "Inception",
	"Year": "2010",
	"Rated": "PG-13",
	"Released": "16 Jul 2010",
	"Runtime": "148 min",
	"Genre": "Action, Adventure, Sci-Fi",
	"Director": "Christopher Nolan",
	"Writer": "Christopher Nolan",
	"Actors": "Leonardo DiCaprio, Joseph Gordon-Levitt, Elliot Page",
	"Plot": "A thief who steals corporate secrets through the use of dream-sharing technology.",
	"Poster": "https://example.com/inception.jpg",
	"Ratings": [
		{"Source": "Internet Movie Database", "Value": "8.8/10"},
		{"Source": "Rotten Tomatoes", "Value": "87%"},
		{"Source": "Metacritic", "Value": "74/100"}
	],
	"imdbRating": "8.8",
	"Response": "True"
}`

func stubUpstream(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key")
}

func TestLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("extracts fields verbatim", func(t *testing.T) {
		client := stubUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Inception", r.URL.Query().Get("t"))
			assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
			w.Write([]byte(inceptionFixture))
		})

		view, err := client.Lookup(ctx, "Inception")
		require.NoError(t, err)

		assert.Equal(t, "Inception", view.Title)
		assert.Equal(t, "2010", view.Year)
		assert.Equal(t, "PG-13", view.Rated)
		assert.Equal(t, "16 Jul 2010", view.Released)
		assert.Equal(t, "148 min", view.Runtime)
		assert.Equal(t, "Action, Adventure, Sci-Fi", view.Genre)
		assert.Equal(t, "Christopher Nolan", view.Director)
		assert.Equal(t, "Christopher Nolan", view.Writer)
		assert.Equal(t, "Leonardo DiCaprio, Joseph Gordon-Levitt, Elliot Page", view.Actors)
		assert.Equal(t, "https://example.com/inception.jpg", view.Poster)
		assert.Equal(t, "Internet Movie Database", view.ImdbSource)
		assert.Equal(t, "8.8/10", view.ImdbValue)
		assert.Equal(t, "Rotten Tomatoes", view.RottenSource)
		assert.Equal(t, "87%", view.RottenValue)
		assert.Equal(t, "Metacritic", view.MetaSource)
		assert.Equal(t, "74/100", view.MetaValue)
	})

	t.Run("ratings are matched by name, not position", func(t *testing.T) {
		client := stubUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"Title": "Reordered",
				"Ratings": [
					{"Source": "Metacritic", "Value": "74/100"},
					{"Source": "Internet Movie Database", "Value": "8.8/10"},
					{"Source": "Rotten Tomatoes", "Value": "87%"}
				],
				"Response": "True"
			}`))
		})

		view, err := client.Lookup(ctx, "Reordered")
		require.NoError(t, err)
		assert.Equal(t, "8.8/10", view.ImdbValue)
		assert.Equal(t, "87%", view.RottenValue)
		assert.Equal(t, "74/100", view.MetaValue)
	})

	t.Run("short ratings list surfaces partial data, not a crash", func(t *testing.T) {
		client := stubUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"Title": "Obscure",
				"Year": "1999",
				"Ratings": [
					{"Source": "Internet Movie Database", "Value": "6.1/10"}
				],
				"Response": "True"
			}`))
		})

		view, err := client.Lookup(ctx, "Obscure")
		assert.ErrorIs(t, err, ErrPartialData)
		require.NotNil(t, view)
		assert.Equal(t, "Obscure", view.Title)
		assert.Equal(t, "6.1/10", view.ImdbValue)
		assert.Empty(t, view.RottenSource)
		assert.Empty(t, view.MetaSource)
	})

	t.Run("imdb rating falls back to top-level field", func(t *testing.T) {
		client := stubUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"Title": "NoRatingsList",
				"Ratings": [],
				"imdbRating": "7.2",
				"Response": "True"
			}`))
		})

		view, err := client.Lookup(ctx, "NoRatingsList")
		assert.ErrorIs(t, err, ErrPartialData)
		require.NotNil(t, view)
		assert.Equal(t, "Internet Movie Database", view.ImdbSource)
		assert.Equal(t, "7.2", view.ImdbValue)
	})

	t.Run("upstream not-found signal", func(t *testing.T) {
		client := stubUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Response": "False", "Error": "Movie not found!"}`))
		})

		view, err := client.Lookup(ctx, "no such movie")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, view)
	})

	t.Run("invalid json is an upstream error", func(t *testing.T) {
		client := stubUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>definitely not json</html>`))
		})

		_, err := client.Lookup(ctx, "Inception")
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("empty title is rejected before the upstream call", func(t *testing.T) {
		calls := 0
		client := stubUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
		})

		for _, title := range []string{"", "   ", "\t"} {
			_, err := client.Lookup(ctx, title)
			assert.ErrorIs(t, err, ErrEmptyTitle)
		}
		assert.Zero(t, calls)
	})

	t.Run("slow upstream is a timeout", func(t *testing.T) {
		client := stubUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(inceptionFixture))
		})
		client.httpClient.Timeout = 50 * time.Millisecond

		_, err := client.Lookup(ctx, "Inception")
		assert.ErrorIs(t, err, ErrUpstreamTimeout)
	})

	t.Run("unreachable upstream is an upstream error", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "test-key")

		_, err := client.Lookup(ctx, "Inception")
		assert.ErrorIs(t, err, ErrUpstream)
	})
}
