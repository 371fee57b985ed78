package movie

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrEmptyTitle      = errors.New("movie: empty title")
	ErrNotFound        = errors.New("movie: not found")
	ErrPartialData     = errors.New("movie: ratings incomplete")
	ErrUpstream        = errors.New("movie: upstream error")
	ErrUpstreamTimeout = errors.New("movie: upstream timeout")
)

// Rating source names as OMDb reports them.
const (
	sourceIMDB       = "Internet Movie Database"
	sourceRotten     = "Rotten Tomatoes"
	sourceMetacritic = "Metacritic"
)

// Client looks up a movie by title against the OMDb API. One outbound
// request per call, no caching, no retries.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

type payload struct {
	Title      string   `json:"Title"`
	Year       string   `json:"Year"`
	Rated      string   `json:"Rated"`
	Released   string   `json:"Released"`
	Runtime    string   `json:"Runtime"`
	Genre      string   `json:"Genre"`
	Director   string   `json:"Director"`
	Writer     string   `json:"Writer"`
	Actors     string   `json:"Actors"`
	Plot       string   `json:"Plot"`
	Poster     string   `json:"Poster"`
	Ratings    []rating `json:"Ratings"`
	ImdbRating string   `json:"imdbRating"`
	Response   string   `json:"Response"`
	Error      string   `json:"Error"`
}

// Lookup performs a single upstream request and reshapes the payload
// for rendering. Ratings are matched by source name; a missing source
// leaves its fields blank and the view is returned together with
// ErrPartialData so the caller may still render it.
func (c *Client) Lookup(ctx context.Context, title string) (*View, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	endpoint := fmt.Sprintf(
		"%s/?t=%s&apikey=%s",
		c.baseURL,
		url.QueryEscape(title),
		url.QueryEscape(c.apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	// Responses are small; buffer the whole body before parsing.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrUpstream, err)
	}

	if !strings.EqualFold(p.Response, "True") {
		if p.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p.Error)
		}
		return nil, ErrNotFound
	}

	view, complete := buildView(&p)
	if !complete {
		return view, ErrPartialData
	}
	return view, nil
}

func buildView(p *payload) (*View, bool) {
	bySource := make(map[string]rating, len(p.Ratings))
	for _, r := range p.Ratings {
		bySource[r.Source] = r
	}

	v := &View{
		Title:    p.Title,
		Year:     p.Year,
		Rated:    p.Rated,
		Released: p.Released,
		Runtime:  p.Runtime,
		Genre:    p.Genre,
		Director: p.Director,
		Writer:   p.Writer,
		Actors:   p.Actors,
		Plot:     p.Plot,
		Poster:   p.Poster,
	}

	complete := true

	if r, ok := bySource[sourceIMDB]; ok {
		v.ImdbSource = r.Source
		v.ImdbValue = r.Value
	} else if p.ImdbRating != "" {
		v.ImdbSource = sourceIMDB
		v.ImdbValue = p.ImdbRating
	} else {
		complete = false
	}

	if r, ok := bySource[sourceRotten]; ok {
		v.RottenSource = r.Source
		v.RottenValue = r.Value
	} else {
		complete = false
	}

	if r, ok := bySource[sourceMetacritic]; ok {
		v.MetaSource = r.Source
		v.MetaValue = r.Value
	} else {
		complete = false
	}

	return v, complete
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
