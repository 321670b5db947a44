package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"eurobot-backend/internal/api/handlers"
	"eurobot-backend/internal/database/models"
	"eurobot-backend/internal/service"
)

// DefaultBaseURL matches the server's default port and API prefix
const DefaultBaseURL = "http://localhost:5000/api"

// APIError is returned for any non-2xx response
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to the results API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option customizes a Client
type Option func(*Client)

// WithToken sends the admin bearer token on every request
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the default 10s-timeout HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for baseURL, e.g. http://localhost:5000/api
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Teams lists every team
func (c *Client) Teams(ctx context.Context) ([]models.Team, error) {
	var out []models.Team
	if err := c.get(ctx, "/teams", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Team fetches a team by id
func (c *Client) Team(ctx context.Context, id string) (*models.Team, error) {
	var out models.Team
	if err := c.get(ctx, "/teams/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TeamMatches lists the matches of the named team
func (c *Client) TeamMatches(ctx context.Context, teamName string) ([]models.Match, error) {
	var out []models.Match
	if err := c.get(ctx, "/teams/"+url.PathEscape(teamName)+"/matches", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Matches lists matches, restricted to serie when it is positive
func (c *Client) Matches(ctx context.Context, serie int) ([]models.Match, error) {
	var out []models.Match
	if err := c.get(ctx, "/matches", serieQuery(serie), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Match fetches a match by id
func (c *Client) Match(ctx context.Context, id string) (*models.Match, error) {
	var out models.Match
	if err := c.get(ctx, "/matches/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Rankings lists rankings, restricted to serie when it is positive
func (c *Client) Rankings(ctx context.Context, serie int) ([]models.Ranking, error) {
	var out []models.Ranking
	if err := c.get(ctx, "/rankings", serieQuery(serie), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RankingsBySerie fetches the ranking table of one serie
func (c *Client) RankingsBySerie(ctx context.Context, serie int) ([]models.Ranking, error) {
	var out []models.Ranking
	if err := c.get(ctx, "/rankings/serie/"+strconv.Itoa(serie), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Series lists every serie
func (c *Client) Series(ctx context.Context) ([]models.Serie, error) {
	var out []models.Serie
	if err := c.get(ctx, "/series", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Serie fetches a serie by id
func (c *Client) Serie(ctx context.Context, id string) (*models.Serie, error) {
	var out models.Serie
	if err := c.get(ctx, "/series/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SerieByNumber fetches a serie by its number
func (c *Client) SerieByNumber(ctx context.Context, number int) (*models.Serie, error) {
	var out models.Serie
	if err := c.get(ctx, "/series/number/"+strconv.Itoa(number), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSerie creates a serie
func (c *Client) CreateSerie(ctx context.Context, req *service.CreateSerieRequest) (*models.Serie, error) {
	var out models.Serie
	if err := c.do(ctx, http.MethodPost, "/series", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSerie applies a partial update
func (c *Client) UpdateSerie(ctx context.Context, id string, req *service.UpdateSerieRequest) (*models.Serie, error) {
	var out models.Serie
	if err := c.do(ctx, http.MethodPut, "/series/"+url.PathEscape(id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSerie deletes a serie
func (c *Client) DeleteSerie(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/series/"+url.PathEscape(id), nil, nil, nil)
}

// SerieStats fetches the aggregates of one serie
func (c *Client) SerieStats(ctx context.Context, id string) (*service.SerieStatsResponse, error) {
	var out service.SerieStatsResponse
	if err := c.get(ctx, "/series/"+url.PathEscape(id)+"/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats fetches the dashboard summary
func (c *Client) Stats(ctx context.Context) (*service.StatsResponse, error) {
	var out service.StatsResponse
	if err := c.get(ctx, "/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health fetches the API health. A 503 is returned as an *APIError.
func (c *Client) Health(ctx context.Context) (*handlers.HealthResponse, error) {
	var out handlers.HealthResponse
	if err := c.get(ctx, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reseed asks the server to re-read its CSV exports
func (c *Client) Reseed(ctx context.Context) (*handlers.ReseedResponse, error) {
	var out handlers.ReseedResponse
	if err := c.do(ctx, http.MethodPost, "/reseed", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(data, resp.Status)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage prefers the {"error": "..."} body the API returns
func errorMessage(data []byte, fallback string) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return body.Error
	}
	if text := strings.TrimSpace(string(data)); text != "" {
		return text
	}
	return fallback
}

func serieQuery(serie int) url.Values {
	if serie <= 0 {
		return nil
	}
	return url.Values{"serie": []string{strconv.Itoa(serie)}}
}
