package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eurobot-backend/internal/database/models"
	"eurobot-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", WithToken("secret-token"))
}

func TestClient_Matches_SendsSerieFilter(t *testing.T) {
	var gotPath, gotQuery string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]models.Match{{MatchNumber: 5, Serie: 2}})
	})

	matches, err := c.Matches(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 5, matches[0].MatchNumber)
	assert.Equal(t, "/api/matches", gotPath)
	assert.Equal(t, "serie=2", gotQuery)

	_, err = c.Matches(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestClient_TeamMatches_EscapesName(t *testing.T) {
	var gotPath string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	})

	matches, err := c.TeamMatches(context.Background(), "Les Robots/Fous")
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Equal(t, "/api/teams/Les Robots/Fous/matches", gotPath)
}

func TestClient_APIError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"serie not found"}`))
	})

	_, err := c.SerieByNumber(context.Background(), 9)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "serie not found", apiErr.Message)
}

func TestClient_APIError_PlainBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := c.Stats(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestClient_CreateSerie_SendsBodyAndToken(t *testing.T) {
	var got service.CreateSerieRequest
	var auth, method string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Serie{SerieNumber: got.SerieNumber, Name: got.Name})
	})

	serie, err := c.CreateSerie(context.Background(), &service.CreateSerieRequest{SerieNumber: 3, Name: "Série 3"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "Bearer secret-token", auth)
	assert.Equal(t, 3, got.SerieNumber)
	assert.Equal(t, "Série 3", serie.Name)
}

func TestClient_DeleteSerie(t *testing.T) {
	var method, path string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		_, _ = w.Write([]byte(`{"message":"Serie deleted successfully"}`))
	})

	require.NoError(t, c.DeleteSerie(context.Background(), "abc"))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/api/series/abc", path)
}

func TestNew_DefaultBaseURL(t *testing.T) {
	c := New("")
	assert.Equal(t, DefaultBaseURL, c.baseURL)

	c = New("http://example.com/api/")
	assert.Equal(t, "http://example.com/api", c.baseURL)
}
