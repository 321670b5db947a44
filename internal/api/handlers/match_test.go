package handlers_test

import (
	"net/http"
	"testing"

	"eurobot-backend/internal/api/handlers"
	"eurobot-backend/internal/database/models"
	apperrors "eurobot-backend/internal/errors"
	"eurobot-backend/internal/mocks"
	"eurobot-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupMatchHandler(t *testing.T) (*mocks.MockMatchServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockMatchServiceInterface(ctrl)
	h := handlers.NewMatchHandler(svc)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/matches", h.ListMatches)
	httpSuite.Router.GET("/api/matches/:id", h.GetMatch)
	return svc, httpSuite
}

func intPtr(n int) *int { return &n }

func TestListMatches(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		serie      *int
		limit      int
		callsSvc   bool
		wantStatus int
		wantError  string
	}{
		{name: "no filter", query: "", callsSvc: true, wantStatus: http.StatusOK},
		{name: "serie filter", query: "?serie=2", serie: intPtr(2), callsSvc: true, wantStatus: http.StatusOK},
		{name: "serie and limit", query: "?serie=1&limit=5", serie: intPtr(1), limit: 5, callsSvc: true, wantStatus: http.StatusOK},
		{name: "non numeric serie", query: "?serie=abc", wantStatus: http.StatusBadRequest, wantError: "invalid serie"},
		{name: "zero serie", query: "?serie=0", wantStatus: http.StatusBadRequest, wantError: "invalid serie"},
		{name: "negative limit", query: "?limit=-1", wantStatus: http.StatusBadRequest, wantError: "invalid limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, httpSuite := setupMatchHandler(t)
			if tt.callsSvc {
				svc.EXPECT().List(tt.serie, tt.limit).Return([]models.Match{}, nil)
			}

			recorder := httpSuite.MakeRequest(http.MethodGet, "/api/matches"+tt.query, nil)

			if tt.wantError != "" {
				testutils.AssertErrorResponse(t, recorder, tt.wantStatus, tt.wantError)
				return
			}
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestGetMatch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, httpSuite := setupMatchHandler(t)
		id := uuid.New()
		timecode := 95
		svc.EXPECT().GetByID(id).Return(&models.Match{
			MatchNumber: 5,
			Serie:       1,
			Team1:       models.MatchTeam{Name: "Alpha", Stand: "A1", Score: 10},
			Team2:       models.MatchTeam{Name: "Beta", Stand: "B2", Score: 7},
			Winner:      models.MatchWinnerTeam1,
			Timecode:    &timecode,
		}, nil)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/matches/"+id.String(), nil)

		var body map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, float64(5), body["matchNumber"])
		assert.Equal(t, "team1", body["winner"])
		assert.Equal(t, float64(95), body["timecode"])
	})

	t.Run("Invalid ID", func(t *testing.T) {
		_, httpSuite := setupMatchHandler(t)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/matches/42", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid match ID")
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, httpSuite := setupMatchHandler(t)
		id := uuid.New()
		svc.EXPECT().GetByID(id).Return(nil, apperrors.ErrMatchNotFound)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/matches/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "match not found")
	})
}
