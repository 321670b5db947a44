package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"eurobot-backend/internal/api/handlers"
	"eurobot-backend/internal/ingest"
	"eurobot-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

type fakeReseeder struct {
	report *ingest.Report
	err    error
	calls  int
}

func (f *fakeReseeder) Run(ctx context.Context) (*ingest.Report, error) {
	f.calls++
	return f.report, f.err
}

func TestReseed(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		reseeder := &fakeReseeder{report: &ingest.Report{Series: []int{1, 2}, Teams: 12, Matches: 40, Rankings: 24}}
		httpSuite := testutils.SetupHTTPTest()
		httpSuite.Router.POST("/api/reseed", handlers.NewAdminHandler(reseeder).Reseed)

		recorder := httpSuite.MakeRequest(http.MethodPost, "/api/reseed", nil)

		var body map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, "Database reseeded successfully", body["message"])
		report := body["report"].(map[string]interface{})
		assert.Equal(t, float64(12), report["teams"])
		assert.Equal(t, 1, reseeder.calls)
	})

	t.Run("Failure keeps the partial report", func(t *testing.T) {
		reseeder := &fakeReseeder{
			report: &ingest.Report{Series: []int{1}, Errors: []string{"write matches: boom"}},
			err:    errors.New("write matches: boom"),
		}
		httpSuite := testutils.SetupHTTPTest()
		httpSuite.Router.POST("/api/reseed", handlers.NewAdminHandler(reseeder).Reseed)

		recorder := httpSuite.MakeRequest(http.MethodPost, "/api/reseed", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "write matches")
		assert.Contains(t, recorder.Body.String(), `"report"`)
	})
}
