package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"eurobot-backend/internal/api/handlers"
	"eurobot-backend/internal/database/models"
	apperrors "eurobot-backend/internal/errors"
	"eurobot-backend/internal/mocks"
	"eurobot-backend/internal/service"
	"eurobot-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SerieHandlerTestSuite defines the test suite for SerieHandler
type SerieHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSerieServiceInterface
	handler     *handlers.SerieHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *SerieHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSerieServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSerieHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	series := suite.httpSuite.Router.Group("/api/series")
	{
		series.GET("", suite.handler.ListSeries)
		series.GET("/number/:number", suite.handler.GetSerieByNumber)
		series.GET("/:id", suite.handler.GetSerie)
		series.GET("/:id/stats", suite.handler.GetSerieStats)
		series.POST("", suite.handler.CreateSerie)
		series.PUT("/:id", suite.handler.UpdateSerie)
		series.DELETE("/:id", suite.handler.DeleteSerie)
	}
}

func (suite *SerieHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func sampleSerie(number int) *models.Serie {
	start := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	return &models.Serie{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		SerieNumber: number,
		Name:        fmt.Sprintf("Série %d", number),
		StartDate:   start,
		EndDate:     start.Add(24 * time.Hour),
		Status:      models.SerieStatusCompleted,
	}
}

func (suite *SerieHandlerTestSuite) TestListSeries() {
	suite.mockService.EXPECT().GetAll().Return([]models.Serie{*sampleSerie(1), *sampleSerie(2)}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/series", nil)

	var series []map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &series)
	suite.Require().Len(series, 2)
	suite.Equal(float64(1), series[0]["serieNumber"])
	suite.Equal("completed", series[0]["status"])
}

func (suite *SerieHandlerTestSuite) TestGetSerieByNumber() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().GetByNumber(2).Return(sampleSerie(2), nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/series/number/2", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().GetByNumber(9).Return(nil, apperrors.ErrSerieNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/series/number/9", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "serie not found")
	})

	suite.T().Run("Invalid number", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/series/number/zero", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid number")
	})
}

func (suite *SerieHandlerTestSuite) TestGetSerie() {
	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/series/1", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid serie ID")
	})

	suite.T().Run("Internal error", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetByID(id).Return(nil, errors.New("failed to get serie: down"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/series/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "failed to get serie")
	})
}

func (suite *SerieHandlerTestSuite) TestCreateSerie() {
	body := map[string]interface{}{
		"serieNumber": 3,
		"name":        "Série 3",
		"startDate":   "2025-05-21T00:00:00Z",
		"endDate":     "2025-05-22T00:00:00Z",
	}

	suite.T().Run("Success", func(t *testing.T) {
		created := sampleSerie(3)
		created.Status = models.SerieStatusUpcoming
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(req *service.CreateSerieRequest) (*models.Serie, error) {
				assert.Equal(t, 3, req.SerieNumber)
				assert.Equal(t, "Série 3", req.Name)
				assert.True(t, req.EndDate.After(req.StartDate))
				return created, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/series", body)

		var got map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &got)
		assert.Equal(t, "upcoming", got["status"])
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/series", "invalid json")

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid request body")
	})

	suite.T().Run("Validation error", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, fmt.Errorf("validation failed: %w", apperrors.NewValidationError("name", "failed on 'required'")))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/series", map[string]interface{}{"serieNumber": 3})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "name")
	})

	suite.T().Run("Duplicate number", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrSerieExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/series", body)

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already exists")
	})
}

func (suite *SerieHandlerTestSuite) TestUpdateSerie() {
	suite.T().Run("Partial update", func(t *testing.T) {
		updated := sampleSerie(2)
		updated.Location = "Paris"
		suite.mockService.EXPECT().
			Update(updated.ID, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, req *service.UpdateSerieRequest) (*models.Serie, error) {
				require.NotNil(t, req.Location)
				assert.Equal(t, "Paris", *req.Location)
				assert.Nil(t, req.Name)
				return updated, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/series/"+updated.ID.String(), map[string]interface{}{"location": "Paris"})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Update(id, gomock.Any()).Return(nil, apperrors.ErrSerieNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/series/"+id.String(), map[string]interface{}{"name": "x"})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "serie not found")
	})
}

func (suite *SerieHandlerTestSuite) TestDeleteSerie() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(id).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/series/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"message":"Serie deleted successfully"}`, recorder.Body.String())
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(id).Return(apperrors.ErrSerieNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/series/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "serie not found")
	})
}

func (suite *SerieHandlerTestSuite) TestGetSerieStats() {
	serie := sampleSerie(1)
	suite.mockService.EXPECT().GetStats(serie.ID).Return(&service.SerieStatsResponse{
		Serie:        serie,
		TotalMatches: 4,
		TotalTeams:   3,
		TotalScore:   60,
		AverageScore: 15,
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/series/"+serie.ID.String()+"/stats", nil)

	var got map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Equal(float64(4), got["totalMatches"])
	suite.Equal(float64(15), got["averageScore"])
}

func TestSerieHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SerieHandlerTestSuite))
}
