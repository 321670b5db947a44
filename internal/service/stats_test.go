package service_test

import (
	"errors"
	"testing"

	"eurobot-backend/internal/database/models"
	"eurobot-backend/internal/mocks"
	"eurobot-backend/internal/repository"
	"eurobot-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatsServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	teams    *mocks.MockTeamRepositoryInterface
	matches  *mocks.MockMatchRepositoryInterface
	rankings *mocks.MockRankingRepositoryInterface
	series   *mocks.MockSerieRepositoryInterface
	svc      *service.StatsService
}

func (suite *StatsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.teams = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.matches = mocks.NewMockMatchRepositoryInterface(suite.ctrl)
	suite.rankings = mocks.NewMockRankingRepositoryInterface(suite.ctrl)
	suite.series = mocks.NewMockSerieRepositoryInterface(suite.ctrl)
	suite.svc = service.NewStatsService(suite.teams, suite.matches, suite.rankings, suite.series)
}

func (suite *StatsServiceTestSuite) expectCounts() {
	suite.teams.EXPECT().Count().Return(int64(12), nil)
	suite.matches.EXPECT().Count().Return(int64(40), nil)
	suite.rankings.EXPECT().Count().Return(int64(24), nil)
	suite.series.EXPECT().Count().Return(int64(2), nil)
}

func (suite *StatsServiceTestSuite) TestGetStatsUsesLatestSerie() {
	suite.expectCounts()
	buckets := []repository.SerieCount{{Serie: 1, Count: 20}, {Serie: 2, Count: 20}}
	suite.matches.EXPECT().CountsPerSerie().Return(buckets, nil)
	suite.rankings.EXPECT().LatestSerie().Return(2, true, nil)
	top := []models.Ranking{{Serie: 2, Position: 1}, {Serie: 2, Position: 2}}
	suite.rankings.EXPECT().GetBySerie(2, 5).Return(top, nil)

	stats, err := suite.svc.GetStats()

	suite.Require().NoError(err)
	suite.Equal(int64(12), stats.TotalTeams)
	suite.Equal(int64(40), stats.TotalMatches)
	suite.Equal(int64(24), stats.TotalRankings)
	suite.Equal(int64(2), stats.TotalSeries)
	suite.Equal(buckets, stats.MatchesBySerie)
	suite.Equal(top, stats.TopTeams)
	suite.Equal(2, stats.LastKnownSerie)
}

func (suite *StatsServiceTestSuite) TestGetStatsDefaultsToSerieOne() {
	suite.expectCounts()
	suite.matches.EXPECT().CountsPerSerie().Return(nil, nil)
	suite.rankings.EXPECT().LatestSerie().Return(0, false, nil)
	suite.rankings.EXPECT().GetBySerie(1, 5).Return(nil, nil)

	stats, err := suite.svc.GetStats()

	suite.Require().NoError(err)
	suite.Equal(1, stats.LastKnownSerie)
	suite.NotNil(stats.MatchesBySerie)
	suite.NotNil(stats.TopTeams)
	suite.Empty(stats.TopTeams)
}

func (suite *StatsServiceTestSuite) TestGetStatsCountError() {
	suite.teams.EXPECT().Count().Return(int64(0), errors.New("down"))

	_, err := suite.svc.GetStats()

	suite.ErrorContains(err, "failed to count teams")
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}
