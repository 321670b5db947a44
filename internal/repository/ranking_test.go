package repository

import (
	"testing"

	"eurobot-backend/internal/database/models"
	"eurobot-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// RankingRepositoryTestSuite tests the RankingRepository
type RankingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RankingRepository
	factories     *testutils.FactorySet
}

func (suite *RankingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewRankingRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *RankingRepositoryTestSuite) TearDownSuite() {
	if suite.baseTestSuite != nil {
		suite.baseTestSuite.TeardownTestSuite()
	}
}

func (suite *RankingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *RankingRepositoryTestSuite) seedTwoSeries() {
	f := suite.factories.Ranking
	suite.Require().NoError(suite.repo.ReplaceAll([]models.Ranking{
		*f.At(3, 2, "Beta", 8),
		*f.At(1, 1, "Alpha", 12),
		*f.At(3, 1, "Alpha", 15),
		*f.At(3, 3, "Gamma", 2),
	}))
}

// TestLatestSerieEmpty tests the empty-table case
func (suite *RankingRepositoryTestSuite) TestLatestSerieEmpty() {
	serie, ok, err := suite.repo.LatestSerie()

	suite.NoError(err)
	suite.False(ok)
	suite.Zero(serie)
}

// TestLatestSerie tests that the highest serie number wins
func (suite *RankingRepositoryTestSuite) TestLatestSerie() {
	suite.seedTwoSeries()

	serie, ok, err := suite.repo.LatestSerie()

	suite.NoError(err)
	suite.True(ok)
	suite.Equal(3, serie)
}

// TestGetBySerie tests position ordering and the limit
func (suite *RankingRepositoryTestSuite) TestGetBySerie() {
	suite.seedTwoSeries()

	all, err := suite.repo.GetBySerie(3, 0)
	suite.NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal("Alpha", all[0].Team.Name)
	suite.Equal("Gamma", all[2].Team.Name)

	top, err := suite.repo.GetBySerie(3, 2)
	suite.NoError(err)
	suite.Len(top, 2)

	none, err := suite.repo.GetBySerie(7, 0)
	suite.NoError(err)
	suite.NotNil(none)
	suite.Empty(none)
}

// TestListFilter tests ordering by serie then position with an optional filter
func (suite *RankingRepositoryTestSuite) TestListFilter() {
	suite.seedTwoSeries()

	all, err := suite.repo.List(RankingFilter{})
	suite.NoError(err)
	suite.Require().Len(all, 4)
	suite.Equal(1, all[0].Serie)

	serie := 1
	one, err := suite.repo.List(RankingFilter{Serie: &serie})
	suite.NoError(err)
	suite.Len(one, 1)
}

// TestCounts tests global and per-serie counts
func (suite *RankingRepositoryTestSuite) TestCounts() {
	suite.seedTwoSeries()

	total, err := suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(4), total)

	inSerie, err := suite.repo.CountBySerie(3)
	suite.NoError(err)
	suite.Equal(int64(3), inSerie)
}

func TestRankingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RankingRepositoryTestSuite))
}
