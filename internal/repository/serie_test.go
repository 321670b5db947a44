package repository

import (
	"testing"

	"eurobot-backend/internal/database/models"
	"eurobot-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SerieRepositoryTestSuite tests the SerieRepository
type SerieRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SerieRepository
	factories     *testutils.FactorySet
}

func (suite *SerieRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSerieRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *SerieRepositoryTestSuite) TearDownSuite() {
	if suite.baseTestSuite != nil {
		suite.baseTestSuite.TeardownTestSuite()
	}
}

func (suite *SerieRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TestCreateAndGet tests creating a serie and reading it back by ID and number
func (suite *SerieRepositoryTestSuite) TestCreateAndGet() {
	serie := suite.factories.Serie.WithNumber(4)
	serie.LiveStreamURL = "https://youtu.be/abc"

	suite.Require().NoError(suite.repo.Create(serie))
	suite.NotEqual(uuid.Nil, serie.ID)

	byID, err := suite.repo.GetByID(serie.ID)
	suite.NoError(err)
	suite.Equal("Série 4", byID.Name)
	suite.Equal("https://youtu.be/abc", byID.LiveStreamURL)

	byNumber, err := suite.repo.GetByNumber(4)
	suite.NoError(err)
	suite.Equal(serie.ID, byNumber.ID)
}

// TestCreateDuplicateNumber tests the unique serie number index
func (suite *SerieRepositoryTestSuite) TestCreateDuplicateNumber() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Serie.WithNumber(1)))

	err := suite.repo.Create(suite.factories.Serie.WithNumber(1))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestUpdateToTakenNumber tests that a save colliding on serie number is a duplicated key
func (suite *SerieRepositoryTestSuite) TestUpdateToTakenNumber() {
	f := suite.factories.Serie
	suite.Require().NoError(suite.repo.Create(f.WithNumber(1)))
	second := f.WithNumber(2)
	suite.Require().NoError(suite.repo.Create(second))

	second.SerieNumber = 1
	err := suite.repo.Update(second)

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetAllOrderedByNumber tests ordering by serie number
func (suite *SerieRepositoryTestSuite) TestGetAllOrderedByNumber() {
	f := suite.factories.Serie
	suite.Require().NoError(suite.repo.ReplaceAll([]models.Serie{*f.WithNumber(3), *f.WithNumber(1), *f.WithNumber(2)}))

	series, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Require().Len(series, 3)
	for i, s := range series {
		suite.Equal(i+1, s.SerieNumber)
	}
}

// TestUpdate tests saving changed fields
func (suite *SerieRepositoryTestSuite) TestUpdate() {
	serie := suite.factories.Serie.Create()
	suite.Require().NoError(suite.repo.Create(serie))

	serie.Status = models.SerieStatusOngoing
	serie.Location = "La Ferté-Bernard"
	suite.NoError(suite.repo.Update(serie))

	got, err := suite.repo.GetByID(serie.ID)
	suite.NoError(err)
	suite.Equal(models.SerieStatusOngoing, got.Status)
	suite.Equal("La Ferté-Bernard", got.Location)
}

// TestDelete tests deleting a serie and deleting an unknown one
func (suite *SerieRepositoryTestSuite) TestDelete() {
	serie := suite.factories.Serie.Create()
	suite.Require().NoError(suite.repo.Create(serie))

	suite.NoError(suite.repo.Delete(serie.ID))

	_, err := suite.repo.GetByID(serie.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.repo.Delete(serie.ID), gorm.ErrRecordNotFound)
}

// TestCount tests the count after a replace
func (suite *SerieRepositoryTestSuite) TestCount() {
	f := suite.factories.Serie
	suite.Require().NoError(suite.repo.ReplaceAll([]models.Serie{*f.WithNumber(1), *f.WithNumber(2)}))

	count, err := suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

func TestSerieRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SerieRepositoryTestSuite))
}
