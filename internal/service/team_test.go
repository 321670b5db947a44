package service_test

import (
	"errors"
	"testing"

	"eurobot-backend/internal/database/models"
	apperrors "eurobot-backend/internal/errors"
	"eurobot-backend/internal/mocks"
	"eurobot-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTeamRepo  *mocks.MockTeamRepositoryInterface
	mockMatchRepo *mocks.MockMatchRepositoryInterface
	teamService   *service.TeamService
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockMatchRepo = mocks.NewMockMatchRepositoryInterface(suite.ctrl)
	suite.teamService = service.NewTeamService(suite.mockTeamRepo, suite.mockMatchRepo)
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestGetAll() {
	teams := []models.Team{{Name: "Alpha"}, {Name: "Beta"}}
	suite.mockTeamRepo.EXPECT().GetAll().Return(teams, nil)

	got, err := suite.teamService.GetAll()

	suite.NoError(err)
	suite.Equal(teams, got)
}

func (suite *TeamServiceTestSuite) TestGetAllEmptyIsNotNil() {
	suite.mockTeamRepo.EXPECT().GetAll().Return(nil, nil)

	got, err := suite.teamService.GetAll()

	suite.NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *TeamServiceTestSuite) TestGetAllRepositoryError() {
	suite.mockTeamRepo.EXPECT().GetAll().Return(nil, errors.New("connection refused"))

	_, err := suite.teamService.GetAll()

	suite.ErrorContains(err, "failed to get teams")
}

func (suite *TeamServiceTestSuite) TestGetByID() {
	id := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(id).Return(&models.Team{Name: "Alpha"}, nil)

	team, err := suite.teamService.GetByID(id)

	suite.NoError(err)
	suite.Equal("Alpha", team.Name)
}

func (suite *TeamServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	team, err := suite.teamService.GetByID(id)

	suite.Nil(team)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (suite *TeamServiceTestSuite) TestGetMatches() {
	matches := []models.Match{{MatchNumber: 1, Team1: models.MatchTeam{Name: "Les Castors"}}}
	suite.mockMatchRepo.EXPECT().GetByTeamName("Les Castors").Return(matches, nil)

	got, err := suite.teamService.GetMatches("Les Castors")

	suite.NoError(err)
	suite.Equal(matches, got)
}

func (suite *TeamServiceTestSuite) TestGetMatchesUnknownTeam() {
	suite.mockMatchRepo.EXPECT().GetByTeamName("Nobody").Return(nil, nil)

	got, err := suite.teamService.GetMatches("Nobody")

	suite.NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
