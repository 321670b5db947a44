package service_test

import (
	"errors"
	"testing"

	"eurobot-backend/internal/database/models"
	apperrors "eurobot-backend/internal/errors"
	"eurobot-backend/internal/mocks"
	"eurobot-backend/internal/repository"
	"eurobot-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestMatchService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMatchRepositoryInterface(ctrl)
	svc := service.NewMatchService(repo)

	serie := 2
	repo.EXPECT().
		List(repository.MatchFilter{Serie: &serie, Limit: 10}).
		Return([]models.Match{{Serie: 2, MatchNumber: 1}}, nil)

	matches, err := svc.List(&serie, 10)

	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestMatchService_ListEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMatchRepositoryInterface(ctrl)
	svc := service.NewMatchService(repo)

	repo.EXPECT().List(repository.MatchFilter{}).Return(nil, nil)

	matches, err := svc.List(nil, 0)

	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestMatchService_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMatchRepositoryInterface(ctrl)
	svc := service.NewMatchService(repo)

	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := svc.List(nil, 0)

	assert.ErrorContains(t, err, "failed to get matches")
}

func TestMatchService_GetByID(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "found"},
		{name: "not found", repoErr: gorm.ErrRecordNotFound, wantErr: apperrors.ErrMatchNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockMatchRepositoryInterface(ctrl)
			svc := service.NewMatchService(repo)

			id := uuid.New()
			if tt.repoErr != nil {
				repo.EXPECT().GetByID(id).Return(nil, tt.repoErr)
			} else {
				repo.EXPECT().GetByID(id).Return(&models.Match{MatchNumber: 5}, nil)
			}

			match, err := svc.GetByID(id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, match)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5, match.MatchNumber)
		})
	}
}
