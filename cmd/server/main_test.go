package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"eurobot-backend/internal/ingest"
	"eurobot-backend/internal/logger"
	"eurobot-backend/internal/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type seedMocks struct {
	teams    *mocks.MockTeamRepositoryInterface
	matches  *mocks.MockMatchRepositoryInterface
	rankings *mocks.MockRankingRepositoryInterface
	series   *mocks.MockSerieRepositoryInterface
}

func newSeedIngester(t *testing.T, dataDir string) (*seedMocks, *ingest.Ingester) {
	ctrl := gomock.NewController(t)
	m := &seedMocks{
		teams:    mocks.NewMockTeamRepositoryInterface(ctrl),
		matches:  mocks.NewMockMatchRepositoryInterface(ctrl),
		rankings: mocks.NewMockRankingRepositoryInterface(ctrl),
		series:   mocks.NewMockSerieRepositoryInterface(ctrl),
	}
	ing := ingest.NewIngester(ingest.Stores{
		Teams:    m.teams,
		Matches:  m.matches,
		Rankings: m.rankings,
		Series:   m.series,
	}, ingest.Options{DataDir: dataDir})
	return m, ing
}

func TestSeedIfEmpty_SkipsSeededDatabase(t *testing.T) {
	m, ing := newSeedIngester(t, t.TempDir())
	m.teams.EXPECT().Count().Return(int64(3), nil)

	seedIfEmpty(m.teams, ing, logger.New())
}

func TestSeedIfEmpty_SkipsWhenCountFails(t *testing.T) {
	m, ing := newSeedIngester(t, t.TempDir())
	m.teams.EXPECT().Count().Return(int64(0), errors.New("connection refused"))

	seedIfEmpty(m.teams, ing, logger.New())
}

func TestSeedIfEmpty_IngestionFailureIsNotFatal(t *testing.T) {
	m, ing := newSeedIngester(t, filepath.Join(t.TempDir(), "missing"))
	m.teams.EXPECT().Count().Return(int64(0), nil)

	seedIfEmpty(m.teams, ing, logger.New())
}

func TestSeedIfEmpty_SeedsEmptyDatabase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "classement_serie_1.csv"),
		[]byte("\"1er;Alpha\",\"A1\",\"France\",10,2,1,0,1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "matchs_serie_1.csv"),
		[]byte("\"1\",\"A1\",\"Alpha\",\"10\",\"7\",\"Beta\",\"B2\"\n"), 0o644))

	m, ing := newSeedIngester(t, dir)
	m.teams.EXPECT().Count().Return(int64(0), nil)
	gomock.InOrder(
		m.teams.EXPECT().ReplaceAll(gomock.Len(1)).Return(nil),
		m.matches.EXPECT().ReplaceAll(gomock.Len(1)).Return(nil),
		m.rankings.EXPECT().ReplaceAll(gomock.Len(1)).Return(nil),
		m.series.EXPECT().ReplaceAll(gomock.Len(1)).Return(nil),
	)

	seedIfEmpty(m.teams, ing, logger.New())
}
