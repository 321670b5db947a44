package ingest

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "eurobot-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "classement_serie_2.csv", "")
	writeFile(t, dir, "matchs_serie_2.csv", "")
	writeFile(t, dir, "Classement_Serie_10.CSV", "")
	writeFile(t, dir, "matchs_serie_1.csv", "")
	writeFile(t, dir, "notes.txt", "")
	writeFile(t, dir, "classement_serie_0.csv", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "classement_serie_5.csv"), 0o755))

	cat, err := Discover(dir)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 10}, cat.Series)
	assert.Equal(t, filepath.Join(dir, "classement_serie_2.csv"), cat.RankingFiles[2])
	assert.Equal(t, filepath.Join(dir, "Classement_Serie_10.CSV"), cat.RankingFiles[10])
	assert.Equal(t, filepath.Join(dir, "matchs_serie_1.csv"), cat.MatchFiles[1])
	_, hasRanking := cat.RankingFiles[1]
	assert.False(t, hasRanking)
}

func TestDiscoverMissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))

	assert.ErrorIs(t, err, apperrors.ErrDataDirMissing)
}

func TestDiscoverNoSeries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "readme.md", "")

	cat, err := Discover(dir)

	assert.ErrorIs(t, err, apperrors.ErrNoSeriesFound)
	require.NotNil(t, cat)
	assert.Empty(t, cat.Series)
}
