package gamerpower

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivolan/giveaway_stats/domain/fixture"
	"github.com/pivolan/giveaway_stats/domain/models"
)

func TestSnapshotRoundTrip(t *testing.T) {
	records := fixture.Giveaways()
	for _, name := range []string{"giveaways.json", "giveaways.json.gz", "giveaways.json.lz4"} {
		path := filepath.Join(t.TempDir(), "snapshots", name)
		require.NoError(t, SaveSnapshot(path, records), name)

		got, err := NewFileSource(path).Fetch(context.Background(), Filter{})
		require.NoError(t, err, name)
		assert.Equal(t, records, got, name)
	}
}

func TestFileSourceZipPicksLargestEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "giveaways.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)

	small, err := zw.Create("readme.txt")
	require.NoError(t, err)
	_, err = small.Write([]byte("snapshot"))
	require.NoError(t, err)

	big, err := zw.Create("data/giveaways.json")
	require.NoError(t, err)
	_, err = big.Write([]byte(samplePayload))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	records, err := NewFileSource(path).Fetch(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFileSourceFiltersLocally(t *testing.T) {
	path := filepath.Join(t.TempDir(), "giveaways.json")
	require.NoError(t, SaveSnapshot(path, fixture.Giveaways()))

	records, err := NewFileSource(path).Fetch(context.Background(), Filter{Type: "game"})
	require.NoError(t, err)
	assert.Len(t, records, fixture.FullGames)
	for _, r := range records {
		assert.Equal(t, models.TypeFullGame, r.Type)
	}

	records, err = NewFileSource(path).Fetch(context.Background(), Filter{Platform: "itchio"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, fixture.SingletonPlatform, records[0].Platforms)
}

func TestFileSourceErrors(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing.json")).Fetch(context.Background(), Filter{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.json.gz")
	require.NoError(t, os.WriteFile(bad, []byte("not gzip"), 0644))
	_, err = NewFileSource(bad).Fetch(context.Background(), Filter{})
	assert.ErrorIs(t, err, ErrDecode)
}
