package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivolan/giveaway_stats/domain/fixture"
	"github.com/pivolan/giveaway_stats/domain/models"
)

func TestCountByType(t *testing.T) {
	records := fixture.Giveaways()
	tests := []struct {
		typ  string
		want int
	}{
		{models.TypeFullGame, fixture.FullGames},
		{models.TypeDLCAndLoot, fixture.DLCAndLoot},
		{models.TypeEarlyAccess, fixture.EarlyAccess},
	}
	for _, tt := range tests {
		got, err := CountByType(records, tt.typ)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.typ)
	}
}

func TestCountByTypeRejectsUnknownType(t *testing.T) {
	for _, typ := range []string{"not-a-type", "full game", "", "Game"} {
		_, err := CountByType(fixture.Giveaways(), typ)
		assert.ErrorIs(t, err, ErrInvalidArgument, "%q", typ)
	}
}

func TestCountByTypeEmpty(t *testing.T) {
	n, err := CountByType(nil, models.TypeFullGame)
	require.NoError(t, err)
	assert.Zero(t, n)
}
