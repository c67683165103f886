package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivolan/giveaway_stats/domain/fixture"
	"github.com/pivolan/giveaway_stats/domain/models"
)

func TestTitleExtremeMin(t *testing.T) {
	title, err := TitleExtreme(fixture.Giveaways(), ExtremeMin)
	require.NoError(t, err)
	assert.Equal(t, fixture.ShortestTitle, title)
}

func TestTitleExtremeMaxFirstOccurrenceWins(t *testing.T) {
	title, err := TitleExtreme(fixture.Giveaways(), ExtremeMax)
	require.NoError(t, err)
	assert.Equal(t, fixture.LongestTitle, title)
}

func TestTitleExtremeTieBreak(t *testing.T) {
	records := []models.GiveawayRecord{
		{Title: "bbb"}, {Title: "aaa"}, {Title: "cc"}, {Title: "dd"}, {Title: "eee"},
	}
	longest, err := TitleExtreme(records, ExtremeMax)
	require.NoError(t, err)
	assert.Equal(t, "bbb", longest)

	shortest, err := TitleExtreme(records, ExtremeMin)
	require.NoError(t, err)
	assert.Equal(t, "cc", shortest)
}

func TestTitleExtremeCountsCharactersNotBytes(t *testing.T) {
	records := []models.GiveawayRecord{{Title: "Pokémon Café"}, {Title: "Pokemon Cafe!"}}
	longest, err := TitleExtreme(records, ExtremeMax)
	require.NoError(t, err)
	assert.Equal(t, "Pokemon Cafe!", longest)
}

func TestTitleExtremeErrors(t *testing.T) {
	_, err := TitleExtreme(nil, ExtremeMax)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = TitleExtreme(fixture.Giveaways(), ExtremeMode("median"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTitleLengthByType(t *testing.T) {
	records := []models.GiveawayRecord{
		{Type: models.TypeFullGame, Title: "abcd"},
		{Type: models.TypeFullGame, Title: "ab"},
		{Type: models.TypeEarlyAccess, Title: "abcdef"},
	}
	got := TitleLengthByType(records)
	assert.Equal(t, []models.TitleLengthSummary{
		{Type: models.TypeEarlyAccess, Min: 6, Max: 6, Mean: 6},
		{Type: models.TypeFullGame, Min: 2, Max: 4, Mean: 3},
	}, got)
}

func TestTitleLengthByTypeFixture(t *testing.T) {
	got := TitleLengthByType(fixture.Giveaways())
	require.Len(t, got, 3)
	for _, s := range got {
		assert.LessOrEqual(t, float64(s.Min), s.Mean)
		assert.LessOrEqual(t, s.Mean, float64(s.Max))
	}
}
