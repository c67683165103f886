package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivolan/giveaway_stats/domain/fixture"
	"github.com/pivolan/giveaway_stats/domain/models"
)

func TestZScoresGroupMomentsAreStandard(t *testing.T) {
	records := fixture.Giveaways()
	rows := ZScores(records)
	require.Len(t, rows, len(records))

	byType := map[string][]float64{}
	for i, row := range rows {
		assert.Equal(t, records[i].ID, row.ID, "rows must keep input order")
		byType[row.Type] = append(byType[row.Type], row.ZScore)
	}

	for typ, zs := range byType {
		require.GreaterOrEqual(t, len(zs), 2, typ)
		s := Describe(zs)
		assert.InDelta(t, 0, s.Mean, 1e-9, "mean of %s z-scores", typ)
		assert.InDelta(t, 1, s.Std*s.Std, 1e-9, "variance of %s z-scores", typ)
	}
}

func TestZScoresSingletonGroupIsNaN(t *testing.T) {
	records := []models.GiveawayRecord{
		{ID: 1, Type: models.TypeFullGame, Users: 10},
		{ID: 2, Type: models.TypeFullGame, Users: 30},
		{ID: 3, Type: models.TypeEarlyAccess, Users: 99},
	}
	rows := ZScores(records)

	assert.InDelta(t, -1/math.Sqrt2, rows[0].ZScore, 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, rows[1].ZScore, 1e-9)
	assert.True(t, math.IsNaN(rows[2].ZScore))
}

func TestZScoresConstantGroupIsNaN(t *testing.T) {
	rows := ZScores([]models.GiveawayRecord{
		{ID: 1, Type: models.TypeDLCAndLoot, Users: 5},
		{ID: 2, Type: models.TypeDLCAndLoot, Users: 5},
	})
	for _, row := range rows {
		assert.True(t, math.IsNaN(row.ZScore))
	}
}

func TestZScoreValues(t *testing.T) {
	rows := []models.ZScoreRow{{ZScore: 1}, {ZScore: -2}}
	assert.Equal(t, []float64{1, -2}, ZScoreValues(rows))
}
