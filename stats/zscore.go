package stats

import (
	"math"

	"github.com/pivolan/giveaway_stats/domain/models"
)

// ZScores normalises every record's user count against the mean and sample standard deviation
// of its type. Rows come back in input order. Groups with an undefined or zero deviation yield NaN.
func ZScores(records []models.GiveawayRecord) []models.ZScoreRow {
	g := partitionUsers(records, GroupByType)

	type moments struct{ mean, std float64 }
	byType := make(map[string]moments, len(g.keys))
	for _, k := range g.keys {
		avg := mean(g.users[k])
		byType[k] = moments{mean: avg, std: sampleStd(g.users[k], avg)}
	}

	rows := make([]models.ZScoreRow, 0, len(records))
	for _, r := range records {
		m := byType[r.Type]
		z := math.NaN()
		if !math.IsNaN(m.std) && m.std != 0 {
			z = (float64(r.Users) - m.mean) / m.std
		}
		rows = append(rows, models.ZScoreRow{ID: r.ID, Type: r.Type, Users: r.Users, ZScore: z})
	}
	return rows
}

// ZScoreValues extracts the z-score column for histogram rendering.
func ZScoreValues(rows []models.ZScoreRow) []float64 {
	values := make([]float64, len(rows))
	for i, row := range rows {
		values[i] = row.ZScore
	}
	return values
}
