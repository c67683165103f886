// Package report runs every statistic over one giveaway snapshot and renders the result
// as text tables, a spreadsheet and charts.
package report

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/mozillazg/go-unidecode"
	uuid "github.com/satori/go.uuid"

	"github.com/pivolan/giveaway_stats/domain/models"
	"github.com/pivolan/giveaway_stats/stats"
)

type TypeCount struct {
	Type  string
	Count int
}

// Report holds every derived table for one run.
type Report struct {
	RunID       uuid.UUID
	GeneratedAt time.Time
	Records     int

	ByType     models.GroupTable
	ByPlatform models.GroupTable
	ZScores    []models.ZScoreRow
	ZScoreBins []models.Bin
	TypeCounts []TypeCount

	// LongestTitle and ShortestTitle are empty when there are no records.
	LongestTitle  string
	ShortestTitle string
	TitleLengths  []models.TitleLengthSummary

	Worth       []models.WorthRow
	Fit         *models.LinearFit
	Correlation float64
}

var now = time.Now

// Build derives every statistic from records. A worth value that cannot be parsed fails the build.
func Build(records []models.GiveawayRecord) (*Report, error) {
	r := &Report{
		RunID:       uuid.NewV4(),
		GeneratedAt: now().UTC(),
		Records:     len(records),
		Correlation: math.NaN(),
	}

	var err error
	if r.ByType, err = stats.GroupSummary(records, stats.GroupByType); err != nil {
		return nil, err
	}
	if r.ByPlatform, err = stats.GroupSummary(records, stats.GroupByPlatform); err != nil {
		return nil, err
	}

	r.ZScores = stats.ZScores(records)
	if r.ZScoreBins, err = stats.Histogram(stats.ZScoreValues(r.ZScores), stats.DefaultBins); err != nil {
		return nil, err
	}

	for _, t := range models.RecognisedTypes {
		n, err := stats.CountByType(records, t)
		if err != nil {
			return nil, err
		}
		r.TypeCounts = append(r.TypeCounts, TypeCount{Type: t, Count: n})
	}

	if len(records) > 0 {
		if r.LongestTitle, err = stats.TitleExtreme(records, stats.ExtremeMax); err != nil {
			return nil, err
		}
		if r.ShortestTitle, err = stats.TitleExtreme(records, stats.ExtremeMin); err != nil {
			return nil, err
		}
	}
	r.TitleLengths = stats.TitleLengthByType(records)

	if r.Worth, err = stats.WorthRanked(records, true); err != nil {
		return nil, fmt.Errorf("rank worth: %w", err)
	}
	x, y := stats.WorthUsersSeries(r.Worth)
	fit, err := stats.LinearFit(x, y)
	switch {
	case err == nil:
		r.Fit = &fit
		r.Correlation = stats.Correlation(x, y)
	case !errors.Is(err, stats.ErrInvalidArgument):
		return nil, err
	}
	return r, nil
}

// TypeChartData returns the per-type counts as chart labels and values.
func (r *Report) TypeChartData() ([]string, []float64) {
	labels := make([]string, len(r.TypeCounts))
	values := make([]float64, len(r.TypeCounts))
	for i, c := range r.TypeCounts {
		labels[i] = c.Type
		values[i] = float64(c.Count)
	}
	return labels, values
}

var nonFileChars = regexp.MustCompile(`[^a-z0-9]+`)

// FileName builds an ASCII file name such as "users_by_type_6ba7b810.xlsx" for an artefact of a run.
func FileName(runID uuid.UUID, name, ext string) string {
	slug := strings.ToLower(unidecode.Unidecode(name))
	slug = strings.Trim(nonFileChars.ReplaceAllString(slug, "_"), "_")
	if slug == "" {
		slug = "report"
	}
	return fmt.Sprintf("%s_%s.%s", slug, runID.String()[:8], strings.TrimPrefix(ext, "."))
}
