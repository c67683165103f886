package stats

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/pivolan/giveaway_stats/domain/models"
)

// ExtremeMode selects the longest or the shortest title.
type ExtremeMode string

const (
	ExtremeMax ExtremeMode = "max"
	ExtremeMin ExtremeMode = "min"
)

func ParseExtremeMode(s string) (ExtremeMode, error) {
	switch ExtremeMode(s) {
	case ExtremeMax, ExtremeMin:
		return ExtremeMode(s), nil
	}
	return "", fmt.Errorf("%w: extreme mode %q, want %q or %q", ErrInvalidArgument, s, ExtremeMax, ExtremeMin)
}

func titleLength(title string) int {
	return utf8.RuneCountInString(title)
}

// TitleExtreme returns the longest or shortest title. On equal lengths the title seen first wins.
func TitleExtreme(records []models.GiveawayRecord, mode ExtremeMode) (string, error) {
	if _, err := ParseExtremeMode(string(mode)); err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", fmt.Errorf("%w: no records to pick a %s title from", ErrInvalidArgument, mode)
	}

	best := records[0].Title
	bestLen := titleLength(best)
	for _, r := range records[1:] {
		l := titleLength(r.Title)
		if (mode == ExtremeMax && l > bestLen) || (mode == ExtremeMin && l < bestLen) {
			best, bestLen = r.Title, l
		}
	}
	return best, nil
}

// TitleLengthByType reports min, max and mean title length per type, ordered by type.
func TitleLengthByType(records []models.GiveawayRecord) []models.TitleLengthSummary {
	lengths := make(map[string][]int)
	var types []string
	for _, r := range records {
		if _, ok := lengths[r.Type]; !ok {
			types = append(types, r.Type)
		}
		lengths[r.Type] = append(lengths[r.Type], titleLength(r.Title))
	}
	sort.Strings(types)

	result := make([]models.TitleLengthSummary, 0, len(types))
	for _, t := range types {
		ls := lengths[t]
		s := models.TitleLengthSummary{Type: t, Min: ls[0], Max: ls[0]}
		sum := 0
		for _, l := range ls {
			sum += l
			if l < s.Min {
				s.Min = l
			}
			if l > s.Max {
				s.Max = l
			}
		}
		s.Mean = float64(sum) / float64(len(ls))
		result = append(result, s)
	}
	return result
}
