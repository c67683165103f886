package stats

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/pivolan/giveaway_stats/domain/models"
)

// decimalAmount excludes the hex, underscore and NaN/Inf forms strconv.ParseFloat also accepts.
var decimalAmount = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseWorth converts a value such as "$19.99" into 19.99. A single leading currency symbol is
// stripped; the remainder must be a finite decimal number.
func ParseWorth(raw string) (float64, error) {
	s := raw
	if r, size := utf8.DecodeRuneInString(s); size > 0 && unicode.Is(unicode.Sc, r) {
		s = s[size:]
	}
	if !decimalAmount.MatchString(s) {
		return 0, fmt.Errorf("%w: worth %q is not a currency amount", ErrParse, raw)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: worth %q is not a currency amount", ErrParse, raw)
	}
	return v, nil
}

// WorthRanked drops giveaways without a worth, parses the rest and sorts them by value.
// The sort is stable so equal values keep their input order in both directions.
func WorthRanked(records []models.GiveawayRecord, ascending bool) ([]models.WorthRow, error) {
	rows := make([]models.WorthRow, 0, len(records))
	for _, r := range records {
		if !r.HasWorth() {
			continue
		}
		v, err := ParseWorth(r.Worth)
		if err != nil {
			return nil, fmt.Errorf("giveaway %d: %w", r.ID, err)
		}
		rows = append(rows, models.WorthRow{GiveawayRecord: r, WorthValue: v})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if ascending {
			return rows[i].WorthValue < rows[j].WorthValue
		}
		return rows[i].WorthValue > rows[j].WorthValue
	})
	return rows, nil
}

// WorthUsersSeries returns the (worth, users) pairs for scatter plotting.
func WorthUsersSeries(rows []models.WorthRow) (x, y []float64) {
	x = make([]float64, len(rows))
	y = make([]float64, len(rows))
	for i, row := range rows {
		x[i] = row.WorthValue
		y[i] = float64(row.Users)
	}
	return x, y
}
