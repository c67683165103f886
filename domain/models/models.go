package models

import "math"

// WorthMissing is the marker the GamerPower API uses when a giveaway has no advertised value.
const WorthMissing = "N/A"

// Recognised giveaway types.
const (
	TypeFullGame    = "Full Game"
	TypeDLCAndLoot  = "DLC & Loot"
	TypeEarlyAccess = "Early Access"
)

// RecognisedTypes is the closed set of types accepted by per-type counting.
var RecognisedTypes = []string{TypeFullGame, TypeDLCAndLoot, TypeEarlyAccess}

// GiveawayRecord is one listing returned by the GamerPower giveaways endpoint.
type GiveawayRecord struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Worth           string  `json:"worth"`
	Thumbnail       *string `json:"thumbnail"`
	Image           string  `json:"image"`
	Description     string  `json:"description"`
	Instructions    string  `json:"instructions"`
	OpenGiveawayURL string  `json:"open_giveaway_url"`
	PublishedDate   string  `json:"published_date"`
	Type            string  `json:"type"`
	Platforms       string  `json:"platforms"`
	EndDate         string  `json:"end_date"`
	Users           int64   `json:"users"`
	Status          string  `json:"status"`
	GamerpowerURL   string  `json:"gamerpower_url"`
	OpenGiveaway    string  `json:"open_giveaway"`
}

// HasWorth reports whether the record carries a value other than the missing marker.
func (r GiveawayRecord) HasWorth() bool {
	return r.Worth != WorthMissing
}

// Summary is a describe()-style summary of a numeric column.
type Summary struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	P25   float64
	P50   float64
	P75   float64
	Max   float64
}

// GroupSummary holds the user-count statistics for one group.
// Games is the number of giveaways that fell into the group.
type GroupSummary struct {
	Key   string
	Games int
	Mean  float64
	Std   float64
	Min   float64
	P25   float64
	P50   float64
	P75   float64
	Max   float64
}

// GroupTable is a list of group summaries ordered by key.
type GroupTable struct {
	GroupedBy string
	Rows      []GroupSummary
}

// ByKey returns the summary for key.
func (t GroupTable) ByKey(key string) (GroupSummary, bool) {
	for _, row := range t.Rows {
		if row.Key == key {
			return row, true
		}
	}
	return GroupSummary{}, false
}

// TotalGames sums the per-group counts.
func (t GroupTable) TotalGames() int {
	total := 0
	for _, row := range t.Rows {
		total += row.Games
	}
	return total
}

type ZScoreRow struct {
	ID     int64
	Type   string
	Users  int64
	ZScore float64
}

type TitleLengthSummary struct {
	Type string  `json:"type"`
	Min  int     `json:"min"`
	Max  int     `json:"max"`
	Mean float64 `json:"mean"`
}

// WorthRow is a giveaway with its worth parsed into a number.
type WorthRow struct {
	GiveawayRecord
	WorthValue float64
}

// Bin is one histogram bucket; Start is inclusive, End is exclusive except for the last bin.
type Bin struct {
	Start float64
	End   float64
	Count int
}

type LinearFit struct {
	Slope     float64
	Intercept float64
}

// At evaluates the fitted line at x.
func (f LinearFit) At(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// Nullable converts NaN and infinities to nil so the value can be serialised as JSON null.
func Nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
