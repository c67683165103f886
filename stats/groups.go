package stats

import (
	"fmt"
	"sort"

	"github.com/pivolan/giveaway_stats/domain/models"
)

// GroupKey names the column records are partitioned by.
type GroupKey string

const (
	GroupByType     GroupKey = "type"
	GroupByPlatform GroupKey = "platform"
)

// ParseGroupKey validates a user-supplied grouping column.
func ParseGroupKey(s string) (GroupKey, error) {
	switch GroupKey(s) {
	case GroupByType, GroupByPlatform:
		return GroupKey(s), nil
	}
	return "", fmt.Errorf("%w: group key %q, want %q or %q", ErrInvalidArgument, s, GroupByType, GroupByPlatform)
}

func (k GroupKey) value(r models.GiveawayRecord) string {
	if k == GroupByPlatform {
		return r.Platforms
	}
	return r.Type
}

// groupedUsers is the two-column frame (key, users) the summaries are computed from.
type groupedUsers struct {
	keys  []string
	users map[string][]float64
}

func partitionUsers(records []models.GiveawayRecord, key GroupKey) groupedUsers {
	g := groupedUsers{users: make(map[string][]float64)}
	for _, r := range records {
		k := key.value(r)
		if _, ok := g.users[k]; !ok {
			g.keys = append(g.keys, k)
		}
		g.users[k] = append(g.users[k], float64(r.Users))
	}
	sort.Strings(g.keys)
	return g
}

// GroupSummary partitions records by key and describes the user counts of every group.
// Keys are compared as exact strings, so "PC, Steam" and "Steam, PC" are distinct platforms.
func GroupSummary(records []models.GiveawayRecord, key GroupKey) (models.GroupTable, error) {
	if _, err := ParseGroupKey(string(key)); err != nil {
		return models.GroupTable{}, err
	}

	g := partitionUsers(records, key)
	table := models.GroupTable{GroupedBy: string(key), Rows: make([]models.GroupSummary, 0, len(g.keys))}
	for _, k := range g.keys {
		s := Describe(g.users[k])
		table.Rows = append(table.Rows, models.GroupSummary{
			Key:   k,
			Games: s.Count,
			Mean:  s.Mean,
			Std:   s.Std,
			Min:   s.Min,
			P25:   s.P25,
			P50:   s.P50,
			P75:   s.P75,
			Max:   s.Max,
		})
	}
	return table, nil
}
