// Package fixture builds a deterministic giveaway snapshot for tests.
package fixture

import (
	"fmt"

	"github.com/pivolan/giveaway_stats/domain/models"
)

const (
	Size          = 84
	FullGames     = 21
	EarlyAccess   = 7
	DLCAndLoot    = Size - FullGames - EarlyAccess
	ShortestTitle = "Free Kalaban (PC)"
	LongestTitle  = "Ultimate Collector Bundle with Soundtrack and Artbook (Steam)"
	// SingletonPlatform is carried by exactly one record.
	SingletonPlatform = "PC, Itch.io"
)

var platforms = []string{
	"PC, Steam",
	"PC, Epic Games Store",
	"PC, GOG",
	"Xbox One",
	"Playstation 4, Playstation 5",
	"Android, iOS",
}

// Giveaways returns the same 84 records on every call.
func Giveaways() []models.GiveawayRecord {
	records := make([]models.GiveawayRecord, 0, Size)
	for i := 0; i < Size; i++ {
		r := models.GiveawayRecord{
			ID:            int64(1000 + i),
			Title:         fmt.Sprintf("Giveaway Key Drop #%02d (PC)", i),
			Type:          models.TypeDLCAndLoot,
			Platforms:     platforms[i%len(platforms)],
			Users:         int64((i*37)%500 + 10*(i%3)),
			EndDate:       "N/A",
			Status:        "Active",
			GamerpowerURL: fmt.Sprintf("https://www.gamerpower.com/giveaway-%d", i),
		}
		switch {
		case i%4 == 0:
			r.Type = models.TypeFullGame
		case i%12 == 9:
			r.Type = models.TypeEarlyAccess
		}
		if i%5 == 0 {
			r.Worth = models.WorthMissing
		} else {
			r.Worth = fmt.Sprintf("$%d.99", (i*7)%40)
		}
		switch i {
		case 10:
			r.Title = ShortestTitle
		case 40:
			r.Title = "Free Islets (GOG)"
		case 20:
			r.Title = LongestTitle
		case 62:
			r.Title = "Ultimate Collector Bundle with Soundtrack and Artbook (Epic!)"
		case 83:
			r.Platforms = SingletonPlatform
		}
		records = append(records, r)
	}
	return records
}
