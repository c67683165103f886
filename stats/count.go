package stats

import (
	"fmt"
	"strings"

	"github.com/pivolan/go_utils"

	"github.com/pivolan/giveaway_stats/domain/models"
)

// CountByType counts the records of one of the recognised giveaway types.
func CountByType(records []models.GiveawayRecord, giveawayType string) (int, error) {
	if !go_utils.InArray(giveawayType, models.RecognisedTypes) {
		return 0, fmt.Errorf("%w: type %q, want one of %s", ErrInvalidArgument, giveawayType,
			strings.Join(models.RecognisedTypes, ", "))
	}

	n := 0
	for _, r := range records {
		if r.Type == giveawayType {
			n++
		}
	}
	return n, nil
}
