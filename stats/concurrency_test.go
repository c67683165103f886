package stats

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pivolan/giveaway_stats/domain/fixture"
	"github.com/pivolan/giveaway_stats/domain/models"
)

func TestOperationsShareInputSafely(t *testing.T) {
	records := fixture.Giveaways()
	want := fixture.Giveaways()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(asc bool) {
			defer wg.Done()
			_, _ = GroupSummary(records, GroupByPlatform)
			_ = ZScores(records)
			_, _ = WorthRanked(records, asc)
			_, _ = TitleExtreme(records, ExtremeMin)
			_ = TitleLengthByType(records)
			_, _ = CountByType(records, models.TypeFullGame)
		}(i%2 == 0)
	}
	wg.Wait()

	assert.Equal(t, want, records)
}
