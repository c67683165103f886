package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pivolan/giveaway_stats/domain/models"
)

// RenderTables renders every derived table as ASCII text.
func RenderTables(r *Report) string {
	return strings.Join(TableSections(r), "\n\n") + "\n"
}

// TableSections renders the run header and each derived table separately.
func TableSections(r *Report) []string {
	return []string{
		fmt.Sprintf("Run %s, %d giveaways, generated %s", r.RunID, r.Records, r.GeneratedAt.Format("2006-01-02 15:04:05 MST")),
		groupTable("Users by type", r.ByType),
		groupTable("Users by platform", r.ByPlatform),
		typeCountTable(r.TypeCounts),
		titleTable(r),
		titleLengthTable(r.TitleLengths),
		worthTable(r),
		zScoreTable(r.ZScores),
	}
}

func newTable(title string, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetTitle(title)
	t.AppendHeader(header)
	t.SetStyle(table.StyleDefault)
	return t
}

func groupTable(title string, g models.GroupTable) string {
	t := newTable(title, table.Row{g.GroupedBy, "Games", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"})
	for _, row := range g.Rows {
		t.AppendRow(table.Row{
			row.Key, row.Games,
			formatFloat(row.Mean), formatFloat(row.Std), formatFloat(row.Min),
			formatFloat(row.P25), formatFloat(row.P50), formatFloat(row.P75), formatFloat(row.Max),
		})
	}
	t.AppendFooter(table.Row{"total", g.TotalGames()})
	return t.Render()
}

func typeCountTable(counts []TypeCount) string {
	t := newTable("Giveaways per type", table.Row{"Type", "Count"})
	for _, c := range counts {
		t.AppendRow(table.Row{c.Type, c.Count})
	}
	return t.Render()
}

func titleTable(r *Report) string {
	t := newTable("Title extremes", table.Row{"Mode", "Title", "Length"})
	t.AppendRows([]table.Row{
		{"longest", r.LongestTitle, len([]rune(r.LongestTitle))},
		{"shortest", r.ShortestTitle, len([]rune(r.ShortestTitle))},
	})
	return t.Render()
}

func titleLengthTable(rows []models.TitleLengthSummary) string {
	t := newTable("Title length by type", table.Row{"Type", "Min", "Max", "Mean"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.Type, row.Min, row.Max, formatFloat(row.Mean)})
	}
	return t.Render()
}

func worthTable(r *Report) string {
	t := newTable("Worth ranking", table.Row{"ID", "Title", "Worth", "Users"})
	for _, row := range r.Worth {
		t.AppendRow(table.Row{row.ID, row.Title, formatFloat(row.WorthValue), row.Users})
	}
	if r.Fit != nil {
		t.AppendFooter(table.Row{"fit", fmt.Sprintf("users = %s*worth + %s", formatFloat(r.Fit.Slope), formatFloat(r.Fit.Intercept)),
			"r", formatFloat(r.Correlation)})
	}
	return t.Render()
}

func zScoreTable(rows []models.ZScoreRow) string {
	t := newTable("User z-scores within type", table.Row{"ID", "Type", "Users", "Z"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.ID, row.Type, row.Users, formatFloat(row.ZScore)})
	}
	return t.Render()
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", v)
}
