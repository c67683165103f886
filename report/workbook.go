package report

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"
)

type sheet struct {
	name   string
	header []interface{}
	rows   [][]interface{}
}

// WriteWorkbook writes the derived tables as an xlsx workbook, one sheet per table.
// Undefined statistics are left as empty cells.
func WriteWorkbook(r *Report, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range workbookSheets(r) {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, s sheet) error {
	rows := append([][]interface{}{s.header}, s.rows...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return fmt.Errorf("write %s!%s: %w", s.name, cell, err)
		}
	}
	return nil
}

func workbookSheets(r *Report) []sheet {
	groupHeader := []interface{}{"key", "games", "mean", "std", "min", "25%", "50%", "75%", "max"}
	byType := sheet{name: "by_type", header: groupHeader}
	for _, g := range r.ByType.Rows {
		byType.rows = append(byType.rows, []interface{}{g.Key, g.Games, cellFloat(g.Mean), cellFloat(g.Std),
			cellFloat(g.Min), cellFloat(g.P25), cellFloat(g.P50), cellFloat(g.P75), cellFloat(g.Max)})
	}
	byPlatform := sheet{name: "by_platform", header: groupHeader}
	for _, g := range r.ByPlatform.Rows {
		byPlatform.rows = append(byPlatform.rows, []interface{}{g.Key, g.Games, cellFloat(g.Mean), cellFloat(g.Std),
			cellFloat(g.Min), cellFloat(g.P25), cellFloat(g.P50), cellFloat(g.P75), cellFloat(g.Max)})
	}

	titles := sheet{name: "title_lengths", header: []interface{}{"type", "min", "max", "mean"}}
	for _, t := range r.TitleLengths {
		titles.rows = append(titles.rows, []interface{}{t.Type, t.Min, t.Max, cellFloat(t.Mean)})
	}

	worth := sheet{name: "worth_ranked", header: []interface{}{"id", "title", "worth", "value", "users", "type", "platforms"}}
	for _, row := range r.Worth {
		worth.rows = append(worth.rows, []interface{}{row.ID, row.Title, row.Worth, row.WorthValue, row.Users, row.Type, row.Platforms})
	}

	zscores := sheet{name: "zscores", header: []interface{}{"id", "type", "users", "zscore"}}
	for _, row := range r.ZScores {
		zscores.rows = append(zscores.rows, []interface{}{row.ID, row.Type, row.Users, cellFloat(row.ZScore)})
	}

	return []sheet{byType, byPlatform, titles, worth, zscores}
}

func cellFloat(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}
