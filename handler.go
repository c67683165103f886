package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pivolan/giveaway_stats/domain/models"
	"github.com/pivolan/giveaway_stats/gamerpower"
	"github.com/pivolan/giveaway_stats/logger"
	"github.com/pivolan/giveaway_stats/report"
)

// recordSource is satisfied by the live API client and by snapshot files.
type recordSource interface {
	Fetch(ctx context.Context, filter gamerpower.Filter) ([]models.GiveawayRecord, error)
}

// loadRecords fetches giveaways for filter. A rejected filter is returned to the caller;
// any other fetch failure is logged and yields an empty set.
func loadRecords(ctx context.Context, source recordSource, filter gamerpower.Filter, log *logger.Logger) ([]models.GiveawayRecord, error) {
	records, err := source.Fetch(ctx, filter)
	if errors.Is(err, gamerpower.ErrFilter) {
		return nil, err
	}
	if err != nil {
		log.Warn("fetch giveaways failed, continuing with an empty set",
			"platform", filter.Platform,
			"type", filter.Type,
			"sort_by", filter.SortBy,
			"error", err)
		return []models.GiveawayRecord{}, nil
	}
	return records, nil
}

// writeBundle writes the tables, workbook, charts and HTML page of r into dir/<run id>
// and returns the written paths.
func writeBundle(ctx context.Context, r *report.Report, dir string) ([]string, error) {
	runDir := filepath.Join(dir, r.RunID.String())
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, fmt.Errorf("create bundle dir: %w", err)
	}

	var written []string
	write := func(name string, data []byte) error {
		path := filepath.Join(runDir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		written = append(written, path)
		return nil
	}

	if err := write(report.FileName(r.RunID, "tables", "txt"), []byte(report.RenderTables(r))); err != nil {
		return written, err
	}

	var workbook bytes.Buffer
	if err := report.WriteWorkbook(r, &workbook); err != nil {
		return written, err
	}
	if err := write(report.FileName(r.RunID, "giveaway stats", "xlsx"), workbook.Bytes()); err != nil {
		return written, err
	}

	charts, err := report.RenderCharts(ctx, r)
	if err != nil {
		return written, err
	}
	for _, name := range report.ChartNames {
		b, ok := charts[name]
		if !ok {
			continue
		}
		if err := write(report.FileName(r.RunID, strings.TrimSuffix(name, filepath.Ext(name)), "png"), b); err != nil {
			return written, err
		}
	}

	var page bytes.Buffer
	if err := report.WriteHTML(&page, r); err != nil {
		return written, err
	}
	if err := write(report.FileName(r.RunID, "report", "html"), page.Bytes()); err != nil {
		return written, err
	}
	return written, nil
}
