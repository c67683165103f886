package main

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/pivolan/giveaway_stats/report"
)

// sender is the part of *tgbotapi.BotAPI used for delivery.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

const (
	// Telegram recompresses photos; larger images go out as documents.
	maxSizePhoto     = 150000
	maxMessageLength = 4000
)

// sendReport posts the tables, then every chart, then the xlsx workbook to chatID.
func sendReport(ctx context.Context, api sender, chatID int64, r *report.Report) error {
	for _, section := range report.TableSections(r) {
		for _, chunk := range splitMessage(section, maxMessageLength) {
			msg := tgbotapi.NewMessage(chatID, "<pre>"+html.EscapeString(chunk)+"</pre>")
			msg.ParseMode = tgbotapi.ModeHTML
			if _, err := api.Send(msg); err != nil {
				return fmt.Errorf("send tables: %w", err)
			}
		}
	}

	charts, err := report.RenderCharts(ctx, r)
	if err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	for _, name := range report.ChartNames {
		graph, ok := charts[name]
		if !ok {
			continue
		}
		if err := sendGraphVisualization(api, chatID, r, name, graph); err != nil {
			return err
		}
	}

	var workbook bytes.Buffer
	if err := report.WriteWorkbook(r, &workbook); err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	doc := tgbotapi.NewDocumentUpload(chatID, tgbotapi.FileBytes{
		Name:  report.FileName(r.RunID, "giveaway stats", "xlsx"),
		Bytes: workbook.Bytes(),
	})
	doc.Caption = fmt.Sprintf("All tables for run %s", r.RunID)
	if _, err := api.Send(doc); err != nil {
		return fmt.Errorf("send workbook: %w", err)
	}
	return nil
}

// sendGraphVisualization sends one chart as a photo, or as a document when it is too big for a photo.
// On failure the chat is told which chart is missing.
func sendGraphVisualization(api sender, chatID int64, r *report.Report, name string, graph []byte) error {
	pngFile := tgbotapi.FileBytes{
		Name:  report.FileName(r.RunID, strings.TrimSuffix(name, ".png"), "png"),
		Bytes: graph,
	}

	var msg tgbotapi.Chattable
	if len(graph) < maxSizePhoto {
		photo := tgbotapi.NewPhotoUpload(chatID, pngFile)
		photo.Caption = generateVizualDescription(name, r)
		msg = photo
	} else {
		doc := tgbotapi.NewDocumentUpload(chatID, pngFile)
		doc.Caption = generateVizualDescription(name, r)
		msg = doc
	}

	if _, err := api.Send(msg); err != nil {
		_, _ = api.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf("Could not send the %s chart: %v", name, err)))
		return fmt.Errorf("send chart %s: %w", name, err)
	}
	return nil
}

func generateVizualDescription(name string, r *report.Report) string {
	switch name {
	case report.ChartZScores:
		return "Distribution of user z-scores within each giveaway type.\n" +
			"Values far from zero are unusually popular or unpopular for their type."
	case report.ChartWorth:
		if r.Fit == nil {
			return "Users against advertised worth."
		}
		return fmt.Sprintf("Users against advertised worth.\nTrend: users = %.2f*worth + %.2f, r = %.2f",
			r.Fit.Slope, r.Fit.Intercept, r.Correlation)
	case report.ChartTypes:
		return fmt.Sprintf("Giveaways per type, %d in total.", r.Records)
	}
	return name
}

// splitMessage cuts text on line boundaries into pieces of at most limit runes.
func splitMessage(text string, limit int) []string {
	var parts []string
	var cur strings.Builder
	curLen := 0
	flush := func() {
		if curLen > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, line := range strings.Split(text, "\n") {
		for utf8.RuneCountInString(line) > limit {
			flush()
			runes := []rune(line)
			parts = append(parts, string(runes[:limit]))
			line = string(runes[limit:])
		}
		n := utf8.RuneCountInString(line)
		if curLen > 0 && curLen+1+n > limit {
			flush()
		}
		if curLen > 0 {
			cur.WriteByte('\n')
			curLen++
		}
		cur.WriteString(line)
		curLen += n
	}
	flush()
	return parts
}
