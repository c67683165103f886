package main

import (
	"context"
	"errors"
	"html"
	"strings"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivolan/giveaway_stats/domain/fixture"
	"github.com/pivolan/giveaway_stats/report"
)

// fakeBot records everything sent to it and optionally fails on photos.
type fakeBot struct {
	mu         sync.Mutex
	sent       []tgbotapi.Chattable
	failPhotos bool
	fileURL    string
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, c)
	if _, ok := c.(tgbotapi.PhotoConfig); ok && b.failPhotos {
		return tgbotapi.Message{}, errors.New("Bad Request: PHOTO_INVALID_DIMENSIONS")
	}
	return tgbotapi.Message{}, nil
}

func (b *fakeBot) GetFileDirectURL(fileID string) (string, error) {
	if b.fileURL == "" {
		return "", errors.New("file not found")
	}
	return b.fileURL, nil
}

func (b *fakeBot) messages() []tgbotapi.Chattable {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]tgbotapi.Chattable(nil), b.sent...)
}

func (b *fakeBot) texts() []string {
	var out []string
	for _, c := range b.messages() {
		if m, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, m.Text)
		}
	}
	return out
}

func TestSendReport(t *testing.T) {
	r, err := report.Build(fixture.Giveaways())
	require.NoError(t, err)

	bot := &fakeBot{}
	require.NoError(t, sendReport(context.Background(), bot, 42, r))

	sent := bot.messages()
	var texts, charts int
	for _, c := range sent[:len(sent)-1] {
		switch m := c.(type) {
		case tgbotapi.MessageConfig:
			texts++
			assert.Equal(t, int64(42), m.ChatID)
			assert.Equal(t, tgbotapi.ModeHTML, m.ParseMode)
			assert.True(t, strings.HasPrefix(m.Text, "<pre>"))
			visible := html.UnescapeString(strings.TrimSuffix(strings.TrimPrefix(m.Text, "<pre>"), "</pre>"))
			assert.LessOrEqual(t, len([]rune(visible)), maxMessageLength)
		case tgbotapi.PhotoConfig, tgbotapi.DocumentConfig:
			charts++
		default:
			t.Fatalf("unexpected message %T", c)
		}
	}
	assert.GreaterOrEqual(t, texts, len(report.TableSections(r)))
	assert.Equal(t, len(report.ChartNames), charts)

	doc, ok := sent[len(sent)-1].(tgbotapi.DocumentConfig)
	require.True(t, ok)
	file, ok := doc.File.(tgbotapi.FileBytes)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(file.Name, ".xlsx"))
	assert.NotEmpty(t, file.Bytes)
}

func TestSendReportEscapesHTML(t *testing.T) {
	r, err := report.Build(fixture.Giveaways())
	require.NoError(t, err)

	bot := &fakeBot{}
	require.NoError(t, sendReport(context.Background(), bot, 42, r))
	joined := strings.Join(bot.texts(), "\n")
	assert.Contains(t, joined, "DLC &amp; Loot")
	assert.NotContains(t, joined, "DLC & Loot")
}

func TestSendGraphVisualizationLargeChartIsDocument(t *testing.T) {
	r, err := report.Build(fixture.Giveaways())
	require.NoError(t, err)

	bot := &fakeBot{}
	require.NoError(t, sendGraphVisualization(bot, 7, r, report.ChartWorth, make([]byte, maxSizePhoto+1)))
	require.NoError(t, sendGraphVisualization(bot, 7, r, report.ChartTypes, make([]byte, 10)))

	sent := bot.messages()
	require.Len(t, sent, 2)
	doc, ok := sent[0].(tgbotapi.DocumentConfig)
	require.True(t, ok)
	assert.Contains(t, doc.Caption, "Trend")
	photo, ok := sent[1].(tgbotapi.PhotoConfig)
	require.True(t, ok)
	assert.Contains(t, photo.Caption, "84 in total")
}

func TestSendGraphVisualizationFailureNotifiesChat(t *testing.T) {
	r, err := report.Build(fixture.Giveaways())
	require.NoError(t, err)

	bot := &fakeBot{failPhotos: true}
	err = sendGraphVisualization(bot, 7, r, report.ChartTypes, []byte("png"))
	assert.Error(t, err)

	texts := bot.texts()
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "types.png")
}

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"abc\ndef"}, splitMessage("abc\ndef", 10))
	assert.Equal(t, []string{"abc", "def"}, splitMessage("abc\ndef", 5))
	assert.Equal(t, []string{"abcde", "fgh"}, splitMessage("abcdefgh", 5))
	assert.Empty(t, splitMessage("", 5))

	long := strings.Repeat("row of a wide table\n", 500)
	for _, part := range splitMessage(long, maxMessageLength) {
		assert.LessOrEqual(t, len([]rune(part)), maxMessageLength)
	}
}
