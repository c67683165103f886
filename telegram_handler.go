package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/pivolan/giveaway_stats/domain/models"
	"github.com/pivolan/giveaway_stats/gamerpower"
	"github.com/pivolan/giveaway_stats/logger"
	"github.com/pivolan/giveaway_stats/report"
)

const helpText = `I build statistics over the current GamerPower giveaways.

Commands:
/report - report over every active giveaway
/report platform=steam type=game sort-by=value - narrow the set first

You can also send a snapshot file saved with -save (.json, .json.gz, .json.lz4 or .zip)
and I will report on it instead of the live listing.`

// botAPI is the part of *tgbotapi.BotAPI the bot handlers use.
type botAPI interface {
	sender
	GetFileDirectURL(fileID string) (string, error)
}

type telegramBot struct {
	api      botAPI
	source   recordSource
	log      *logger.Logger
	download *resty.Client
	// uploads are stored under uploadDir/<chat id> until the report is sent
	uploadDir string
}

func newTelegramBot(api botAPI, source recordSource, log *logger.Logger, uploadDir string) *telegramBot {
	return &telegramBot{
		api:       api,
		source:    source,
		log:       log,
		download:  resty.New().SetTimeout(time.Minute),
		uploadDir: uploadDir,
	}
}

// runBot long-polls Telegram and answers every message until ctx is cancelled.
func runBot(ctx context.Context, api *tgbotapi.BotAPI, source recordSource, log *logger.Logger, uploadDir string) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates, err := api.GetUpdatesChan(u)
	if err != nil {
		log.Error("telegram updates failed", "error", err)
		return
	}
	log.Info("telegram bot started", "account", api.Self.UserName)

	b := newTelegramBot(api, source, log, uploadDir)
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *telegramBot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	switch {
	case message.Document != nil:
		b.handleDocument(ctx, message)
	case message.IsCommand():
		b.handleCommand(ctx, message)
	default:
		b.handleText(message)
	}
}

func (b *telegramBot) handleText(message *tgbotapi.Message) {
	b.reply(message.Chat.ID, helpText)
}

func (b *telegramBot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.log.Warn("telegram reply failed", "chat_id", chatID, "error", err)
	}
}

// handleDocument downloads an uploaded snapshot and reports on it.
func (b *telegramBot) handleDocument(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	fileURL, err := b.api.GetFileDirectURL(message.Document.FileID)
	if err != nil {
		b.log.Error("telegram file url failed", "file_id", message.Document.FileID, "error", err)
		b.reply(chatID, "Could not download the file, please try again.")
		return
	}

	path := filepath.Join(b.uploadDir, fmt.Sprintf("%d", chatID), filepath.Base(message.Document.FileName))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		b.log.Error("create upload dir failed", "path", path, "error", err)
		b.reply(chatID, "Could not store the file.")
		return
	}
	defer os.Remove(path)

	resp, err := b.download.R().SetContext(ctx).SetOutput(path).Get(fileURL)
	if err == nil && resp.IsError() {
		err = fmt.Errorf("GET returned %s", resp.Status())
	}
	if err != nil {
		b.log.Error("download upload failed", "file", message.Document.FileName, "error", err)
		b.reply(chatID, "Could not download the file, please try again.")
		return
	}

	records, err := gamerpower.NewFileSource(path).Fetch(ctx, gamerpower.Filter{})
	if err != nil {
		b.log.Warn("uploaded snapshot rejected", "file", message.Document.FileName, "error", err)
		b.reply(chatID, "This does not look like a giveaway snapshot: "+strings.TrimSpace(err.Error()))
		return
	}
	b.deliver(ctx, chatID, records)
}

// deliver builds a report over records and sends it to chatID.
func (b *telegramBot) deliver(ctx context.Context, chatID int64, records []models.GiveawayRecord) {
	r, err := report.Build(records)
	if err != nil {
		b.log.Error("build report failed", "chat_id", chatID, "error", err)
		b.reply(chatID, "Could not build the report: "+err.Error())
		return
	}
	if err := sendReport(ctx, b.api, chatID, r); err != nil {
		b.log.Error("telegram delivery failed", "chat_id", chatID, "run_id", r.RunID.String(), "error", err)
	}
}
