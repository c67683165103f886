package main

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/pivolan/giveaway_stats/gamerpower"
)

func (b *telegramBot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "report":
		b.handleReportCommand(ctx, message)
	default:
		b.handleText(message)
	}
}

func (b *telegramBot) handleReportCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	filter, err := parseReportArgs(message.CommandArguments())
	if err != nil {
		b.reply(chatID, err.Error())
		return
	}
	records, err := loadRecords(ctx, b.source, filter, b.log)
	if err != nil {
		b.reply(chatID, err.Error())
		return
	}
	b.deliver(ctx, chatID, records)
}

// parseReportArgs reads "platform=steam type=game sort-by=value" style arguments.
func parseReportArgs(args string) (gamerpower.Filter, error) {
	var filter gamerpower.Filter
	for _, field := range strings.Fields(args) {
		key, value, ok := strings.Cut(field, "=")
		if !ok || value == "" {
			return filter, fmt.Errorf("%w: expected key=value, got %q", gamerpower.ErrFilter, field)
		}
		switch strings.ToLower(key) {
		case "platform":
			filter.Platform = value
		case "type":
			filter.Type = value
		case "sort-by", "sort":
			filter.SortBy = value
		default:
			return filter, fmt.Errorf("%w: unknown argument %q, use platform, type or sort-by", gamerpower.ErrFilter, key)
		}
	}
	return filter, filter.Validate()
}
