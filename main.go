package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/pivolan/giveaway_stats/config"
	"github.com/pivolan/giveaway_stats/gamerpower"
	"github.com/pivolan/giveaway_stats/logger"
	"github.com/pivolan/giveaway_stats/report"
)

func main() {
	cfg := config.GetConfig()

	var (
		platform = flag.String("platform", "", "platform filter, e.g. pc, steam, epic-games-store")
		kind     = flag.String("type", "", "type filter: game, loot or beta")
		sortBy   = flag.String("sort-by", "", "sort order: date, value or popularity")
		file     = flag.String("file", "", "read giveaways from a saved snapshot (.json, .gz, .lz4, .zip) instead of the API")
		save     = flag.String("save", "", "write the fetched giveaways to this snapshot file")
		bundle   = flag.Bool("bundle", false, "write PNG charts, the xlsx workbook and the HTML page under -out")
		out      = flag.String("out", cfg.OutputDir, "output directory for -bundle")
		serve    = flag.Bool("serve", false, "serve the HTTP API instead of printing a report")
		addr     = flag.String("addr", cfg.HTTPAddr, "listen address for -serve")
		notify   = flag.Bool("notify", false, "send the report to the configured Telegram chat")
		bot      = flag.Bool("bot", false, "answer /report commands in Telegram")
	)
	flag.Parse()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var source recordSource
	if *file != "" {
		source = gamerpower.NewFileSource(*file)
	} else {
		source = gamerpower.New(gamerpower.Options{
			BaseURL: cfg.BaseURL,
			Timeout: cfg.HTTPTimeout,
			Retries: cfg.HTTPRetries,
		}, log)
	}

	switch {
	case *serve:
		if cfg.LogMode != "dev" {
			gin.SetMode(gin.ReleaseMode)
		}
		if err := runServer(ctx, *addr, setupRouter(source, log), log); err != nil {
			log.Fatal("http server stopped", "error", err)
		}
		return
	case *bot:
		api, err := newBot(cfg)
		if err != nil {
			log.Fatal("telegram init failed", "error", err)
		}
		runBot(ctx, api, source, log, filepath.Join(cfg.OutputDir, "uploads"))
		return
	}

	filter := gamerpower.Filter{Platform: *platform, Type: *kind, SortBy: *sortBy}
	records, err := loadRecords(ctx, source, filter, log)
	if err != nil {
		log.Fatal("invalid filter", "error", err)
	}
	if *save != "" {
		if err := gamerpower.SaveSnapshot(*save, records); err != nil {
			log.Error("save snapshot failed", "path", *save, "error", err)
		} else {
			log.Info("snapshot saved", "path", *save, "records", len(records))
		}
	}

	r, err := report.Build(records)
	if err != nil {
		log.Fatal("build report failed", "error", err)
	}
	fmt.Print(report.RenderTables(r))

	if *bundle {
		files, err := writeBundle(ctx, r, *out)
		if err != nil {
			log.Error("write bundle failed", "dir", *out, "error", err)
		}
		for _, f := range files {
			log.Info("written", "file", f)
		}
	}

	if *notify {
		if !cfg.TelegramEnabled() {
			log.Fatal("telegram delivery needs TG_TOKEN and TG_CHAT_ID")
		}
		api, err := newBot(cfg)
		if err != nil {
			log.Fatal("telegram init failed", "error", err)
		}
		if err := sendReport(ctx, api, cfg.TgChatID, r); err != nil {
			log.Error("telegram delivery failed", "chat_id", cfg.TgChatID, "error", err)
		}
	}
}

func newBot(cfg *config.Config) (*tgbotapi.BotAPI, error) {
	if cfg.TgToken == "" {
		return nil, fmt.Errorf("TG_TOKEN is not set")
	}
	return tgbotapi.NewBotAPI(cfg.TgToken)
}
