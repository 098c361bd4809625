package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/attendly/attendance-backend-go/internal/bot"
	"github.com/attendly/attendance-backend-go/internal/config"
	"github.com/attendly/attendance-backend-go/internal/pkg/apiclient"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	if cfg.Bot.Token == "" {
		fmt.Println("TELEGRAM_BOT_TOKEN is required")
		return
	}

	client := apiclient.NewClient(cfg.Bot.APIURL, cfg.Bot.APIToken)

	b, err := bot.New(cfg.Bot.Token, client)
	if err != nil {
		fmt.Println("Error starting bot:", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b.Run(ctx)
}
