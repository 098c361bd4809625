package bot

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/apiclient"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot bridges Telegram commands to the attendance API. It owns no state
// beyond the API client; every command resolves identity from the sender's
// Telegram user id.
type Bot struct {
	api    *tgbotapi.BotAPI
	client *apiclient.Client
}

func New(token string, client *apiclient.Client) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:    api,
		client: client,
	}, nil
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	slog.Info("telegram attendance bot is running", "username", b.api.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			b.handleCommand(ctx, update.Message)
		}
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	telegramID := strconv.FormatInt(msg.From.ID, 10)
	firstName := msg.From.FirstName

	var reply string
	switch msg.Command() {
	case "start":
		reply = startReply(firstName)
	case "help":
		reply = helpReply()
	case "login":
		att, err := b.client.CheckIn(ctx, telegramID)
		if err != nil {
			slog.Error("check-in failed", "telegram_id", telegramID, "error", err)
			reply = checkInErrorReply(err)
		} else {
			reply = checkInReply(firstName, att)
		}
	case "logout":
		att, err := b.client.CheckOut(ctx, telegramID)
		if err != nil {
			slog.Error("check-out failed", "telegram_id", telegramID, "error", err)
			reply = checkOutErrorReply(err)
		} else {
			reply = checkOutReply(firstName, att)
		}
	case "status":
		att, err := b.client.Today(ctx, telegramID)
		if err != nil {
			slog.Error("status lookup failed", "telegram_id", telegramID, "error", err)
			reply = statusErrorReply(err)
		} else {
			reply = statusReply(att)
		}
	case "employee":
		emp, err := b.client.EmployeeByTelegramID(ctx, telegramID)
		if err != nil {
			slog.Error("employee lookup failed", "telegram_id", telegramID, "error", err)
			reply = employeeErrorReply(err)
		} else {
			reply = employeeReply(emp)
		}
	default:
		return
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, reply)
	out.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(out); err != nil {
		slog.Error("failed to send reply", "chat_id", msg.Chat.ID, "error", err)
	}
}
