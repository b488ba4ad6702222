package main

import (
	"errors"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"

	"emotion-detector/api/internal/telegram"
)

func NewBotCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Answer Telegram messages with their emotion scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.TelegramBotToken == "" {
				return errors.New("TELEGRAM_BOT_TOKEN is not set")
			}
			bot, err := tgbotapi.NewBotAPI(a.cfg.TelegramBotToken)
			if err != nil {
				return err
			}
			bot.Debug = false

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return telegram.Poll(ctx, bot, &telegram.Router{Bot: bot, Classifier: a.clf})
		},
	}
}
