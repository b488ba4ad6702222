package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// Poll long-polls Telegram until ctx is cancelled. Updates are handled one at
// a time.
func Poll(ctx context.Context, bot *tgbotapi.BotAPI, r *Router) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)
	defer bot.StopReceivingUpdates()

	log.Info().Str("bot", bot.Self.UserName).Msg("telegram: polling")
	for {
		select {
		case <-ctx.Done():
			return nil
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			r.HandleUpdate(ctx, upd)
		}
	}
}
