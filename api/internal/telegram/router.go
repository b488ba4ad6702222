package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"emotion-detector/api/internal/emotion"
)

const (
	startMessage       = "Send me a sentence and I will tell you which emotions it expresses."
	unavailableMessage = "Sorry, the emotion classifier is not reachable right now. Please try again later."
	unknownCommand     = "Unknown command. Just send me some text."
)

// Sender is the part of tgbotapi.BotAPI the router needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Router struct {
	Bot        Sender
	Classifier emotion.Classifier
}

func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if upd.Message.IsCommand() {
		r.HandleCommand(upd)
		return
	}
	if upd.Message.Text == "" {
		return
	}
	r.send(cid, r.Reply(ctx, upd.Message.Text))
}

func (r *Router) HandleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start", "help":
		r.send(cid, startMessage)
	case "engine":
		r.send(cid, "Classifier: "+r.Classifier.Name())
	default:
		r.send(cid, unknownCommand)
	}
}

// Reply is the text the bot answers with, the same sentence the HTTP
// endpoint returns.
func (r *Router) Reply(ctx context.Context, text string) string {
	msg, err := emotion.Analyze(ctx, r.Classifier, text)
	switch {
	case err == nil:
		return msg
	case errors.Is(err, emotion.ErrInvalidText):
		return emotion.InvalidTextMessage
	default:
		log.Error().Err(err).Str("classifier", r.Classifier.Name()).Msg("telegram: classification failed")
		return unavailableMessage
	}
}

func (r *Router) send(chatID int64, text string) {
	if _, err := r.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("telegram: send failed")
	}
}
