package chat

import (
	"context"
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/notifykit/notifykit/pkg/notify"
)

// BotAPI is the subset of the Telegram bot API this sender uses.
// *tele.Bot satisfies it; tests supply a fake.
type BotAPI interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// BotSender delivers notifications to one Telegram chat through a bot token.
type BotSender struct {
	bot  BotAPI
	chat tele.Recipient
}

var _ notify.Sender = (*BotSender)(nil)

// NewBotSender creates a Telegram chat sender. The token is validated by
// connecting to the Telegram API at construction time.
func NewBotSender(token string, chatID int64) (*BotSender, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: bot token is required", ErrInvalidConfig)
	}
	bot, err := tele.NewBot(tele.Settings{Token: token})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return NewBotSenderWithAPI(bot, chatID)
}

// NewBotSenderWithAPI creates a sender around an existing bot, mainly for
// tests and shared bot instances.
func NewBotSenderWithAPI(bot BotAPI, chatID int64) (*BotSender, error) {
	if bot == nil {
		return nil, fmt.Errorf("%w: bot is required", ErrInvalidConfig)
	}
	if chatID == 0 {
		return nil, fmt.Errorf("%w: chat ID is required", ErrInvalidConfig)
	}
	return &BotSender{bot: bot, chat: tele.ChatID(chatID)}, nil
}

// Send posts the notification as one Markdown message. Subject-only and
// message-only notifications are both legal.
func (s *BotSender) Send(ctx context.Context, subject, message string) (notify.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return notify.Outcome{}, err
	}

	text := message
	if subject != "" && message != "" {
		text = "*" + subject + "*\n\n" + message
	} else if subject != "" {
		text = "*" + subject + "*"
	}

	msg, err := s.bot.Send(s.chat, text, &tele.SendOptions{ParseMode: tele.ModeMarkdown})
	if err != nil {
		return notify.Outcome{}, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	return notify.NewOutcome(fmt.Sprintf("tg-%d", msg.ID), "telegram message delivered"), nil
}
