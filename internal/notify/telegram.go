package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bigsister-lab/bigsister/internal/platform"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender is the slice of *tgbotapi.BotAPI the notifier uses.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram posts escalations to a moderator chat.
type Telegram struct {
	bot     sender
	chatID  int64
	mention string
}

// NewTelegram authenticates the bot token and returns a notifier for chatID.
// mention is prepended to every message (e.g. "@mods"); it may be empty.
// Every Bot API call, the authentication included, is bounded by timeout.
func NewTelegram(token string, chatID int64, mention string, timeout time.Duration) (*Telegram, error) {
	return dialTelegram(tgbotapi.APIEndpoint, token, chatID, mention, timeout)
}

func dialTelegram(endpoint, token string, chatID int64, mention string, timeout time.Duration) (*Telegram, error) {
	if token == "" {
		return nil, errors.New("telegram token is empty")
	}
	if timeout <= 0 {
		return nil, errors.New("telegram timeout must be positive")
	}
	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	slog.Info("[Notify] Telegram notifier ready", "bot", bot.Self.UserName, "chat_id", chatID)
	return newTelegram(bot, chatID, mention), nil
}

func newTelegram(bot sender, chatID int64, mention string) *Telegram {
	return &Telegram{bot: bot, chatID: chatID, mention: mention}
}

// NotifyEscalation sends one plain-text message. Delivery is not retried.
func (t *Telegram) NotifyEscalation(ctx context.Context, esc platform.Escalation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(t.chatID, FormatEscalation(t.mention, esc))
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram escalation for subject %d: %w", esc.Subject, err)
	}
	return nil
}

// FormatEscalation renders the alert text, e.g. "@mods user 42 has 5 modlogs".
func FormatEscalation(mention string, esc platform.Escalation) string {
	var b strings.Builder
	if mention != "" {
		b.WriteString(mention)
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "user %d has %d modlogs", esc.Subject, esc.Count)
	return b.String()
}

var _ platform.Notifier = (*Telegram)(nil)
