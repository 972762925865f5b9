package notification

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Pavel771123/nataliya/internal/domain"
)

const (
	ChannelTelegram = "telegram"

	placeholder    = "—"
	dateLayout     = "02.01.2006 15:04"
	fileAttached   = "прикреплён"
	fileNotPresent = "отсутствует"
)

type ChatChannel struct {
	bot      ChatBot
	location *time.Location
}

func NewChatChannel(bot ChatBot, location *time.Location) *ChatChannel {
	if location == nil {
		location = time.Local
	}

	return &ChatChannel{
		bot:      bot,
		location: location,
	}
}

func (c *ChatChannel) Name() string {
	return ChannelTelegram
}

// Notify posts the summary message and then, if the lead carries a file, the document itself.
// The document is sent even when the message failed.
func (c *ChatChannel) Notify(ctx context.Context, lead *domain.Lead, meta domain.RequestMeta) error {
	if !c.bot.Configured() {
		return ErrChannelDisabled
	}

	var errs []error
	if err := c.bot.SendMessage(ctx, c.message(lead, meta)); err != nil {
		errs = append(errs, fmt.Errorf("failed to send message: %w", err))
	}

	if lead.File != nil {
		if err := c.bot.SendDocument(ctx, lead.File, caption(lead)); err != nil {
			errs = append(errs, fmt.Errorf("failed to send document: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (c *ChatChannel) message(lead *domain.Lead, meta domain.RequestMeta) string {
	file := fileNotPresent
	if lead.HasFile() {
		file = fileAttached
	}

	var b strings.Builder
	b.WriteString("📩 Новая заявка с сайта\n\n")
	fmt.Fprintf(&b, "👤 Имя: %s\n", orPlaceholder(lead.Name))
	fmt.Fprintf(&b, "📞 Телефон: %s\n", orPlaceholder(lead.Phone))
	fmt.Fprintf(&b, "📝 Описание:\n%s\n\n", orPlaceholder(lead.Description))
	fmt.Fprintf(&b, "📎 Файл: %s\n", file)
	fmt.Fprintf(&b, "🕒 Дата: %s\n", lead.CreatedAt.In(c.location).Format(dateLayout))
	fmt.Fprintf(&b, "🌐 Страница: %s", orPlaceholder(meta.Referer))

	return b.String()
}

func caption(lead *domain.Lead) string {
	return fmt.Sprintf("📎 Файл к заявке от %s (%s)", html.EscapeString(lead.Name), html.EscapeString(lead.Phone))
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}

	return html.EscapeString(s)
}
