package notification

import (
	"context"
	"fmt"

	"github.com/Pavel771123/nataliya/internal/domain"
)

const (
	ChannelEmail = "email"

	fallbackSender    = "noreply@example.com"
	fallbackRecipient = "info@example.com"
	noDescription     = "Не указано"
)

type EmailChannel struct {
	mailer Mailer
	from   string
	to     []string
}

// NewEmailChannel resolves sender and recipients once. An empty sender falls back to
// noreply@example.com; without recipients mail goes to the configured sender, or to
// info@example.com when there is none.
func NewEmailChannel(mailer Mailer, from string, to []string) *EmailChannel {
	recipients := make([]string, 0, len(to))
	for _, addr := range to {
		if addr != "" {
			recipients = append(recipients, addr)
		}
	}

	if len(recipients) == 0 {
		if from != "" {
			recipients = append(recipients, from)
		} else {
			recipients = append(recipients, fallbackRecipient)
		}
	}

	if from == "" {
		from = fallbackSender
	}

	return &EmailChannel{
		mailer: mailer,
		from:   from,
		to:     recipients,
	}
}

func (c *EmailChannel) Name() string {
	return ChannelEmail
}

func (c *EmailChannel) Notify(ctx context.Context, lead *domain.Lead, _ domain.RequestMeta) error {
	if err := c.mailer.Send(ctx, c.compose(lead)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (c *EmailChannel) compose(lead *domain.Lead) *domain.Email {
	description := lead.Description
	if description == "" {
		description = noDescription
	}

	email := &domain.Email{
		From:    c.from,
		To:      c.to,
		Subject: "Новая заявка с сайта: " + lead.Name,
		Body: fmt.Sprintf(
			"Имя: %s\nТелефон: %s\nОписание: %s\n",
			lead.Name, lead.Phone, description,
		),
	}

	if lead.File != nil {
		email.Attachments = []*domain.Attachment{lead.File}
	}

	return email
}
