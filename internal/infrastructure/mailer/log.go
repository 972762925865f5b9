package mailer

import (
	"context"
	"log/slog"

	"github.com/Pavel771123/nataliya/internal/domain"
)

// Log writes emails to the logger instead of delivering them. Used when no SMTP host is set.
type Log struct {
	log *slog.Logger
}

func NewLog(log *slog.Logger) *Log {
	return &Log{log: log}
}

func (l *Log) Send(ctx context.Context, email *domain.Email) error {
	attachments := make([]string, 0, len(email.Attachments))
	for _, file := range email.Attachments {
		attachments = append(attachments, file.Name)
	}

	l.log.InfoContext(ctx, "email",
		slog.String("from", email.From),
		slog.Any("to", email.To),
		slog.String("subject", email.Subject),
		slog.String("body", email.Body),
		slog.Any("attachments", attachments),
	)

	return nil
}
