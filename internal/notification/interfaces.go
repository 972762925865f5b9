package notification

import (
	"context"

	"github.com/Pavel771123/nataliya/internal/domain"
)

type Channel interface {
	Name() string
	Notify(ctx context.Context, lead *domain.Lead, meta domain.RequestMeta) error
}

type Mailer interface {
	Send(ctx context.Context, email *domain.Email) error
}

type ChatBot interface {
	Configured() bool
	SendMessage(ctx context.Context, text string) error
	SendDocument(ctx context.Context, file *domain.Attachment, caption string) error
}
