package leads

import (
	"context"

	"github.com/Pavel771123/nataliya/internal/domain"
)

type LeadCreator interface {
	CreateLead(ctx context.Context, lead *domain.NewLead) (*domain.Lead, error)
}

type Notifier interface {
	Notify(ctx context.Context, lead *domain.Lead, meta domain.RequestMeta)
}
