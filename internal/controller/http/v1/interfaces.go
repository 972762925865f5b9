package v1

import (
	"context"
	"io"

	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/Pavel771123/nataliya/internal/leads"
	"github.com/Pavel771123/nataliya/internal/portfolio"
	"github.com/google/uuid"
)

type LeadSubmitter interface {
	Submit(ctx context.Context, form leads.Form, meta domain.RequestMeta) (*domain.Lead, error)
}

type LeadsLister interface {
	Leads(ctx context.Context, limit, offset int) ([]*domain.Lead, int, error)
}

type LeadFileGetter interface {
	LeadFile(ctx context.Context, leadID uuid.UUID) (*domain.Attachment, error)
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type LeadsExporter interface {
	CSV(ctx context.Context, w io.Writer) error
	PDF(ctx context.Context) ([]byte, error)
}

type Catalog interface {
	Projects(ctx context.Context, categorySlug, page string) (*portfolio.ProjectList, error)
	Categories(ctx context.Context) ([]*domain.ProjectCategory, error)
	Project(ctx context.Context, slug string) (*portfolio.ProjectDetail, error)
	Samples(ctx context.Context, page string) (*portfolio.SampleList, error)
	Sample(ctx context.Context, slug string) (*domain.Sample, error)
	Page(ctx context.Context, slug string) (*domain.Page, error)
}

type ProjectImporter interface {
	Import(ctx context.Context, r io.Reader) (*domain.ImportResult, error)
}
