package portfolio

import (
	"context"

	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/google/uuid"
)

type Store interface {
	Categories(ctx context.Context) ([]*domain.ProjectCategory, error)
	Category(ctx context.Context, slug string) (*domain.ProjectCategory, error)
	CountProjects(ctx context.Context, categorySlug string) (int, error)
	Projects(ctx context.Context, categorySlug string, limit, offset int) ([]*domain.Project, error)
	Project(ctx context.Context, slug string) (*domain.Project, error)
	RelatedProjects(ctx context.Context, categoryID *uuid.UUID, exclude uuid.UUID, limit int) ([]*domain.Project, error)
	CountSamples(ctx context.Context) (int, error)
	Samples(ctx context.Context, limit, offset int) ([]*domain.Sample, error)
	Sample(ctx context.Context, slug string) (*domain.Sample, error)
	Page(ctx context.Context, slug string) (*domain.Page, error)
	ImportProjects(ctx context.Context, projects []*domain.ProjectImport) (*domain.ImportResult, error)
}
