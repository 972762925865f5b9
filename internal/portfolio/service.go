package portfolio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/google/uuid"
)

const (
	ProjectsPerPage = 12
	SamplesPerPage  = 6

	relatedProjects = 3
)

// Service is the read side of the catalog plus the bulk project import.
type Service struct {
	log   *slog.Logger
	store Store
}

func NewService(log *slog.Logger, store Store) *Service {
	return &Service{
		log:   log,
		store: store,
	}
}

type ProjectList struct {
	Projects        []*domain.Project         `json:"projects"`
	Categories      []*domain.ProjectCategory `json:"categories"`
	CurrentCategory *domain.ProjectCategory   `json:"current_category"`
	Paging          Paging                    `json:"paging"`
}

// Projects lists published projects, optionally of one category. An unknown category yields an
// empty listing, not an error.
func (s *Service) Projects(ctx context.Context, categorySlug, page string) (*ProjectList, error) {
	total, err := s.store.CountProjects(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	paging, err := NewPaging(page, ProjectsPerPage, total)
	if err != nil {
		return nil, err
	}

	projects := []*domain.Project{}
	if total > 0 {
		projects, err = s.store.Projects(ctx, categorySlug, paging.PerPage, paging.Offset())
		if err != nil {
			return nil, fmt.Errorf("failed to get projects: %w", err)
		}
	}

	categories, err := s.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	var current *domain.ProjectCategory
	if categorySlug != "" {
		current, err = s.store.Category(ctx, categorySlug)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("failed to get category: %w", err)
		}
	}

	return &ProjectList{
		Projects:        projects,
		Categories:      categories,
		CurrentCategory: current,
		Paging:          paging,
	}, nil
}

func (s *Service) Categories(ctx context.Context) ([]*domain.ProjectCategory, error) {
	categories, err := s.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return categories, nil
}

type ProjectDetail struct {
	Project *domain.Project   `json:"project"`
	Related []*domain.Project `json:"related"`
}

// Project returns a published project with up to three other projects of the same category.
func (s *Service) Project(ctx context.Context, slug string) (*ProjectDetail, error) {
	project, err := s.store.Project(ctx, slug)
	if err != nil {
		return nil, err
	}

	if project.MetaDescription == "" {
		project.MetaDescription = project.ShortDescription
	}

	var categoryID *uuid.UUID
	if project.Category != nil {
		categoryID = &project.Category.ID
	}

	related, err := s.store.RelatedProjects(ctx, categoryID, project.ID, relatedProjects)
	if err != nil {
		return nil, fmt.Errorf("failed to get related projects: %w", err)
	}

	if related == nil {
		related = []*domain.Project{}
	}

	return &ProjectDetail{
		Project: project,
		Related: related,
	}, nil
}

type SampleList struct {
	Samples []*domain.Sample `json:"samples"`
	Paging  Paging           `json:"paging"`
}

func (s *Service) Samples(ctx context.Context, page string) (*SampleList, error) {
	total, err := s.store.CountSamples(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count samples: %w", err)
	}

	paging, err := NewPaging(page, SamplesPerPage, total)
	if err != nil {
		return nil, err
	}

	samples := []*domain.Sample{}
	if total > 0 {
		samples, err = s.store.Samples(ctx, paging.PerPage, paging.Offset())
		if err != nil {
			return nil, fmt.Errorf("failed to get samples: %w", err)
		}
	}

	return &SampleList{
		Samples: samples,
		Paging:  paging,
	}, nil
}

func (s *Service) Sample(ctx context.Context, slug string) (*domain.Sample, error) {
	return s.store.Sample(ctx, slug)
}

func (s *Service) Page(ctx context.Context, slug string) (*domain.Page, error) {
	page, err := s.store.Page(ctx, slug)
	if err != nil {
		return nil, err
	}

	if page.MetaDescription == "" {
		page.MetaDescription = page.Title
	}

	return page, nil
}

// Import loads projects from a CSV document and upserts them. Nothing is stored when any row
// is invalid; the error is then an *ImportError.
func (s *Service) Import(ctx context.Context, r io.Reader) (*domain.ImportResult, error) {
	projects, err := ParseProjects(r)
	if err != nil {
		return nil, err
	}

	result, err := s.store.ImportProjects(ctx, projects)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "portfolio imported",
		slog.Int("categories", result.Categories),
		slog.Int("projects", result.Projects),
	)

	return result, nil
}
