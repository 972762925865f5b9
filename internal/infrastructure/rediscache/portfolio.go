package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const portfolioVersionKey = "portfolio:version"

type PortfolioStore interface {
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

// Portfolio caches catalog reads of the wrapped store. Like Leads it keys entries by a version
// number, bumped after every import.
type Portfolio struct {
	log    *slog.Logger
	client *redis.Client
	store  PortfolioStore
	ttl    time.Duration
}

func NewPortfolio(log *slog.Logger, client *redis.Client, store PortfolioStore, ttl time.Duration) *Portfolio {
	return &Portfolio{
		log:    log,
		client: client,
		store:  store,
		ttl:    ttl,
	}
}

func (c *Portfolio) Categories(ctx context.Context) ([]*domain.ProjectCategory, error) {
	return remember(ctx, c, "categories", func() ([]*domain.ProjectCategory, error) {
		return c.store.Categories(ctx)
	})
}

func (c *Portfolio) Category(ctx context.Context, slug string) (*domain.ProjectCategory, error) {
	return remember(ctx, c, "category:"+slug, func() (*domain.ProjectCategory, error) {
		return c.store.Category(ctx, slug)
	})
}

func (c *Portfolio) CountProjects(ctx context.Context, categorySlug string) (int, error) {
	return remember(ctx, c, "projects:count:"+categorySlug, func() (int, error) {
		return c.store.CountProjects(ctx, categorySlug)
	})
}

func (c *Portfolio) Projects(ctx context.Context, categorySlug string, limit, offset int) ([]*domain.Project, error) {
	key := fmt.Sprintf("projects:%s:%d:%d", categorySlug, limit, offset)
	return remember(ctx, c, key, func() ([]*domain.Project, error) {
		return c.store.Projects(ctx, categorySlug, limit, offset)
	})
}

func (c *Portfolio) Project(ctx context.Context, slug string) (*domain.Project, error) {
	return remember(ctx, c, "project:"+slug, func() (*domain.Project, error) {
		return c.store.Project(ctx, slug)
	})
}

func (c *Portfolio) RelatedProjects(ctx context.Context, categoryID *uuid.UUID, exclude uuid.UUID, limit int) ([]*domain.Project, error) {
	category := "none"
	if categoryID != nil {
		category = categoryID.String()
	}

	key := fmt.Sprintf("related:%s:%s:%d", category, exclude, limit)
	return remember(ctx, c, key, func() ([]*domain.Project, error) {
		return c.store.RelatedProjects(ctx, categoryID, exclude, limit)
	})
}

func (c *Portfolio) CountSamples(ctx context.Context) (int, error) {
	return remember(ctx, c, "samples:count", func() (int, error) {
		return c.store.CountSamples(ctx)
	})
}

func (c *Portfolio) Samples(ctx context.Context, limit, offset int) ([]*domain.Sample, error) {
	key := fmt.Sprintf("samples:%d:%d", limit, offset)
	return remember(ctx, c, key, func() ([]*domain.Sample, error) {
		return c.store.Samples(ctx, limit, offset)
	})
}

func (c *Portfolio) Sample(ctx context.Context, slug string) (*domain.Sample, error) {
	return remember(ctx, c, "sample:"+slug, func() (*domain.Sample, error) {
		return c.store.Sample(ctx, slug)
	})
}

func (c *Portfolio) Page(ctx context.Context, slug string) (*domain.Page, error) {
	return remember(ctx, c, "page:"+slug, func() (*domain.Page, error) {
		return c.store.Page(ctx, slug)
	})
}

func (c *Portfolio) ImportProjects(ctx context.Context, projects []*domain.ProjectImport) (*domain.ImportResult, error) {
	result, err := c.store.ImportProjects(ctx, projects)
	if err != nil {
		return nil, err
	}

	if err := c.Invalidate(ctx); err != nil {
		c.log.WarnContext(ctx, "failed to invalidate portfolio cache", slog.String("err", err.Error()))
	}

	return result, nil
}

// Invalidate drops every cached catalog entry.
func (c *Portfolio) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, portfolioVersionKey).Err(); err != nil {
		return fmt.Errorf("failed to bump portfolio cache version: %w", err)
	}

	return nil
}

// remember serves key from the cache or loads and stores it. Errors of load are never cached.
func remember[T any](ctx context.Context, c *Portfolio, key string, load func() (T, error)) (T, error) {
	version, err := c.client.Get(ctx, portfolioVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.log.WarnContext(ctx, "failed to read portfolio cache version", slog.String("err", err.Error()))
		return load()
	}

	key = fmt.Sprintf("portfolio:v%d:%s", version, key)

	cached, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var value T
		if err := json.Unmarshal(cached, &value); err == nil {
			return value, nil
		}
		c.log.WarnContext(ctx, "failed to decode cached portfolio entry", slog.String("key", key))

	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "failed to read portfolio cache", slog.String("err", err.Error()))
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return value, nil
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "failed to write portfolio cache", slog.String("err", err.Error()))
	}

	return value, nil
}
