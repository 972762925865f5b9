package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/redis/go-redis/v9"
)

const leadsVersionKey = "leads:version"

type LeadsStore interface {
	CreateLead(ctx context.Context, lead *domain.NewLead) (*domain.Lead, error)
	Leads(ctx context.Context, limit, offset int) ([]*domain.Lead, int, error)
}

// Leads caches feed pages of the wrapped store. Pages live under a version number that every
// created lead bumps, so a write invalidates all cached pages at once.
type Leads struct {
	log    *slog.Logger
	client *redis.Client
	store  LeadsStore
	ttl    time.Duration
}

func NewLeads(log *slog.Logger, client *redis.Client, store LeadsStore, ttl time.Duration) *Leads {
	return &Leads{
		log:    log,
		client: client,
		store:  store,
		ttl:    ttl,
	}
}

func (c *Leads) CreateLead(ctx context.Context, newLead *domain.NewLead) (*domain.Lead, error) {
	lead, err := c.store.CreateLead(ctx, newLead)
	if err != nil {
		return nil, err
	}

	if err := c.Invalidate(ctx); err != nil {
		c.log.WarnContext(ctx, "failed to invalidate leads cache",
			slog.String("lead_id", lead.ID.String()),
			slog.String("err", err.Error()),
		)
	}

	return lead, nil
}

type page struct {
	Leads []*domain.Lead `json:"leads"`
	Total int            `json:"total"`
}

func (c *Leads) Leads(ctx context.Context, limit, offset int) ([]*domain.Lead, int, error) {
	key, err := c.pageKey(ctx, limit, offset)
	if err != nil {
		c.log.WarnContext(ctx, "failed to read leads cache version", slog.String("err", err.Error()))
		return c.store.Leads(ctx, limit, offset)
	}

	cached, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p page
		if err := json.Unmarshal(cached, &p); err == nil {
			return p.Leads, p.Total, nil
		}
		c.log.WarnContext(ctx, "failed to decode cached leads page", slog.String("key", key))

	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "failed to read leads cache", slog.String("err", err.Error()))
	}

	leads, total, err := c.store.Leads(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	data, err := json.Marshal(page{Leads: leads, Total: total})
	if err != nil {
		return leads, total, nil
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "failed to write leads cache", slog.String("err", err.Error()))
	}

	return leads, total, nil
}

// Invalidate drops every cached feed page.
func (c *Leads) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, leadsVersionKey).Err(); err != nil {
		return fmt.Errorf("failed to bump leads cache version: %w", err)
	}

	return nil
}

func (c *Leads) pageKey(ctx context.Context, limit, offset int) (string, error) {
	version, err := c.client.Get(ctx, leadsVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}

	return fmt.Sprintf("leads:v%d:%d:%d", version, limit, offset), nil
}
