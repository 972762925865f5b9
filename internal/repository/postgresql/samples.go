package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	TableSamples      = "samples"
	TableSampleImages = "sample_images"
)

var sampleColumns = []string{
	"id",
	"title",
	"slug",
	"year",
	"area::float8 AS area",
	"client_type",
	"description",
	"price_info",
	"pdf_file",
	"sort_order",
	"meta_description",
	"meta_keywords",
}

func (r *PortfolioRepository) CountSamples(ctx context.Context) (int, error) {
	db := extractDB(ctx, r.db)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableSamples).
		Where(sq.Eq{"is_published": true, "is_deleted": false}).
		ToSql()
	if err != nil {
		return -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return -1, scanRowError(err)
	}

	return total, nil
}

func (r *PortfolioRepository) Samples(ctx context.Context, limit, offset int) ([]*domain.Sample, error) {
	db := extractDB(ctx, r.db)

	sql, args, err := r.qb.
		Select(sampleColumns...).
		From(TableSamples).
		Where(sq.Eq{"is_published": true, "is_deleted": false}).
		OrderBy("sort_order", "title").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	samples, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Sample])
	if err != nil {
		return nil, collectRowsError(err)
	}

	if len(samples) == 0 {
		return samples, nil
	}

	ids := make([]uuid.UUID, 0, len(samples))
	for _, sample := range samples {
		ids = append(ids, sample.ID)
	}

	images, err := r.images(ctx, TableSampleImages, "sample_id", ids...)
	if err != nil {
		return nil, err
	}

	for _, sample := range samples {
		sample.Cover = domain.CoverImage(images[sample.ID])
	}

	return samples, nil
}

func (r *PortfolioRepository) Sample(ctx context.Context, slug string) (*domain.Sample, error) {
	db := extractDB(ctx, r.db)

	sql, args, err := r.qb.
		Select(sampleColumns...).
		From(TableSamples).
		Where(sq.Eq{"slug": slug, "is_published": true, "is_deleted": false}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	sample, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Sample])
	if err != nil {
		return nil, collectOneError(err, fmt.Sprintf("sample %q", slug), domain.ErrNotFound)
	}

	images, err := r.images(ctx, TableSampleImages, "sample_id", sample.ID)
	if err != nil {
		return nil, err
	}
	sample.Images = images[sample.ID]
	sample.Cover = domain.CoverImage(sample.Images)

	return sample, nil
}
