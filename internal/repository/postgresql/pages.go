package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/jackc/pgx/v5"
)

const TablePages = "pages"

func (r *PortfolioRepository) Page(ctx context.Context, slug string) (*domain.Page, error) {
	db := extractDB(ctx, r.db)

	sql, args, err := r.qb.
		Select(
			"id",
			"title",
			"slug",
			"content",
			"meta_description",
			"meta_keywords",
			"sort_order",
			"updated_at",
		).
		From(TablePages).
		Where(sq.Eq{"slug": slug, "is_published": true, "is_deleted": false}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	page, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Page])
	if err != nil {
		return nil, collectOneError(err, fmt.Sprintf("page %q", slug), domain.ErrNotFound)
	}

	return page, nil
}
