package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/google/uuid"
)

const (
	upsertCategorySuffix = `ON CONFLICT (slug) DO UPDATE SET
	name = EXCLUDED.name,
	is_deleted = FALSE,
	deleted_at = NULL,
	updated_at = NOW()
RETURNING id`

	upsertProjectSuffix = `ON CONFLICT (slug) DO UPDATE SET
	title = EXCLUDED.title,
	category_id = EXCLUDED.category_id,
	year = EXCLUDED.year,
	area = EXCLUDED.area,
	description = EXCLUDED.description,
	short_description = EXCLUDED.short_description,
	client_type = EXCLUDED.client_type,
	is_published = EXCLUDED.is_published,
	is_featured = EXCLUDED.is_featured,
	sort_order = EXCLUDED.sort_order,
	meta_description = EXCLUDED.meta_description,
	meta_keywords = EXCLUDED.meta_keywords,
	is_deleted = FALSE,
	deleted_at = NULL,
	updated_at = NOW()
RETURNING id`
)

// ImportProjects upserts categories and projects by slug in one transaction. Characteristics and
// images of an imported project are replaced.
func (r *PortfolioRepository) ImportProjects(ctx context.Context, projects []*domain.ProjectImport) (*domain.ImportResult, error) {
	result := &domain.ImportResult{}

	err := r.tx.WithTransaction(ctx, func(ctx context.Context) error {
		categories := make(map[string]uuid.UUID)

		for _, p := range projects {
			var categoryID *uuid.UUID

			if p.CategorySlug != "" {
				id, ok := categories[p.CategorySlug]
				if !ok {
					var err error
					id, err = r.upsertCategory(ctx, p.CategoryName, p.CategorySlug, len(categories))
					if err != nil {
						return err
					}
					categories[p.CategorySlug] = id
				}
				categoryID = &id
			}

			projectID, err := r.upsertProject(ctx, p, categoryID)
			if err != nil {
				return fmt.Errorf("project %q: %w", p.Slug, err)
			}

			if err := r.replaceCharacteristics(ctx, projectID, p.Characteristics); err != nil {
				return fmt.Errorf("project %q: %w", p.Slug, err)
			}

			if err := r.replaceImages(ctx, projectID, p.Images); err != nil {
				return fmt.Errorf("project %q: %w", p.Slug, err)
			}
		}

		result.Categories = len(categories)
		result.Projects = len(projects)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to import projects: %w", err)
	}

	return result, nil
}

func (r *PortfolioRepository) upsertCategory(ctx context.Context, name, slug string, order int) (uuid.UUID, error) {
	db := extractDB(ctx, r.db)

	sql, args, err := r.qb.
		Insert(TableProjectCategories).
		Columns("id", "name", "slug", "sort_order").
		Values(uuid.New(), name, slug, order).
		Suffix(upsertCategorySuffix).
		ToSql()
	if err != nil {
		return uuid.Nil, createQueryError(err)
	}

	var id uuid.UUID
	if err := db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return uuid.Nil, scanRowError(err)
	}

	return id, nil
}

func (r *PortfolioRepository) upsertProject(ctx context.Context, p *domain.ProjectImport, categoryID *uuid.UUID) (uuid.UUID, error) {
	db := extractDB(ctx, r.db)

	sql, args, err := r.qb.
		Insert(TableProjects).
		Columns(
			"id",
			"title",
			"slug",
			"category_id",
			"year",
			"area",
			"description",
			"short_description",
			"client_type",
			"is_published",
			"is_featured",
			"sort_order",
			"meta_description",
			"meta_keywords",
		).
		Values(
			uuid.New(),
			p.Title,
			p.Slug,
			categoryID,
			p.Year,
			p.Area,
			p.Description,
			p.ShortDescription,
			p.ClientType,
			p.IsPublished,
			p.IsFeatured,
			p.Order,
			p.MetaDescription,
			p.MetaKeywords,
		).
		Suffix(upsertProjectSuffix).
		ToSql()
	if err != nil {
		return uuid.Nil, createQueryError(err)
	}

	var id uuid.UUID
	if err := db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return uuid.Nil, scanRowError(err)
	}

	return id, nil
}

func (r *PortfolioRepository) replaceCharacteristics(ctx context.Context, projectID uuid.UUID, characteristics []domain.ProjectCharacteristic) error {
	db := extractDB(ctx, r.db)

	sql, args, err := r.qb.
		Delete(TableProjectCharacteristics).
		Where(sq.Eq{"project_id": projectID}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	if len(characteristics) == 0 {
		return nil
	}

	insert := r.qb.
		Insert(TableProjectCharacteristics).
		Columns("id", "project_id", "name", "value", "sort_order")

	for _, c := range characteristics {
		insert = insert.Values(uuid.New(), projectID, c.Name, c.Value, c.Order)
	}

	sql, args, err = insert.ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *PortfolioRepository) replaceImages(ctx context.Context, projectID uuid.UUID, images []domain.Image) error {
	db := extractDB(ctx, r.db)

	sql, args, err := r.qb.
		Delete(TableProjectImages).
		Where(sq.Eq{"project_id": projectID}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	if len(images) == 0 {
		return nil
	}

	insert := r.qb.
		Insert(TableProjectImages).
		Columns("id", "project_id", "image", "title", "description", "sort_order", "is_cover")

	for _, img := range images {
		insert = insert.Values(uuid.New(), projectID, img.Path, img.Title, img.Description, img.Order, img.IsCover)
	}

	sql, args, err = insert.ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}
