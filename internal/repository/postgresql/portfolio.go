package postgresql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	TableProjectCategories      = "project_categories"
	TableProjects               = "projects"
	TableProjectImages          = "project_images"
	TableProjectCharacteristics = "project_characteristics"
)

type PortfolioRepository struct {
	db DBTX
	qb sq.StatementBuilderType
	tx Transactor
}

func NewPortfolioRepository(db DBTX, tx Transactor) *PortfolioRepository {
	return &PortfolioRepository{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		tx: tx,
	}
}

type projectRow struct {
	ID                  uuid.UUID  `db:"id"`
	Title               string     `db:"title"`
	Slug                string     `db:"slug"`
	CategoryID          *uuid.UUID `db:"category_id"`
	CategoryName        *string    `db:"category_name"`
	CategorySlug        *string    `db:"category_slug"`
	CategoryDescription *string    `db:"category_description"`
	CategoryOrder       *int       `db:"category_order"`
	Year                int        `db:"year"`
	Area                *float64   `db:"area"`
	Description         string     `db:"description"`
	ShortDescription    string     `db:"short_description"`
	ClientType          string     `db:"client_type"`
	IsFeatured          bool       `db:"is_featured"`
	Order               int        `db:"sort_order"`
	MetaDescription     string     `db:"meta_description"`
	MetaKeywords        string     `db:"meta_keywords"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

func (r *projectRow) toDomain() *domain.Project {
	project := &domain.Project{
		ID:               r.ID,
		Title:            r.Title,
		Slug:             r.Slug,
		Year:             r.Year,
		Area:             r.Area,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		ClientType:       r.ClientType,
		IsFeatured:       r.IsFeatured,
		Order:            r.Order,
		MetaDescription:  r.MetaDescription,
		MetaKeywords:     r.MetaKeywords,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}

	if r.CategoryID != nil {
		project.Category = &domain.ProjectCategory{
			ID:          *r.CategoryID,
			Name:        deref(r.CategoryName),
			Slug:        deref(r.CategorySlug),
			Description: deref(r.CategoryDescription),
			Order:       deref(r.CategoryOrder),
		}
	}

	return project
}

type imageRow struct {
	OwnerID     uuid.UUID `db:"owner_id"`
	Path        string    `db:"image"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Order       int       `db:"sort_order"`
	IsCover     bool      `db:"is_cover"`
}

// Categories returns the categories shown in the catalog filter.
func (r *PortfolioRepository) Categories(ctx context.Context) ([]*domain.ProjectCategory, error) {
	db := extractDB(ctx, r.db)

	sql, args, err := r.qb.
		Select("id", "name", "slug", "description", "sort_order").
		From(TableProjectCategories).
		Where(sq.Eq{"is_deleted": false}).
		Where(sq.NotEq{"slug": ""}).
		OrderBy("sort_order", "name").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	categories, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.ProjectCategory])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return categories, nil
}

func (r *PortfolioRepository) Category(ctx context.Context, slug string) (*domain.ProjectCategory, error) {
	db := extractDB(ctx, r.db)

	sql, args, err := r.qb.
		Select("id", "name", "slug", "description", "sort_order").
		From(TableProjectCategories).
		Where(sq.Eq{"slug": slug, "is_deleted": false}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	category, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.ProjectCategory])
	if err != nil {
		return nil, collectOneError(err, fmt.Sprintf("category %q", slug), domain.ErrNotFound)
	}

	return category, nil
}

func (r *PortfolioRepository) CountProjects(ctx context.Context, categorySlug string) (int, error) {
	db := extractDB(ctx, r.db)

	sql, args, err := r.listed(r.qb.Select("COUNT(*)"), categorySlug).ToSql()
	if err != nil {
		return -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return -1, scanRowError(err)
	}

	return total, nil
}

// Projects returns a page of published projects, featured first, each with its cover image.
func (r *PortfolioRepository) Projects(ctx context.Context, categorySlug string, limit, offset int) ([]*domain.Project, error) {
	q := r.listed(r.selectProjects(), categorySlug).
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.collectProjects(ctx, q)
}

func (r *PortfolioRepository) RelatedProjects(ctx context.Context, categoryID *uuid.UUID, exclude uuid.UUID, limit int) ([]*domain.Project, error) {
	var sameCategory sq.Eq
	if categoryID != nil {
		sameCategory = sq.Eq{"p.category_id": *categoryID}
	} else {
		sameCategory = sq.Eq{"p.category_id": nil}
	}

	q := r.listed(r.selectProjects(), "").
		Where(sameCategory).
		Where(sq.NotEq{"p.id": exclude}).
		Limit(uint64(limit))

	return r.collectProjects(ctx, q)
}

// Project returns a published project with its gallery and characteristics.
func (r *PortfolioRepository) Project(ctx context.Context, slug string) (*domain.Project, error) {
	db := extractDB(ctx, r.db)

	sql, args, err := r.fromProjects(r.selectProjects()).
		Where(sq.Eq{"p.slug": slug, "p.is_published": true, "p.is_deleted": false}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	row, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[projectRow])
	if err != nil {
		return nil, collectOneError(err, fmt.Sprintf("project %q", slug), domain.ErrNotFound)
	}

	project := row.toDomain()

	images, err := r.images(ctx, TableProjectImages, "project_id", project.ID)
	if err != nil {
		return nil, err
	}
	project.Images = images[project.ID]
	project.Cover = domain.CoverImage(project.Images)

	project.Characteristics, err = r.characteristics(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	return project, nil
}

func (r *PortfolioRepository) selectProjects() sq.SelectBuilder {
	return r.qb.
		Select(
			"p.id",
			"p.title",
			"p.slug",
			"c.id AS category_id",
			"c.name AS category_name",
			"c.slug AS category_slug",
			"c.description AS category_description",
			"c.sort_order AS category_order",
			"p.year",
			"p.area::float8 AS area",
			"p.description",
			"p.short_description",
			"p.client_type",
			"p.is_featured",
			"p.sort_order",
			"p.meta_description",
			"p.meta_keywords",
			"p.created_at",
			"p.updated_at",
		).
		OrderBy("p.is_featured DESC", "p.sort_order", "p.year DESC", "p.title")
}

func (r *PortfolioRepository) fromProjects(b sq.SelectBuilder) sq.SelectBuilder {
	return b.
		From(TableProjects + " p").
		LeftJoin(TableProjectCategories + " c ON c.id = p.category_id")
}

// listed narrows b to the projects a visitor may browse: published, not deleted, reachable by slug.
func (r *PortfolioRepository) listed(b sq.SelectBuilder, categorySlug string) sq.SelectBuilder {
	b = r.fromProjects(b).
		Where(sq.Eq{"p.is_published": true, "p.is_deleted": false}).
		Where(sq.NotEq{"p.slug": ""})

	if categorySlug != "" {
		b = b.Where(sq.Eq{"c.slug": categorySlug})
	}

	return b
}

func (r *PortfolioRepository) collectProjects(ctx context.Context, q sq.SelectBuilder) ([]*domain.Project, error) {
	db := extractDB(ctx, r.db)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	projectRows, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[projectRow])
	if err != nil {
		return nil, collectRowsError(err)
	}

	projects := make([]*domain.Project, 0, len(projectRows))
	ids := make([]uuid.UUID, 0, len(projectRows))
	for _, row := range projectRows {
		projects = append(projects, row.toDomain())
		ids = append(ids, row.ID)
	}

	if len(ids) == 0 {
		return projects, nil
	}

	images, err := r.images(ctx, TableProjectImages, "project_id", ids...)
	if err != nil {
		return nil, err
	}

	for _, project := range projects {
		project.Cover = domain.CoverImage(images[project.ID])
	}

	return projects, nil
}

// images loads the galleries of the given owners from table, keyed by owner id.
func (r *PortfolioRepository) images(ctx context.Context, table, ownerColumn string, ownerIDs ...uuid.UUID) (map[uuid.UUID][]domain.Image, error) {
	db := extractDB(ctx, r.db)

	columns := []string{ownerColumn + " AS owner_id", "image", "title", "sort_order", "is_cover"}
	if table == TableProjectImages {
		columns = append(columns, "description")
	}

	sql, args, err := r.qb.
		Select(columns...).
		From(table).
		Where(sq.Eq{ownerColumn: ownerIDs}).
		OrderBy(ownerColumn, "sort_order", "created_at").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	imageRows, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[imageRow])
	if err != nil {
		return nil, collectRowsError(err)
	}

	images := make(map[uuid.UUID][]domain.Image, len(ownerIDs))
	for _, row := range imageRows {
		images[row.OwnerID] = append(images[row.OwnerID], domain.Image{
			Path:        row.Path,
			Title:       row.Title,
			Description: row.Description,
			Order:       row.Order,
			IsCover:     row.IsCover,
		})
	}

	return images, nil
}

func (r *PortfolioRepository) characteristics(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectCharacteristic, error) {
	db := extractDB(ctx, r.db)

	sql, args, err := r.qb.
		Select("name", "value", "sort_order").
		From(TableProjectCharacteristics).
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("sort_order", "name").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	characteristics, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[domain.ProjectCharacteristic])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return characteristics, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}

	return *v
}
