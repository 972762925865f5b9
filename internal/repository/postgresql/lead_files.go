package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/google/uuid"
)

const TableLeadFiles = "lead_files"

type LeadFilesRepository struct {
	db   DBTX
	qb   sq.StatementBuilderType
}

func NewLeadFilesRepository(db DBTX) *LeadFilesRepository {
	return &LeadFilesRepository{
		db:   db,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *LeadFilesRepository) SaveLeadFile(ctx context.Context, leadID uuid.UUID, file *domain.Attachment) error {
	db := extractDB(ctx, r.db)

	sql, args, err := r.qb.
		Insert(TableLeadFiles).
		Columns(
			"lead_id",
			"name",
			"content_type",
			"size",
			"content",
		).
		Values(
			leadID,
			file.Name,
			file.ContentType,
			file.Size,
			file.Content,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

// LeadFile returns the attachment stored with the lead or domain.ErrFileNotFound.
func (r *LeadFilesRepository) LeadFile(ctx context.Context, leadID uuid.UUID) (*domain.Attachment, error) {
	db := extractDB(ctx, r.db)

	sql, args, err := r.qb.
		Select(
			"name",
			"content_type",
			"size",
			"content",
		).
		From(TableLeadFiles).
		Where(sq.Eq{"lead_id": leadID}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	var file domain.Attachment
	err = db.QueryRow(ctx, sql, args...).Scan(&file.Name, &file.ContentType, &file.Size, &file.Content)
	if err != nil {
		return nil, scanOneError(err, "lead "+leadID.String(), domain.ErrFileNotFound)
	}

	return &file, nil
}
