package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const TableLeads = "leads"

type LeadsRepository struct {
	db    DBTX
	qb    sq.StatementBuilderType
	tx    Transactor
	files *LeadFilesRepository
}

func NewLeadsRepository(db DBTX, tx Transactor, files *LeadFilesRepository) *LeadsRepository {
	return &LeadsRepository{
		db:    db,
		qb:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		tx:    tx,
		files: files,
	}
}

// CreateLead stores the lead and its attachment in one transaction. Either both rows exist
// afterwards or neither does.
func (r *LeadsRepository) CreateLead(ctx context.Context, newLead *domain.NewLead) (*domain.Lead, error) {
	lead := &domain.Lead{
		ID:          uuid.New(),
		Name:        newLead.Name,
		Phone:       newLead.Phone,
		Description: newLead.Description,
		File:        newLead.File,
	}

	if newLead.File != nil {
		lead.FileName = newLead.File.Name
		lead.FileSize = newLead.File.Size
	}

	err := r.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := r.insertLead(ctx, lead); err != nil {
			return err
		}

		if lead.File == nil {
			return nil
		}

		return r.files.SaveLeadFile(ctx, lead.ID, lead.File)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save lead: %w", err)
	}

	return lead, nil
}

func (r *LeadsRepository) insertLead(ctx context.Context, lead *domain.Lead) error {
	db := extractDB(ctx, r.db)

	sql, args, err := r.qb.
		Insert(TableLeads).
		Columns(
			"id",
			"name",
			"phone",
			"description",
			"file_name",
			"file_size",
		).
		Values(
			lead.ID,
			lead.Name,
			lead.Phone,
			nullIfEmpty(lead.Description),
			nullIfEmpty(lead.FileName),
			nullIfZero(lead.FileSize),
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if err := db.QueryRow(ctx, sql, args...).Scan(&lead.CreatedAt); err != nil {
		return scanRowError(err)
	}

	return nil
}

// Leads returns a page of stored leads, newest first, and the total number of leads.
func (r *LeadsRepository) Leads(ctx context.Context, limit, offset int) ([]*domain.Lead, int, error) {
	db := extractDB(ctx, r.db)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableLeads).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(
			"id",
			"name",
			"phone",
			"COALESCE(description, '') AS description",
			"COALESCE(file_name, '') AS file_name",
			"COALESCE(file_size, 0) AS file_size",
			"created_at",
		).
		From(TableLeads).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	leads, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Lead])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return leads, total, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func nullIfZero(n int64) *int64 {
	if n == 0 {
		return nil
	}

	return &n
}
