package leads

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/jszwec/csvutil"
)

const (
	exportBatch      = 500
	exportDateLayout = "2006-01-02 15:04:05"
)

var ErrDigestUnavailable = errors.New("pdf digest is not configured")

type LeadsReader interface {
	Leads(ctx context.Context, limit, offset int) ([]*domain.Lead, int, error)
}

type DigestRenderer interface {
	Render(generatedAt time.Time, leads []*domain.Lead) ([]byte, error)
}

// Exporter dumps the whole lead feed, newest first. renderer may be nil, then PDF reports
// ErrDigestUnavailable.
type Exporter struct {
	reader   LeadsReader
	renderer DigestRenderer
	location *time.Location
}

func NewExporter(reader LeadsReader, renderer DigestRenderer, location *time.Location) *Exporter {
	return &Exporter{
		reader:   reader,
		renderer: renderer,
		location: location,
	}
}

type leadRecord struct {
	ID          string `csv:"id"`
	CreatedAt   string `csv:"created_at"`
	Name        string `csv:"name"`
	Phone       string `csv:"phone"`
	Description string `csv:"description,omitempty"`
	FileName    string `csv:"file_name,omitempty"`
	FileSize    int64  `csv:"file_size,omitempty"`
}

// CSV writes the feed as UTF-8 with a byte order mark so spreadsheet editors detect the encoding.
func (e *Exporter) CSV(ctx context.Context, w io.Writer) error {
	if _, err := io.WriteString(w, "\xef\xbb\xbf"); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	written := 0
	err := e.each(ctx, func(batch []*domain.Lead) error {
		for _, lead := range batch {
			if err := enc.Encode(e.record(lead)); err != nil {
				return fmt.Errorf("failed to encode lead %s: %w", lead.ID, err)
			}
			written++
		}
		return nil
	})
	if err != nil {
		return err
	}

	if written == 0 {
		if err := enc.EncodeHeader(leadRecord{}); err != nil {
			return fmt.Errorf("failed to encode csv header: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	return nil
}

// PDF renders a printable digest of the feed.
func (e *Exporter) PDF(ctx context.Context) ([]byte, error) {
	if e.renderer == nil {
		return nil, ErrDigestUnavailable
	}

	var leads []*domain.Lead
	err := e.each(ctx, func(batch []*domain.Lead) error {
		leads = append(leads, batch...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	doc, err := e.renderer.Render(time.Now().In(e.location), leads)
	if err != nil {
		return nil, fmt.Errorf("failed to render digest: %w", err)
	}

	return doc, nil
}

func (e *Exporter) each(ctx context.Context, fn func(batch []*domain.Lead) error) error {
	for offset := 0; ; {
		batch, total, err := e.reader.Leads(ctx, exportBatch, offset)
		if err != nil {
			return fmt.Errorf("failed to read leads: %w", err)
		}

		if err := fn(batch); err != nil {
			return err
		}

		offset += len(batch)
		if len(batch) == 0 || offset >= total {
			return nil
		}
	}
}

func (e *Exporter) record(lead *domain.Lead) leadRecord {
	return leadRecord{
		ID:          lead.ID.String(),
		CreatedAt:   lead.CreatedAt.In(e.location).Format(exportDateLayout),
		Name:        escapeFormula(lead.Name),
		Phone:       lead.Phone,
		Description: escapeFormula(lead.Description),
		FileName:    escapeFormula(lead.FileName),
		FileSize:    lead.FileSize,
	}
}

// escapeFormula keeps spreadsheet editors from evaluating visitor input as a formula.
func escapeFormula(s string) string {
	if s != "" && strings.ContainsRune("=+-@", rune(s[0])) {
		return "'" + s
	}

	return s
}
