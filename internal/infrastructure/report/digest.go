package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
)

const (
	fontFamily = "digest"

	dateLayout        = "02.01.2006 15:04"
	descriptionLength = 120
)

// Digest renders the lead feed as an A4 table. Built-in PDF fonts cover Latin-1 only, so
// Cyrillic text needs a TrueType font file.
type Digest struct {
	location *time.Location
	fonts    []*entity.CustomFont
}

// NewDigest loads fontFile for both regular and bold text. An empty fontFile keeps the
// built-in font.
func NewDigest(location *time.Location, fontFile string) (*Digest, error) {
	d := &Digest{location: location}

	if fontFile == "" {
		return d, nil
	}

	fonts, err := repository.New().
		AddUTF8Font(fontFamily, fontstyle.Normal, fontFile).
		AddUTF8Font(fontFamily, fontstyle.Bold, fontFile).
		Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", fontFile, err)
	}

	d.fonts = fonts

	return d, nil
}

func (d *Digest) Render(generatedAt time.Time, leads []*domain.Lead) ([]byte, error) {
	m := maroto.New(d.config())

	m.AddRows(
		text.NewRow(12, "Заявки с сайта", props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}),
		text.NewRow(8, fmt.Sprintf("Сформировано %s, всего: %d", generatedAt.In(d.location).Format(dateLayout), len(leads)),
			props.Text{Size: 9, Align: align.Center}),
	)

	header := props.Text{Size: 9, Style: fontstyle.Bold, Top: 1}
	m.AddRow(8,
		text.NewCol(2, "Дата", header),
		text.NewCol(3, "Имя", header),
		text.NewCol(2, "Телефон", header),
		text.NewCol(3, "Описание", header),
		text.NewCol(2, "Файл", header),
	)

	if len(leads) == 0 {
		m.AddRows(text.NewRow(8, "Заявок нет.", props.Text{Size: 9, Align: align.Center}))
	}

	cell := props.Text{Size: 8, Top: 1}
	for _, lead := range leads {
		m.AddRow(10,
			text.NewCol(2, lead.CreatedAt.In(d.location).Format(dateLayout), cell),
			text.NewCol(3, lead.Name, cell),
			text.NewCol(2, lead.Phone, cell),
			text.NewCol(3, shorten(lead.Description, descriptionLength), cell),
			text.NewCol(2, fileCell(lead), cell),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func (d *Digest) config() *entity.Config {
	builder := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(12).
		WithRightMargin(10)

	if d.fonts != nil {
		builder = builder.
			WithCustomFonts(d.fonts).
			WithDefaultFont(&props.Font{Family: fontFamily})
	}

	return builder.Build()
}

func fileCell(lead *domain.Lead) string {
	if !lead.HasFile() {
		return "-"
	}

	return lead.FileName + " (" + strconv.FormatInt(lead.FileSize/1024, 10) + " КБ)"
}

func shorten(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n]) + "…"
}
