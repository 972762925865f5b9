package portfolio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/jszwec/csvutil"
)

const (
	metaDescriptionLength  = 160
	maxCharacteristicName  = 100
	maxCharacteristicValue = 200

	utf8BOM = "\xef\xbb\xbf"
)

var (
	slugPattern     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	requiredColumns = []string{"title", "slug", "year"}
)

// ImportError points at the first offending line of an import document. Line 1 is the header.
type ImportError struct {
	Line    int    `json:"line"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ImportError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}

	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Field, e.Message)
}

type projectRecord struct {
	Category         string   `csv:"category"          validate:"required_with=CategorySlug,max=100"`
	CategorySlug     string   `csv:"category_slug"     validate:"omitempty,max=100,slug"`
	Title            string   `csv:"title"             validate:"required,max=200"`
	Slug             string   `csv:"slug"              validate:"required,max=200,slug"`
	Year             int      `csv:"year,omitempty"    validate:"min=1900,max=2100"`
	Area             *float64 `csv:"area,omitempty"    validate:"omitempty,gt=0"`
	Description      string   `csv:"description"`
	ShortDescription string   `csv:"short_description" validate:"max=500"`
	ClientType       string   `csv:"client_type"       validate:"max=200"`
	IsPublished      bool     `csv:"is_published,omitempty"`
	IsFeatured       bool     `csv:"is_featured,omitempty"`
	Order            int      `csv:"order,omitempty"`
	MetaDescription  string   `csv:"meta_description"  validate:"max=160"`
	MetaKeywords     string   `csv:"meta_keywords"     validate:"max=255"`
	Characteristics  string   `csv:"characteristics"`
	Images           string   `csv:"images"`
}

type recordValidator struct {
	validate *validator.Validate
}

func newRecordValidator() *recordValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("csv"), ",")
		return name
	})

	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	return &recordValidator{validate: validate}
}

func (v *recordValidator) check(line int, rec *projectRecord) error {
	err := v.validate.Struct(rec)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate record: %w", err)
	}

	fe := fieldErrs[0]

	return &ImportError{Line: line, Field: fe.Field(), Message: recordFieldError(fe)}
}

func recordFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_with":
		return "value is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "slug":
		return "must contain only latin letters, digits, hyphens and underscores"
	default:
		return "invalid value"
	}
}

// ParseProjects reads a comma separated import document with a header row. Characteristics are
// written as "Name: Value; Name: Value" and images as "path; path" with the first one as cover.
func ParseProjects(r io.Reader) ([]*domain.ProjectImport, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.TrimLeadingSpace = true

	dec, err := csvutil.NewDecoder(reader)
	if errors.Is(err, io.EOF) {
		return nil, &ImportError{Line: 1, Message: "document is empty"}
	}
	if err != nil {
		return nil, &ImportError{Line: 1, Message: err.Error()}
	}

	header := dec.Header()

	for _, column := range requiredColumns {
		if !slices.Contains(header, column) {
			return nil, &ImportError{Line: 1, Field: column, Message: "column is missing"}
		}
	}

	v := newRecordValidator()
	seen := make(map[string]int)

	var projects []*domain.ProjectImport
	for {
		var rec projectRecord

		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			break
		}

		line, _ := reader.FieldPos(0)

		if err != nil {
			return nil, &ImportError{Line: line, Message: decodeMessage(err)}
		}

		if err := v.check(line, &rec); err != nil {
			return nil, err
		}

		if first, ok := seen[rec.Slug]; ok {
			return nil, &ImportError{
				Line:    line,
				Field:   "slug",
				Message: fmt.Sprintf("duplicates line %d", first),
			}
		}
		seen[rec.Slug] = line

		project, err := rec.toDomain(line, len(projects))
		if err != nil {
			return nil, err
		}

		projects = append(projects, project)
	}

	if len(projects) == 0 {
		return nil, &ImportError{Line: 1, Message: "document has no projects"}
	}

	return projects, nil
}

// skipBOM drops the byte order mark spreadsheet editors put in front of UTF-8 exports.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && string(prefix) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	return br
}

func decodeMessage(err error) string {
	var typeErr *csvutil.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("cannot use %q as %s", typeErr.Value, typeErr.Type)
	}

	return err.Error()
}

func (rec *projectRecord) toDomain(line, index int) (*domain.ProjectImport, error) {
	characteristics, err := parseCharacteristics(rec.Characteristics)
	if err != nil {
		return nil, &ImportError{Line: line, Field: "characteristics", Message: err.Error()}
	}

	order := rec.Order
	if order == 0 {
		order = index
	}

	meta := rec.MetaDescription
	if meta == "" {
		meta = truncate(rec.ShortDescription, metaDescriptionLength)
	}

	return &domain.ProjectImport{
		CategoryName:     rec.Category,
		CategorySlug:     rec.CategorySlug,
		Title:            rec.Title,
		Slug:             rec.Slug,
		Year:             rec.Year,
		Area:             rec.Area,
		Description:      rec.Description,
		ShortDescription: rec.ShortDescription,
		ClientType:       rec.ClientType,
		IsPublished:      rec.IsPublished,
		IsFeatured:       rec.IsFeatured,
		Order:            order,
		MetaDescription:  meta,
		MetaKeywords:     rec.MetaKeywords,
		Characteristics:  characteristics,
		Images:           parseImages(rec.Images),
	}, nil
}

func parseCharacteristics(raw string) ([]domain.ProjectCharacteristic, error) {
	var characteristics []domain.ProjectCharacteristic

	for item := range strings.SplitSeq(raw, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		name, value, ok := strings.Cut(item, ":")
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if !ok || name == "" || value == "" {
			return nil, fmt.Errorf("%q must look like \"Name: Value\"", item)
		}

		if utf8.RuneCountInString(name) > maxCharacteristicName || utf8.RuneCountInString(value) > maxCharacteristicValue {
			return nil, fmt.Errorf("%q is longer than %d/%d characters", item, maxCharacteristicName, maxCharacteristicValue)
		}

		characteristics = append(characteristics, domain.ProjectCharacteristic{
			Name:  name,
			Value: value,
			Order: len(characteristics),
		})
	}

	return characteristics, nil
}

func parseImages(raw string) []domain.Image {
	var images []domain.Image

	for path := range strings.SplitSeq(raw, ";") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}

		images = append(images, domain.Image{
			Path:    path,
			Order:   len(images),
			IsCover: len(images) == 0,
		})
	}

	return images
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
