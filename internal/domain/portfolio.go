package domain

import (
	"time"

	"github.com/google/uuid"
)

type ProjectCategory struct {
	ID          uuid.UUID `db:"id"          json:"id"`
	Name        string    `db:"name"        json:"name"`
	Slug        string    `db:"slug"        json:"slug"`
	Description string    `db:"description" json:"description,omitempty"`
	Order       int       `db:"sort_order"  json:"order"`
}

type Project struct {
	ID               uuid.UUID        `json:"id"`
	Title            string           `json:"title"`
	Slug             string           `json:"slug"`
	Category         *ProjectCategory `json:"category"`
	Year             int              `json:"year"`
	Area             *float64         `json:"area,omitempty"`
	Description      string           `json:"description"`
	ShortDescription string           `json:"short_description,omitempty"`
	ClientType       string           `json:"client_type,omitempty"`
	IsFeatured       bool             `json:"is_featured"`
	Order            int              `json:"order"`
	MetaDescription  string           `json:"meta_description,omitempty"`
	MetaKeywords     string           `json:"meta_keywords,omitempty"`
	Cover            string           `json:"cover,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`

	Images          []Image                 `json:"images,omitempty"`
	Characteristics []ProjectCharacteristic `json:"characteristics,omitempty"`
}

// Image is a gallery picture. Path is relative to the media root.
type Image struct {
	Path        string `db:"image"       json:"path"`
	Title       string `db:"title"       json:"title,omitempty"`
	Description string `db:"description" json:"description,omitempty"`
	Order       int    `db:"sort_order"  json:"order"`
	IsCover     bool   `db:"is_cover"    json:"is_cover"`
}

// CoverImage picks the image flagged as cover, falling back to the first one.
func CoverImage(images []Image) string {
	for _, img := range images {
		if img.IsCover {
			return img.Path
		}
	}

	if len(images) > 0 {
		return images[0].Path
	}

	return ""
}

type ProjectCharacteristic struct {
	Name  string `db:"name"       json:"name"`
	Value string `db:"value"      json:"value"`
	Order int    `db:"sort_order" json:"order"`
}

type Sample struct {
	ID              uuid.UUID `db:"id"               json:"id"`
	Title           string    `db:"title"            json:"title"`
	Slug            string    `db:"slug"             json:"slug"`
	Year            *int      `db:"year"             json:"year,omitempty"`
	Area            *float64  `db:"area"             json:"area,omitempty"`
	ClientType      string    `db:"client_type"      json:"client_type,omitempty"`
	Description     string    `db:"description"      json:"description,omitempty"`
	PriceInfo       string    `db:"price_info"       json:"price_info,omitempty"`
	PDFFile         string    `db:"pdf_file"         json:"pdf_file,omitempty"`
	Order           int       `db:"sort_order"       json:"order"`
	MetaDescription string    `db:"meta_description" json:"meta_description,omitempty"`
	MetaKeywords    string    `db:"meta_keywords"    json:"meta_keywords,omitempty"`
	Cover           string    `db:"-"                json:"cover,omitempty"`

	Images []Image `db:"-" json:"images,omitempty"`
}

type Page struct {
	ID              uuid.UUID `db:"id"               json:"id"`
	Title           string    `db:"title"            json:"title"`
	Slug            string    `db:"slug"             json:"slug"`
	Content         string    `db:"content"          json:"content"`
	MetaDescription string    `db:"meta_description" json:"meta_description,omitempty"`
	MetaKeywords    string    `db:"meta_keywords"    json:"meta_keywords,omitempty"`
	Order           int       `db:"sort_order"       json:"order"`
	UpdatedAt       time.Time `db:"updated_at"       json:"updated_at"`
}

// ProjectImport is one catalog row as loaded by the bulk import. Characteristics and images
// replace the stored ones of the project.
type ProjectImport struct {
	CategoryName     string
	CategorySlug     string
	Title            string
	Slug             string
	Year             int
	Area             *float64
	Description      string
	ShortDescription string
	ClientType       string
	IsPublished      bool
	IsFeatured       bool
	Order            int
	MetaDescription  string
	MetaKeywords     string
	Characteristics  []ProjectCharacteristic
	Images           []Image
}

type ImportResult struct {
	Categories int `json:"categories"`
	Projects   int `json:"projects"`
}
