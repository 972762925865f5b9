package domain

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	ID          uuid.UUID `db:"id"          json:"id"`
	Name        string    `db:"name"        json:"name"`
	Phone       string    `db:"phone"       json:"phone"`
	Description string    `db:"description" json:"description,omitempty"`
	FileName    string    `db:"file_name"   json:"file_name,omitempty"`
	FileSize    int64     `db:"file_size"   json:"file_size,omitempty"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`

	File *Attachment `db:"-" json:"-"` // filled only right after creation
}

func (l *Lead) HasFile() bool {
	return l.FileName != ""
}

// NewLead is a validated lead payload ready to be stored.
type NewLead struct {
	Name        string
	Phone       string
	Description string
	File        *Attachment
}

type Attachment struct {
	Name        string
	ContentType string
	Size        int64
	Content     []byte
}
