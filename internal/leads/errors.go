package leads

import (
	"fmt"
	"slices"
	"strings"
)

const (
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldDescription = "description"
	FieldFile        = "file"
)

const (
	CodeRequired        = "required"
	CodeTooLong         = "too_long"
	CodeFileTooLarge    = "file_too_large"
	CodeInvalidFileType = "invalid_file_type"
)

type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var errFileTooLarge = FieldError{
	Code:    CodeFileTooLarge,
	Message: "Размер файла не должен превышать 5 МБ.",
}

type ValidationError struct {
	Fields map[string][]FieldError
}

func (e *ValidationError) Add(field string, fe FieldError) {
	if e.Fields == nil {
		e.Fields = make(map[string][]FieldError)
	}

	e.Fields[field] = append(e.Fields[field], fe)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Has reports whether field failed with the given code.
func (e *ValidationError) Has(field, code string) bool {
	return slices.ContainsFunc(e.Fields[field], func(fe FieldError) bool {
		return fe.Code == code
	})
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		for _, fe := range e.Fields[field] {
			parts = append(parts, fmt.Sprintf("%s: %s", field, fe.Code))
		}
	}

	return "invalid lead: " + strings.Join(parts, ", ")
}
