package leads

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/go-playground/validator/v10"
)

const (
	MaxFileSize = 5 * 1024 * 1024

	// Matched case-sensitively: "plan.PDF" is rejected.
	allowedFileSuffix = ".pdf"
)

// Form holds raw submitted fields.
type Form struct {
	Name        string             `form:"name"        validate:"required,max=100"`
	Phone       string             `form:"phone"       validate:"required,max=20"`
	Description string             `form:"description"`
	File        *domain.Attachment `form:"file"`
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("form")
	})

	return &Validator{validate: validate}
}

// Validate checks the form without touching storage or network. On failure the returned error
// is a *ValidationError listing every violated field.
func (v *Validator) Validate(form Form) (*domain.NewLead, error) {
	form = form.trimmed()

	verr := &ValidationError{}

	if err := v.validate.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("failed to validate form: %w", err)
		}

		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), fieldError(fe))
		}
	}

	if form.File != nil {
		if form.File.Size > MaxFileSize {
			verr.Add(FieldFile, errFileTooLarge)
		}

		if !strings.HasSuffix(form.File.Name, allowedFileSuffix) {
			verr.Add(FieldFile, FieldError{
				Code:    CodeInvalidFileType,
				Message: "Разрешены только файлы формата PDF.",
			})
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}

	return &domain.NewLead{
		Name:        form.Name,
		Phone:       form.Phone,
		Description: form.Description,
		File:        form.File,
	}, nil
}

func (f Form) trimmed() Form {
	f.Name = strings.TrimSpace(f.Name)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Description = strings.TrimSpace(f.Description)
	return f
}

func fieldError(fe validator.FieldError) FieldError {
	switch fe.Tag() {
	case "required":
		return FieldError{Code: CodeRequired, Message: "Обязательное поле."}
	case "max":
		return FieldError{
			Code:    CodeTooLong,
			Message: fmt.Sprintf("Убедитесь, что это значение содержит не более %s символов.", fe.Param()),
		}
	default:
		return FieldError{Code: fe.Tag(), Message: "Некорректное значение."}
	}
}
