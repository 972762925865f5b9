package v1

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/Pavel771123/nataliya/internal/leads"
	"github.com/Pavel771123/nataliya/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	// Form fields beyond this stay on disk while the request is parsed.
	multipartMemory = 8 << 20

	submittedMessage = "Спасибо! Ваша заявка принята, мы свяжемся с вами в ближайшее время."
)

type LeadsHandler struct {
	log         *slog.Logger
	submitter   LeadSubmitter
	lister      LeadsLister
	files       LeadFileGetter
	maxBodySize int64
}

func NewLeadsHandler(
	log *slog.Logger,
	submitter LeadSubmitter,
	lister LeadsLister,
	files LeadFileGetter,
	maxBodySize int64,
) *LeadsHandler {
	return &LeadsHandler{
		log:         log,
		submitter:   submitter,
		lister:      lister,
		files:       files,
		maxBodySize: maxBodySize,
	}
}

type SubmitLeadResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Message   string    `json:"message"`
}

type ValidationErrorResponse struct {
	Errors map[string][]leads.FieldError `json:"errors"`
}

func (h *LeadsHandler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	form, err := parseLeadForm(r)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			metrics.LeadsSubmitted.WithLabelValues(metrics.ResultInvalid).Inc()
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body is larger than %d bytes", maxBytesErr.Limit))
			return
		}

		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}

	meta := domain.RequestMeta{
		Referer:  r.Referer(),
		ClientIP: clientIP(r),
	}
	if meta.Referer == "" {
		meta.Referer = r.PostFormValue("page")
	}

	lead, err := h.submitter.Submit(r.Context(), form, meta)
	if err != nil {
		var verr *leads.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: verr.Fields})
			return
		}

		h.log.ErrorContext(r.Context(), "failed to submit lead", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to save lead")
		return
	}

	writeJSON(w, http.StatusCreated, SubmitLeadResponse{
		ID:        lead.ID,
		CreatedAt: lead.CreatedAt,
		Message:   submittedMessage,
	})
}

// parseLeadForm accepts both multipart and urlencoded bodies.
func parseLeadForm(r *http.Request) (leads.Form, error) {
	err := r.ParseMultipartForm(multipartMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return leads.Form{}, err
	}

	form := leads.Form{
		Name:        r.PostFormValue("name"),
		Phone:       r.PostFormValue("phone"),
		Description: r.PostFormValue("description"),
	}

	if r.MultipartForm == nil {
		return form, nil
	}

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		return form, nil
	}

	form.File, err = readAttachment(files[0])
	if err != nil {
		return leads.Form{}, err
	}

	return form, nil
}

func readAttachment(header *multipart.FileHeader) (_ *domain.Attachment, err error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}

	return &domain.Attachment{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Content:     content,
	}, nil
}

type ListLeadsResponse struct {
	Leads      []*domain.Lead `json:"leads"`
	Pagination Pagination     `json:"pagination"`
}

func (h *LeadsHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	offset := (page - 1) * limit

	found, total, err := h.lister.Leads(r.Context(), limit, offset)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to list leads", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to list leads")
		return
	}

	if found == nil {
		found = []*domain.Lead{}
	}

	writeJSON(w, http.StatusOK, ListLeadsResponse{
		Leads:      found,
		Pagination: NewPagination(page, limit, total),
	})
}

func (h *LeadsHandler) GetLeadFile(w http.ResponseWriter, r *http.Request) {
	leadID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	file, err := h.files.LeadFile(r.Context(), leadID)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			writeError(w, http.StatusNotFound, "file not found")
			return
		}

		h.log.ErrorContext(r.Context(), "failed to get lead file",
			slog.String("lead_id", leadID.String()),
			slog.String("err", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "failed to get file")
		return
	}

	writeAttachment(w, file.ContentType, file.Name, file.Content)
}
