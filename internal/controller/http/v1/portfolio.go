package v1

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Pavel771123/nataliya/internal/domain"
	"github.com/Pavel771123/nataliya/internal/portfolio"
	"github.com/go-chi/chi/v5"
)

type PortfolioHandler struct {
	log           *slog.Logger
	catalog       Catalog
	importer      ProjectImporter
	maxImportSize int64
}

func NewPortfolioHandler(log *slog.Logger, catalog Catalog, importer ProjectImporter, maxImportSize int64) *PortfolioHandler {
	return &PortfolioHandler{
		log:           log,
		catalog:       catalog,
		importer:      importer,
		maxImportSize: maxImportSize,
	}
}

func (h *PortfolioHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	list, err := h.catalog.Projects(r.Context(), query.Get("category"), query.Get("page"))
	if err != nil {
		h.writeCatalogError(w, r, "failed to list projects", err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *PortfolioHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	detail, err := h.catalog.Project(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeCatalogError(w, r, "failed to get project", err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

type ListCategoriesResponse struct {
	Categories []*domain.ProjectCategory `json:"categories"`
}

func (h *PortfolioHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		h.writeCatalogError(w, r, "failed to list categories", err)
		return
	}

	if categories == nil {
		categories = []*domain.ProjectCategory{}
	}

	writeJSON(w, http.StatusOK, ListCategoriesResponse{Categories: categories})
}

func (h *PortfolioHandler) ListSamples(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.Samples(r.Context(), r.URL.Query().Get("page"))
	if err != nil {
		h.writeCatalogError(w, r, "failed to list samples", err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *PortfolioHandler) GetSample(w http.ResponseWriter, r *http.Request) {
	sample, err := h.catalog.Sample(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeCatalogError(w, r, "failed to get sample", err)
		return
	}

	writeJSON(w, http.StatusOK, sample)
}

func (h *PortfolioHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.Page(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeCatalogError(w, r, "failed to get page", err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// ImportProjects takes the document either as a raw body or as the "file" part of a multipart form.
func (h *PortfolioHandler) ImportProjects(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxImportSize)

	doc, closeDoc, err := importDocument(r)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body is larger than %d bytes", maxBytesErr.Limit))
			return
		}

		writeError(w, http.StatusBadRequest, "invalid import document")
		return
	}
	defer closeDoc()

	result, err := h.importer.Import(r.Context(), doc)
	if err != nil {
		var ierr *portfolio.ImportError
		if errors.As(err, &ierr) {
			writeJSON(w, http.StatusUnprocessableEntity, ierr)
			return
		}

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body is larger than %d bytes", maxBytesErr.Limit))
			return
		}

		h.log.ErrorContext(r.Context(), "failed to import projects", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to import projects")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func importDocument(r *http.Request) (io.Reader, func(), error) {
	err := r.ParseMultipartForm(multipartMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.Body, func() {}, nil
	}
	if err != nil {
		return nil, nil, err
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, nil, err
	}

	return file, func() { _ = file.Close() }, nil
}

func (h *PortfolioHandler) writeCatalogError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, portfolio.ErrPageNotFound):
		writeError(w, http.StatusNotFound, "page not found")
	default:
		h.log.ErrorContext(r.Context(), msg, slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, msg)
	}
}
