package v1

import (
	"bytes"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/Pavel771123/nataliya/internal/leads"
)

type ExportHandler struct {
	log      *slog.Logger
	exporter LeadsExporter
}

func NewExportHandler(log *slog.Logger, exporter LeadsExporter) *ExportHandler {
	return &ExportHandler{
		log:      log,
		exporter: exporter,
	}
}

func (h *ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.exporter.CSV(r.Context(), &buf); err != nil {
		h.log.ErrorContext(r.Context(), "failed to export leads", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to export leads")
		return
	}

	writeAttachment(w, "text/csv; charset=utf-8", exportName("csv"), buf.Bytes())
}

func (h *ExportHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	doc, err := h.exporter.PDF(r.Context())
	if err != nil {
		if errors.Is(err, leads.ErrDigestUnavailable) {
			writeError(w, http.StatusNotImplemented, err.Error())
			return
		}

		h.log.ErrorContext(r.Context(), "failed to render leads digest", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "failed to export leads")
		return
	}

	writeAttachment(w, "application/pdf", exportName("pdf"), doc)
}

func exportName(ext string) string {
	return "leads-" + time.Now().Format("2006-01-02") + "." + ext
}

func writeAttachment(w http.ResponseWriter, contentType, name string, content []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	_, _ = w.Write(content)
}
