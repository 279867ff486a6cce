package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/finwise-app/finwise/internal/api/middleware"
	"github.com/finwise-app/finwise/internal/bank"
	"github.com/finwise-app/finwise/internal/llm"
	"github.com/finwise-app/finwise/internal/pipeline"
	"github.com/finwise-app/finwise/internal/store"
)

// maxUploadBytes caps statement uploads at 16 MiB.
const maxUploadBytes = 16 << 20

// UploadHandler ingests a statement file, runs the normalization pipeline,
// and replaces the live transaction set.
type UploadHandler struct {
	current *store.Current
	log     zerolog.Logger
}

// NewUploadHandler creates an upload handler.
func NewUploadHandler(current *store.Current, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{current: current, log: log}
}

// Upload handles POST /api/upload. The body is multipart form data with a
// "file" part and an optional "bank" field; an absent or unrecognized bank
// selects the generic profile.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	requested := r.FormValue("bank")
	profile := bank.Lookup(requested)
	if profile.Generic() && requested != "" {
		h.log.Warn().Str("bank", requested).Msg("Unknown bank identifier, using generic profile")
	}

	table, err := pipeline.ReadTable(file, header.Filename)
	if err != nil {
		h.log.Warn().Err(err).Str("filename", header.Filename).Msg("Failed to read upload")
		middleware.WriteError(w, http.StatusBadRequest, fmt.Sprintf("Error processing upload: %v", err))
		return
	}

	set, report, err := pipeline.Normalize(table, profile)
	if err != nil {
		h.log.Warn().Err(err).Str("bank", profile.ID).Msg("Normalization failed")
		middleware.WriteError(w, http.StatusBadRequest, fmt.Sprintf("Error processing upload: %v", err))
		return
	}

	uploadID := h.current.Replace(set, llm.RenderContext(set), report)

	h.log.Info().
		Str("upload_id", uploadID).
		Str("bank", profile.ID).
		Int("raw_rows", report.RawRows).
		Int("kept", report.Kept).
		Int("dropped_amount", report.DroppedAmount).
		Int("dropped_date", report.DroppedDate).
		Msg("Statement uploaded")

	middleware.WriteJSON(w, http.StatusOK, map[string]any{
		"message":           fmt.Sprintf("Statement uploaded successfully! Processed %d %s transactions", report.Kept, strings.ToUpper(profile.ID)),
		"upload_id":         uploadID,
		"bank":              strings.ToUpper(profile.ID),
		"columns":           set.Columns,
		"transaction_count": report.Kept,
		"report":            report,
	})
}
