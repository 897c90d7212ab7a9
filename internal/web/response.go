package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	docgen "github.com/alnah/go-docgen"
)

// generateResponse is the success body of both generate endpoints.
type generateResponse struct {
	URL string `json:"url"`
}

// errorResponse is the failure body of every endpoint.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// mapPipelineError resolves a pipeline failure to an HTTP status and a
// stable machine-readable kind. Upstream dependencies (browser, storage)
// map to 502; caller mistakes to 400; everything else is a 500.
func mapPipelineError(err error) (int, string) {
	switch {
	case errors.Is(err, docgen.ErrTemplateDataMissing):
		return http.StatusBadRequest, "template_data_missing"
	case errors.Is(err, docgen.ErrNilRequest), errors.Is(err, docgen.ErrUnknownDocumentType):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, docgen.ErrBrowserUnavailable):
		return http.StatusBadGateway, "browser_unavailable"
	case errors.Is(err, docgen.ErrRenderTimeout):
		return http.StatusBadGateway, "render_timeout"
	case errors.Is(err, docgen.ErrUploadFailed):
		return http.StatusBadGateway, "upload_failed"
	case errors.Is(err, docgen.ErrStagingFailed):
		return http.StatusInternalServerError, "staging_failed"
	case errors.Is(err, docgen.ErrExportFailed):
		return http.StatusInternalServerError, "export_failed"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout, "deadline_exceeded"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// writeJSON writes a JSON body with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError writes the structured error envelope for a pipeline failure.
// The kind is stable API surface; the message is diagnostic only.
func writeError(w http.ResponseWriter, err error) {
	status, kind := mapPipelineError(err)
	writeJSON(w, status, errorResponse{Error: errorDetail{
		Kind:    kind,
		Message: err.Error(),
	}})
}

// writeBadRequest writes a 400 envelope for malformed request bodies.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorDetail{
		Kind:    "bad_request",
		Message: message,
	}})
}
