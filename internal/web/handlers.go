package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	docgen "github.com/alnah/go-docgen"
)

// maxBodyBytes bounds request bodies; document data is small JSON.
const maxBodyBytes = 1 << 20

// Generator runs the document pipeline for one validated request.
// *docgen.ServicePool is adapted to this via PoolGenerator; tests inject
// fakes.
type Generator interface {
	Generate(ctx context.Context, req docgen.DocumentRequest) (*docgen.Result, error)
}

// PoolGenerator adapts a ServicePool to the Generator interface, holding a
// pooled service only for the duration of one request.
type PoolGenerator struct {
	Pool *docgen.ServicePool
}

// Compile-time interface check.
var _ Generator = (*PoolGenerator)(nil)

// Generate acquires a service, runs the pipeline, and releases the service.
func (g *PoolGenerator) Generate(ctx context.Context, req docgen.DocumentRequest) (*docgen.Result, error) {
	svc, err := g.Pool.Acquire()
	if err != nil {
		return nil, err
	}
	defer g.Pool.Release(svc)

	return svc.Generate(ctx, req)
}

// Handler serves the document-generation endpoints.
type Handler struct {
	Gen Generator
	Log *slog.Logger
}

// GenerateInvoice handles POST /generate/invoice.
func (h *Handler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	var req docgen.InvoiceRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.generate(w, r, &req)
}

// GenerateProposal handles POST /generate/proposal.
func (h *Handler) GenerateProposal(w http.ResponseWriter, r *http.Request) {
	var req docgen.ProposalRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.generate(w, r, &req)
}

// decode reads the JSON body into req, answering 400 on malformed input.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		if errors.Is(err, io.EOF) {
			writeBadRequest(w, "request body is empty")
			return false
		}
		writeBadRequest(w, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

// generate runs the pipeline and writes the response envelope.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request, req docgen.DocumentRequest) {
	start := time.Now()

	res, err := h.Gen.Generate(r.Context(), req)
	if err != nil {
		h.Log.Error("generation failed",
			"type", string(req.Type()),
			"error", err,
			"duration", time.Since(start),
		)
		writeError(w, err)
		return
	}

	h.Log.Info("document generated",
		"type", string(req.Type()),
		"artifact_id", res.ID,
		"key", res.Key,
		"duration", time.Since(start),
	)
	writeJSON(w, http.StatusOK, generateResponse{URL: res.URL})
}
