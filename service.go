package docgen

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/alnah/go-docgen/internal/assets"
	"github.com/alnah/go-docgen/internal/compose"
	"github.com/alnah/go-docgen/internal/dateutil"
)

// invoiceNumberLen is how many characters of a fresh uuid become the
// human-facing invoice number.
const invoiceNumberLen = 8

// invoiceDueDays is the spread between issue and due date. An invoice issued
// on the 1st is due on the 7th.
const invoiceDueDays = 6

// Service orchestrates the compose → stage → rasterize → publish pipeline.
// One Service owns one browser; for concurrent requests use ServicePool.
type Service struct {
	cfg       serviceConfig
	composer  documentComposer
	stager    stager
	renderer  renderer
	publisher Publisher
}

// New creates a Service publishing through pub.
// Template parsing happens here, so template errors surface at startup
// rather than on the first request. Use options to customize behavior.
func New(pub Publisher, opts ...Option) (*Service, error) {
	if pub == nil {
		return nil, fmt.Errorf("docgen: New requires a non-nil Publisher")
	}

	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			workDir: defaultWorkDir,
			clock:   time.Now,
		},
		publisher: pub,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Build default stages if not injected (e.g., by tests)
	if s.composer == nil {
		resolver, err := assets.NewResolver(s.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		inner, err := compose.NewComposer(resolver)
		if err != nil {
			return nil, err
		}
		s.composer = &templateComposer{inner: inner}
	}
	if s.stager == nil {
		s.stager = &workdirStager{dir: s.cfg.workDir}
	}
	if s.renderer == nil {
		s.renderer = newRodRenderer(s.cfg.timeout)
	}

	return s, nil
}

// Generate runs the full pipeline for one request and returns the published
// document's location. The pipeline is linear: any stage failure aborts the
// remainder, and nothing is ever published for a failed render.
//
// Intermediate files are removed after a successful publish and retained
// under the working directory on failure, keyed by the returned artifact ID.
func (s *Service) Generate(ctx context.Context, req DocumentRequest) (*Result, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	if !req.Type().valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocumentType, req.Type())
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	meta, err := s.buildMeta(req)
	if err != nil {
		return nil, err
	}

	html, err := s.composer.Compose(ctx, req, meta)
	if err != nil {
		return nil, fmt.Errorf("composing %s: %w", req.Type(), err)
	}

	artifact, err := s.stager.Stage(html)
	if err != nil {
		return nil, fmt.Errorf("staging %s: %w", req.Type(), err)
	}

	pdf, err := s.renderer.RenderFile(ctx, artifact.HTMLPath)
	if err != nil {
		return nil, fmt.Errorf("rasterizing %s: %w", artifact.ID, err)
	}

	// #nosec G306 -- PDF output files are intended to be readable
	if err := os.WriteFile(artifact.PDFPath, pdf, 0o644); err != nil {
		return nil, fmt.Errorf("%w: writing %s: %v", ErrExportFailed, artifact.PDFPath, err)
	}

	url, err := s.publisher.Publish(ctx, artifact.PDFPath, req.Type(), artifact.ID)
	if err != nil {
		return nil, fmt.Errorf("publishing %s: %w", artifact.ID, err)
	}

	s.cleanup(artifact)

	return &Result{
		URL: url,
		Key: StorageKey(req.Type(), artifact.ID),
		ID:  artifact.ID,
	}, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.renderer != nil {
		return s.renderer.Close()
	}
	return nil
}

// buildMeta generates the pipeline-injected invoice fields: a fresh 8-char
// invoice number and issue/due dates from the configured clock.
func (s *Service) buildMeta(req DocumentRequest) (composeMeta, error) {
	if req.Type() != TypeInvoice {
		return composeMeta{}, nil
	}

	now := s.cfg.clock()
	date, err := dateutil.Format(now, dateutil.DefaultDateFormat)
	if err != nil {
		return composeMeta{}, err
	}
	due, err := dateutil.Format(now.AddDate(0, 0, invoiceDueDays), dateutil.DefaultDateFormat)
	if err != nil {
		return composeMeta{}, err
	}

	return composeMeta{
		invoiceNumber: uuid.NewString()[:invoiceNumberLen],
		date:          date,
		dueDate:       due,
	}, nil
}

// cleanup removes a run's intermediate files after a successful publish.
// Best-effort: a leftover file is an inconvenience, not a failure.
func (s *Service) cleanup(artifact *Artifact) {
	_ = os.Remove(artifact.HTMLPath)
	_ = os.Remove(artifact.PDFPath)
}
