package docgen

import "errors"

// Sentinel errors for pipeline stages. Every failure a Generate call can
// return wraps exactly one of these, so callers map outcomes with errors.Is.
var (
	// ErrTemplateDataMissing indicates the request lacks data a template
	// requires; composition fails whole, never partially.
	ErrTemplateDataMissing = errors.New("template data missing")

	// ErrStagingFailed indicates the composed HTML could not be written to
	// the working directory.
	ErrStagingFailed = errors.New("staging artifact failed")

	// ErrBrowserUnavailable indicates the headless browser could not be
	// launched or connected to.
	ErrBrowserUnavailable = errors.New("browser unavailable")

	// ErrRenderTimeout indicates the page did not finish loading before
	// the render deadline.
	ErrRenderTimeout = errors.New("render timed out")

	// ErrExportFailed indicates the loaded page could not be exported as PDF.
	ErrExportFailed = errors.New("PDF export failed")

	// ErrUploadFailed indicates the PDF could not be stored after all
	// upload attempts.
	ErrUploadFailed = errors.New("upload failed")
)

// Request validation errors. Field-level gaps wrap ErrTemplateDataMissing
// (see DocumentRequest.Validate); these cover malformed requests themselves.
var (
	ErrNilRequest          = errors.New("document request cannot be nil")
	ErrUnknownDocumentType = errors.New("unknown document type")
)
