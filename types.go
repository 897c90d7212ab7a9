package docgen

import (
	"fmt"
	"time"
)

// DocumentType identifies the kind of document being generated. It selects
// the template set and the storage namespace.
type DocumentType string

// Known document types.
const (
	TypeInvoice  DocumentType = "invoice"
	TypeProposal DocumentType = "proposal"
)

// Plural returns the storage namespace for the document type, e.g.
// "invoice" -> "invoices". Storage keys are "{plural}/{id}.pdf".
func (t DocumentType) Plural() string {
	return string(t) + "s"
}

// valid reports whether t is a known document type.
func (t DocumentType) valid() bool {
	switch t {
	case TypeInvoice, TypeProposal:
		return true
	}
	return false
}

// DocumentRequest is the validated input to a pipeline run. Exactly two
// implementations exist: InvoiceRequest and ProposalRequest. The interface
// is sealed so the pipeline's type switch stays exhaustive.
type DocumentRequest interface {
	// Type returns the document type the request generates.
	Type() DocumentType

	// Validate checks that every field the templates require is present.
	// Missing fields wrap ErrTemplateDataMissing.
	Validate() error

	sealed()
}

// Compile-time interface checks.
var (
	_ DocumentRequest = (*InvoiceRequest)(nil)
	_ DocumentRequest = (*ProposalRequest)(nil)
)

// InvoiceItem is one billed line on an invoice.
type InvoiceItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// InvoiceRequest carries the data for an invoice document. Monetary values
// are pre-formatted strings; the pipeline never does arithmetic on them.
type InvoiceRequest struct {
	ClientName    string        `json:"client_name"`
	ClientAddress string        `json:"client_address"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      string        `json:"subtotal"`
	Tax           string        `json:"tax"`
	Total         string        `json:"total"`
}

// Type returns TypeInvoice.
func (r *InvoiceRequest) Type() DocumentType { return TypeInvoice }

func (r *InvoiceRequest) sealed() {}

// Validate checks that all fields the invoice template renders are present.
func (r *InvoiceRequest) Validate() error {
	switch {
	case r.ClientName == "":
		return fmt.Errorf("%w: client_name", ErrTemplateDataMissing)
	case r.ClientAddress == "":
		return fmt.Errorf("%w: client_address", ErrTemplateDataMissing)
	case len(r.Items) == 0:
		return fmt.Errorf("%w: items", ErrTemplateDataMissing)
	case r.Subtotal == "":
		return fmt.Errorf("%w: subtotal", ErrTemplateDataMissing)
	case r.Tax == "":
		return fmt.Errorf("%w: tax", ErrTemplateDataMissing)
	case r.Total == "":
		return fmt.Errorf("%w: total", ErrTemplateDataMissing)
	}

	for i, item := range r.Items {
		if item.Name == "" {
			return fmt.Errorf("%w: items[%d].name", ErrTemplateDataMissing, i)
		}
		if item.Price == "" {
			return fmt.Errorf("%w: items[%d].price", ErrTemplateDataMissing, i)
		}
	}

	return nil
}

// TimelineEntry is one row of a proposal's project timeline.
type TimelineEntry struct {
	Phase       string `json:"phase"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

// PricingRow is one row of a proposal's pricing table.
type PricingRow struct {
	Item  string `json:"item"`
	Price string `json:"price"`
}

// Addon is an optional extra offered alongside a proposal.
type Addon struct {
	Title string `json:"title"`
	Price string `json:"price"`
}

// ProposalRequest carries the data for a proposal document. All four pages
// render against the same request; each page pulls only the fields it needs.
type ProposalRequest struct {
	ClientName string          `json:"client_name"`
	Discovery  []string        `json:"discovery"`
	Solutions  []string        `json:"solutions"`
	Timeline   []TimelineEntry `json:"timeline"`
	Pricing    []PricingRow    `json:"pricing"`
	Addons     []Addon         `json:"addons"`
}

// Type returns TypeProposal.
func (r *ProposalRequest) Type() DocumentType { return TypeProposal }

func (r *ProposalRequest) sealed() {}

// Validate checks that all fields the proposal pages render are present.
// Addons are optional; every other section must have at least one entry.
func (r *ProposalRequest) Validate() error {
	switch {
	case r.ClientName == "":
		return fmt.Errorf("%w: client_name", ErrTemplateDataMissing)
	case len(r.Discovery) == 0:
		return fmt.Errorf("%w: discovery", ErrTemplateDataMissing)
	case len(r.Solutions) == 0:
		return fmt.Errorf("%w: solutions", ErrTemplateDataMissing)
	case len(r.Timeline) == 0:
		return fmt.Errorf("%w: timeline", ErrTemplateDataMissing)
	case len(r.Pricing) == 0:
		return fmt.Errorf("%w: pricing", ErrTemplateDataMissing)
	}
	return nil
}

// Artifact names the per-request intermediate files. The ID is the sole
// namespace key linking the HTML, the PDF, and the storage key.
type Artifact struct {
	ID       string
	HTMLPath string
	PDFPath  string
}

// Result is the outcome of a successful pipeline run.
type Result struct {
	// URL is the externally reachable location of the published PDF.
	URL string

	// Key is the object-storage key the PDF was uploaded under.
	Key string

	// ID is the artifact identifier generated for this run.
	ID string
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout   time.Duration
	workDir   string
	assetPath string
	clock     func() time.Time
}

// Defaults applied by New when no option overrides them.
const (
	defaultTimeout = 30 * time.Second
	defaultWorkDir = "output"
)

// WithTimeout sets the per-render deadline.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("docgen: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithWorkDir sets the directory for intermediate HTML/PDF artifacts.
// The directory is created on first use if it does not exist.
func WithWorkDir(dir string) Option {
	return func(s *Service) {
		s.cfg.workDir = dir
	}
}

// WithAssetPath sets a directory whose templates and styles override the
// embedded defaults. See the package documentation for the expected layout.
func WithAssetPath(path string) Option {
	return func(s *Service) {
		s.cfg.assetPath = path
	}
}

// WithClock sets the time source used for invoice issue and due dates.
// Defaults to time.Now. Inject a fixed clock for deterministic output.
func WithClock(clock func() time.Time) Option {
	if clock == nil {
		panic("docgen: WithClock requires a non-nil clock")
	}
	return func(s *Service) {
		s.cfg.clock = clock
	}
}
