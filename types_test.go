package docgen

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestDocumentType - Type Behavior
// ---------------------------------------------------------------------------

func TestDocumentTypePlural(t *testing.T) {
	t.Parallel()

	tests := []struct {
		docType DocumentType
		want    string
	}{
		{TypeInvoice, "invoices"},
		{TypeProposal, "proposals"},
	}

	for _, tt := range tests {
		if got := tt.docType.Plural(); got != tt.want {
			t.Errorf("%s.Plural() = %q, want %q", tt.docType, got, tt.want)
		}
	}
}

func TestDocumentTypeValid(t *testing.T) {
	t.Parallel()

	if !TypeInvoice.valid() || !TypeProposal.valid() {
		t.Error("known document types reported invalid")
	}
	if DocumentType("receipt").valid() {
		t.Error("unknown document type reported valid")
	}
}

// ---------------------------------------------------------------------------
// TestInvoiceRequestValidate - Field Presence
// ---------------------------------------------------------------------------

func TestInvoiceRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*InvoiceRequest)
		wantErr bool
	}{
		{
			name:   "complete request",
			mutate: func(r *InvoiceRequest) {},
		},
		{
			name:    "missing client name",
			mutate:  func(r *InvoiceRequest) { r.ClientName = "" },
			wantErr: true,
		},
		{
			name:    "missing client address",
			mutate:  func(r *InvoiceRequest) { r.ClientAddress = "" },
			wantErr: true,
		},
		{
			name:    "no line items",
			mutate:  func(r *InvoiceRequest) { r.Items = nil },
			wantErr: true,
		},
		{
			name:    "missing subtotal",
			mutate:  func(r *InvoiceRequest) { r.Subtotal = "" },
			wantErr: true,
		},
		{
			name:    "missing tax",
			mutate:  func(r *InvoiceRequest) { r.Tax = "" },
			wantErr: true,
		},
		{
			name:    "missing total",
			mutate:  func(r *InvoiceRequest) { r.Total = "" },
			wantErr: true,
		},
		{
			name:    "item without name",
			mutate:  func(r *InvoiceRequest) { r.Items[0].Name = "" },
			wantErr: true,
		},
		{
			name:    "item without price",
			mutate:  func(r *InvoiceRequest) { r.Items[0].Price = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validInvoice()
			tt.mutate(req)

			err := req.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrTemplateDataMissing) {
					t.Errorf("Validate() error = %v, want ErrTemplateDataMissing", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestProposalRequestValidate - Field Presence
// ---------------------------------------------------------------------------

func TestProposalRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*ProposalRequest)
		wantErr bool
	}{
		{
			name:   "complete request",
			mutate: func(r *ProposalRequest) {},
		},
		{
			name:   "addons are optional",
			mutate: func(r *ProposalRequest) { r.Addons = nil },
		},
		{
			name:    "missing client name",
			mutate:  func(r *ProposalRequest) { r.ClientName = "" },
			wantErr: true,
		},
		{
			name:    "empty discovery",
			mutate:  func(r *ProposalRequest) { r.Discovery = nil },
			wantErr: true,
		},
		{
			name:    "empty solutions",
			mutate:  func(r *ProposalRequest) { r.Solutions = nil },
			wantErr: true,
		},
		{
			name:    "empty timeline",
			mutate:  func(r *ProposalRequest) { r.Timeline = nil },
			wantErr: true,
		},
		{
			name:    "empty pricing",
			mutate:  func(r *ProposalRequest) { r.Pricing = nil },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validProposal()
			tt.mutate(req)

			err := req.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrTemplateDataMissing) {
					t.Errorf("Validate() error = %v, want ErrTemplateDataMissing", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRequestJSON - Wire Field Names
// ---------------------------------------------------------------------------

func TestInvoiceRequestJSON(t *testing.T) {
	t.Parallel()

	payload := `{
		"client_name": "Acme",
		"client_address": "1 Main St",
		"items": [{"name": "Widget", "price": "10.00"}],
		"subtotal": "10.00",
		"tax": "1.00",
		"total": "11.00"
	}`

	var req InvoiceRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if err := req.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if req.Items[0].Name != "Widget" {
		t.Errorf("Items[0].Name = %q, want Widget", req.Items[0].Name)
	}
}

func TestProposalRequestJSON(t *testing.T) {
	t.Parallel()

	payload := `{
		"client_name": "Acme",
		"discovery": ["needs a site"],
		"solutions": ["build a site"],
		"timeline": [{"phase": "Phase 1", "description": "Design", "time": "2 Weeks"}],
		"pricing": [{"item": "Website", "price": "5000"}],
		"addons": [{"title": "SEO", "price": "500"}]
	}`

	var req ProposalRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if err := req.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if req.Timeline[0].Time != "2 Weeks" {
		t.Errorf("Timeline[0].Time = %q, want 2 Weeks", req.Timeline[0].Time)
	}
	if req.Addons[0].Title != "SEO" {
		t.Errorf("Addons[0].Title = %q, want SEO", req.Addons[0].Title)
	}
}

// ---------------------------------------------------------------------------
// TestOptions - Configuration Guards
// ---------------------------------------------------------------------------

func TestWithTimeoutPanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}

func TestWithClockPanicsOnNil(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithClock(nil) did not panic")
		}
	}()
	WithClock(nil)
}

func TestOptionsApply(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc, err := New(&mockPublisher{},
		withComposer(&mockComposer{}),
		withStager(&mockStager{}),
		withRenderer(&mockRenderer{}),
		WithTimeout(5*time.Second),
		WithWorkDir("elsewhere"),
		WithClock(func() time.Time { return fixed }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if svc.cfg.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", svc.cfg.timeout)
	}
	if svc.cfg.workDir != "elsewhere" {
		t.Errorf("workDir = %q, want elsewhere", svc.cfg.workDir)
	}
	if got := svc.cfg.clock(); !got.Equal(fixed) {
		t.Errorf("clock() = %v, want %v", got, fixed)
	}
}
