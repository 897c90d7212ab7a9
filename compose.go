package docgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-docgen/internal/compose"
)

// composeMeta carries the pipeline-generated fields injected into invoice
// composition. Proposals ignore it.
type composeMeta struct {
	invoiceNumber string
	date          string
	dueDate       string
}

// documentComposer abstracts HTML composition to allow fake injection in tests.
type documentComposer interface {
	Compose(ctx context.Context, req DocumentRequest, meta composeMeta) (string, error)
}

// templateComposer implements documentComposer on the template engine.
type templateComposer struct {
	inner *compose.Composer
}

// Compile-time interface check.
var _ documentComposer = (*templateComposer)(nil)

// Compose converts the request to its template record and renders the
// document type's page set. Rendering failures wrap ErrTemplateDataMissing:
// after Validate has passed, the only data a template can still miss is a
// field the templates were customized to require.
func (c *templateComposer) Compose(ctx context.Context, req DocumentRequest, meta composeMeta) (string, error) {
	var data any
	switch r := req.(type) {
	case *InvoiceRequest:
		data = toInvoiceData(r, meta)
	case *ProposalRequest:
		data = toProposalData(r)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownDocumentType, req)
	}

	html, err := c.inner.Compose(ctx, string(req.Type()), data)
	if err != nil {
		if errors.Is(err, compose.ErrRender) {
			return "", fmt.Errorf("%w: %v", ErrTemplateDataMissing, err)
		}
		return "", err
	}
	return html, nil
}

// toInvoiceData converts the public request plus generated fields to the
// internal template record.
func toInvoiceData(r *InvoiceRequest, meta composeMeta) *compose.InvoiceData {
	items := make([]compose.LineItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = compose.LineItem(item)
	}
	return &compose.InvoiceData{
		ClientName:    r.ClientName,
		ClientAddress: r.ClientAddress,
		Items:         items,
		Subtotal:      r.Subtotal,
		Tax:           r.Tax,
		Total:         r.Total,
		InvoiceNumber: meta.invoiceNumber,
		Date:          meta.date,
		DueDate:       meta.dueDate,
	}
}

// toProposalData converts the public request to the internal template record.
func toProposalData(r *ProposalRequest) *compose.ProposalData {
	timeline := make([]compose.TimelineEntry, len(r.Timeline))
	for i, e := range r.Timeline {
		timeline[i] = compose.TimelineEntry(e)
	}
	pricing := make([]compose.PricingRow, len(r.Pricing))
	for i, row := range r.Pricing {
		pricing[i] = compose.PricingRow(row)
	}
	addons := make([]compose.Addon, len(r.Addons))
	for i, a := range r.Addons {
		addons[i] = compose.Addon(a)
	}
	return &compose.ProposalData{
		ClientName: r.ClientName,
		Discovery:  r.Discovery,
		Solutions:  r.Solutions,
		Timeline:   timeline,
		Pricing:    pricing,
		Addons:     addons,
	}
}
