package compose

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-docgen/internal/assets"
)

// Sentinel errors for composition.
var (
	ErrUnknownSet = errors.New("unknown template set")
	ErrRender     = errors.New("template rendering failed")
)

// Template set names and their fixed page order. Proposal pages concatenate
// in exactly this sequence; reordering changes the document.
var pageOrder = map[string][]string{
	"invoice":  {"invoice"},
	"proposal": {"page1_cover", "page2_about", "page3_solution", "page4_pricing"},
}

// documentShell wraps rendered pages into a complete HTML document.
// The stylesheet is inlined so the file renders without network access.
const (
	documentHead = "<!DOCTYPE html>\n<html>\n<head><meta charset=\"UTF-8\"><style>%s</style></head>\n<body>\n"
	documentFoot = "</body></html>"
)

// Composer renders template sets into self-contained HTML documents.
// Safe for concurrent use once constructed.
type Composer struct {
	css   string
	pages map[string][]*template.Template
}

// NewComposer loads the shared stylesheet and parses all page templates
// through the given loader. Template syntax errors surface here, not at
// request time.
func NewComposer(loader assets.Loader) (*Composer, error) {
	css, err := loader.LoadStyle(assets.BaseStyle)
	if err != nil {
		return nil, fmt.Errorf("loading base stylesheet: %w", err)
	}

	c := &Composer{
		css:   css,
		pages: make(map[string][]*template.Template, len(pageOrder)),
	}

	for set, names := range pageOrder {
		parsed := make([]*template.Template, 0, len(names))
		for _, name := range names {
			content, err := loader.LoadPage(set, name)
			if err != nil {
				return nil, fmt.Errorf("loading page %s/%s: %w", set, name, err)
			}
			tmpl, err := template.New(name).Parse(content)
			if err != nil {
				return nil, fmt.Errorf("parsing page %s/%s: %w", set, name, err)
			}
			parsed = append(parsed, tmpl)
		}
		c.pages[set] = parsed
	}

	return c, nil
}

// Compose renders every page of the set in order against data and returns
// one well-formed HTML document. Any page failing to render fails the whole
// composition; no partial document is ever returned.
func (c *Composer) Compose(ctx context.Context, set string, data any) (string, error) {
	pages, ok := c.pages[set]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSet, set)
	}

	var b strings.Builder
	fmt.Fprintf(&b, documentHead, sanitizeCSS(c.css))

	for i, tmpl := range pages {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := tmpl.Execute(&b, data); err != nil {
			return "", fmt.Errorf("%w: page %s/%s: %v", ErrRender, set, pageOrder[set][i], err)
		}
	}

	b.WriteString(documentFoot)
	return b.String(), nil
}

// Pages returns the ordered page names of a template set, or nil for an
// unknown set.
func Pages(set string) []string {
	return pageOrder[set]
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// InvoiceData is the record the invoice template renders against. The last
// three fields are pipeline-generated, not caller-supplied.
type InvoiceData struct {
	ClientName    string
	ClientAddress string
	Items         []LineItem
	Subtotal      string
	Tax           string
	Total         string

	InvoiceNumber string
	Date          string
	DueDate       string
}

// LineItem is one billed line on an invoice.
type LineItem struct {
	Name  string
	Price string
}

// ProposalData is the record every proposal page renders against; each page
// pulls only the fields it needs.
type ProposalData struct {
	ClientName string
	Discovery  []string
	Solutions  []string
	Timeline   []TimelineEntry
	Pricing    []PricingRow
	Addons     []Addon
}

// TimelineEntry is one row of the proposal timeline table.
type TimelineEntry struct {
	Phase       string
	Description string
	Time        string
}

// PricingRow is one row of the proposal pricing table.
type PricingRow struct {
	Item  string
	Price string
}

// Addon is an optional extra listed on the pricing page.
type Addon struct {
	Title string
	Price string
}
