package assets

// Loader defines the contract for loading stylesheets and page templates.
// Implementations may load from the embedded filesystem or from disk.
type Loader interface {
	// LoadStyle loads a CSS stylesheet by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadPage loads an HTML page template from a template set.
	// Both arguments are names, not paths: set is a document type such as
	// "invoice", page a file name without the .html extension.
	// Returns ErrPageNotFound if the template doesn't exist.
	LoadPage(set, page string) (string, error)
}

// BaseStyle is the name of the stylesheet shared by all document types.
const BaseStyle = "base"
