// Package assets loads the document templates and the shared stylesheet.
//
// Built-in assets are embedded in the binary. A custom asset directory may
// override any of them; lookups try the custom location first and fall back
// to the embedded copy when the file is absent there.
//
// Asset directory layout:
//
//	styles/{name}.css
//	templates/{set}/{name}.html
//
// where {set} is a document type ("invoice", "proposal") and {name} is a
// page name within that set.
package assets
