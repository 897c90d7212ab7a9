package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*
var styles embed.FS

//go:embed templates/*
var templates embed.FS

// EmbeddedLoader loads assets from the embedded filesystem.
// Implements Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a CSS stylesheet from embedded assets by name.
// The name should not include the .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// LoadPage loads an HTML page template from embedded assets.
// Neither name should include an extension.
func (e *EmbeddedLoader) LoadPage(set, page string) (string, error) {
	if err := ValidateAssetName(set); err != nil {
		return "", err
	}
	if err := ValidateAssetName(page); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + set + "/" + page + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q in set %q", ErrPageNotFound, page, set)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
