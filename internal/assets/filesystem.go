package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads assets from a directory on the filesystem.
// Implements Loader interface.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks in base path so path containment checks compare
	// canonical paths.
	realPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// LoadStyle loads a CSS stylesheet from the filesystem.
// Looks for {basePath}/styles/{name}.css
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	filePath := filepath.Join(f.basePath, "styles", name+".css")
	return f.readContained(filePath, fmt.Errorf("%w: %q", ErrStyleNotFound, name))
}

// LoadPage loads an HTML page template from the filesystem.
// Looks for {basePath}/templates/{set}/{page}.html
func (f *FilesystemLoader) LoadPage(set, page string) (string, error) {
	if err := ValidateAssetName(set); err != nil {
		return "", err
	}
	if err := ValidateAssetName(page); err != nil {
		return "", err
	}

	filePath := filepath.Join(f.basePath, "templates", set, page+".html")
	return f.readContained(filePath, fmt.Errorf("%w: %q in set %q", ErrPageNotFound, page, set))
}

// readContained reads a file after verifying it resolves inside basePath.
// notFound is returned when the file does not exist.
func (f *FilesystemLoader) readContained(filePath string, notFound error) (string, error) {
	if err := f.verifyPathContainment(filePath); err != nil {
		return "", err
	}

	content, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		if os.IsNotExist(err) {
			return "", notFound
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	return string(content), nil
}

// verifyPathContainment ensures the resolved path stays within basePath.
// The parent directory is resolved rather than the file itself so that
// missing files still report not-found instead of a containment error.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	dir := filepath.Dir(filePath)

	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		if os.IsNotExist(err) {
			// Directory absent means the asset is absent; let the read
			// report not-found.
			return nil
		}
		return fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	if realDir != f.basePath && !strings.HasPrefix(realDir, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s escapes %s", ErrPathTraversal, filePath, f.basePath)
	}

	return nil
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
