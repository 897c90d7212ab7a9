package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeAsset creates a file under dir, creating parents as needed.
func writeAsset(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestValidateAssetName - Name Safety
// ---------------------------------------------------------------------------

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		asset   string
		wantErr bool
	}{
		{"simple name", "base", false},
		{"with underscore", "page1_cover", false},
		{"with hyphen", "dark-mode", false},
		{"empty", "", true},
		{"forward slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"dot", "base.css", true},
		{"traversal", "../etc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.asset)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAssetName) {
					t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", tt.asset, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateAssetName(%q) error = %v, want nil", tt.asset, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEmbeddedLoader - Bundled Assets
// ---------------------------------------------------------------------------

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()
	css, err := loader.LoadStyle(BaseStyle)
	if err != nil {
		t.Fatalf("LoadStyle(base) error = %v", err)
	}
	if !strings.Contains(css, ".page") {
		t.Error("base stylesheet missing page rules")
	}

	if _, err := loader.LoadStyle("nonexistent"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(nonexistent) error = %v, want ErrStyleNotFound", err)
	}
}

func TestEmbeddedLoader_LoadPage(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	pages := map[string][]string{
		"invoice":  {"invoice"},
		"proposal": {"page1_cover", "page2_about", "page3_solution", "page4_pricing"},
	}
	for set, names := range pages {
		for _, name := range names {
			content, err := loader.LoadPage(set, name)
			if err != nil {
				t.Errorf("LoadPage(%s, %s) error = %v", set, name, err)
				continue
			}
			if content == "" {
				t.Errorf("LoadPage(%s, %s) returned empty template", set, name)
			}
		}
	}

	if _, err := loader.LoadPage("invoice", "page99"); !errors.Is(err, ErrPageNotFound) {
		t.Errorf("LoadPage(invoice, page99) error = %v, want ErrPageNotFound", err)
	}
	if _, err := loader.LoadPage("../invoice", "invoice"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadPage with traversal error = %v, want ErrInvalidAssetName", err)
	}
}

// ---------------------------------------------------------------------------
// TestFilesystemLoader - Disk Assets
// ---------------------------------------------------------------------------

func TestNewFilesystemLoader_InvalidBasePaths(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"missing directory", filepath.Join(t.TempDir(), "nope")},
		{"regular file", file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := NewFilesystemLoader(tt.path); !errors.Is(err, ErrInvalidBasePath) {
				t.Errorf("NewFilesystemLoader(%q) error = %v, want ErrInvalidBasePath", tt.path, err)
			}
		})
	}
}

func TestFilesystemLoader_LoadAssets(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "styles/base.css", "body { margin: 0; }")
	writeAsset(t, dir, "templates/invoice/invoice.html", "<div>{{.ClientName}}</div>")

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	css, err := loader.LoadStyle("base")
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if css != "body { margin: 0; }" {
		t.Errorf("LoadStyle() = %q", css)
	}

	page, err := loader.LoadPage("invoice", "invoice")
	if err != nil {
		t.Fatalf("LoadPage() error = %v", err)
	}
	if !strings.Contains(page, "{{.ClientName}}") {
		t.Errorf("LoadPage() = %q", page)
	}

	if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadPage("proposal", "page1_cover"); !errors.Is(err, ErrPageNotFound) {
		t.Errorf("LoadPage(absent set) error = %v, want ErrPageNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// TestResolver - Custom-First Fallback
// ---------------------------------------------------------------------------

func TestResolver_EmbeddedOnly(t *testing.T) {
	t.Parallel()

	r, err := NewResolver("")
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	if r.HasCustomLoader() {
		t.Error("HasCustomLoader() = true with empty path")
	}
	if _, err := r.LoadStyle(BaseStyle); err != nil {
		t.Errorf("LoadStyle() error = %v", err)
	}
}

func TestResolver_CustomOverridesEmbedded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "styles/base.css", "/* custom */")

	r, err := NewResolver(dir)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	if !r.HasCustomLoader() {
		t.Fatal("HasCustomLoader() = false")
	}

	css, err := r.LoadStyle(BaseStyle)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if css != "/* custom */" {
		t.Errorf("LoadStyle() = %q, want the custom stylesheet", css)
	}
}

func TestResolver_FallsBackToEmbedded(t *testing.T) {
	t.Parallel()

	// The custom directory exists but holds no assets.
	r, err := NewResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	css, err := r.LoadStyle(BaseStyle)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if !strings.Contains(css, ".page") {
		t.Error("fallback did not return the embedded stylesheet")
	}

	page, err := r.LoadPage("proposal", "page1_cover")
	if err != nil {
		t.Fatalf("LoadPage() error = %v", err)
	}
	if page == "" {
		t.Error("fallback returned empty page")
	}
}

func TestResolver_ValidationErrorsDoNotFallBack(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "styles/base.css", "/* custom */")

	r, err := NewResolver(dir)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	if _, err := r.LoadStyle("../base"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle(traversal) error = %v, want ErrInvalidAssetName", err)
	}

	if _, err := NewResolver(filepath.Join(dir, "absent")); !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("NewResolver(absent) error = %v, want ErrInvalidBasePath", err)
	}
}
