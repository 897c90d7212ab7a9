package docgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// stager abstracts artifact staging to allow fake injection in tests.
type stager interface {
	// Stage writes the composed HTML under a fresh unique ID and returns
	// the artifact naming both intermediate files.
	Stage(html string) (*Artifact, error)
}

// workdirStager stages artifacts in a local working directory. Every call
// generates a fresh uuid, so staged files are never overwritten and
// concurrent runs cannot collide.
type workdirStager struct {
	dir string
}

// Compile-time interface check.
var _ stager = (*workdirStager)(nil)

// Stage ensures the working directory exists and writes the HTML verbatim
// to {dir}/{id}.html. Disk and permission failures wrap ErrStagingFailed.
func (s *workdirStager) Stage(html string) (*Artifact, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating work dir: %v", ErrStagingFailed, err)
	}

	id := uuid.NewString()
	htmlPath := filepath.Join(s.dir, id+".html")

	// #nosec G306 -- intermediate HTML is not sensitive
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("%w: writing %s: %v", ErrStagingFailed, htmlPath, err)
	}

	return &Artifact{
		ID:       id,
		HTMLPath: htmlPath,
		PDFPath:  filepath.Join(s.dir, id+".pdf"),
	}, nil
}
