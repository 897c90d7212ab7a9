package docgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-docgen/internal/process"
)

// renderer abstracts PDF rendering from an HTML file to enable testing
// without a browser.
type renderer interface {
	RenderFile(ctx context.Context, htmlPath string) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ renderer = (*rodRenderer)(nil)

// A4 page dimensions in inches. Margins are zero: the templates own their
// page padding, and Chrome must not reserve any sheet border.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0
)

// rodRenderer implements renderer using go-rod headless Chrome.
// Rod automatically downloads Chromium on first run if not found.
// The browser is connected lazily and reused across renders; each render's
// page is strictly scoped to that call.
type rodRenderer struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

// newRodRenderer creates a rodRenderer with the given render timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
// Launch and connect failures wrap ErrBrowserUnavailable.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserUnavailable, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserUnavailable, err)
	}

	r.launcher = l
	r.browser = browser
	return nil
}

// Close releases browser resources on every exit path. After a graceful
// close, the process group is killed as a fallback so no Chrome child
// processes outlive the renderer.
func (r *rodRenderer) Close() error {
	if r.browser == nil {
		return nil
	}

	err := r.browser.Close()
	r.browser = nil

	if r.launcher != nil {
		pid := r.launcher.PID()
		r.launcher.Kill()
		if pid > 0 {
			process.KillProcessGroup(pid)
		}
		r.launcher = nil
	}

	return err
}

// RenderFile opens a local HTML file in headless Chrome and exports it as a
// paginated A4 PDF with zero margins and background graphics included.
// The page is closed on every exit path.
func (r *rodRenderer) RenderFile(ctx context.Context, htmlPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	// Navigate to the local file URL so relative asset references resolve
	// against the staged file, with no network fetch involved.
	absPath, err := filepath.Abs(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving %s: %v", ErrExportFailed, htmlPath, err)
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + absPath})
	if err != nil {
		return nil, fmt.Errorf("%w: creating page: %v", ErrBrowserUnavailable, err)
	}
	defer page.Close()

	// Honor the tighter of the renderer timeout and the context deadline.
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: after %s: %v", ErrRenderTimeout, timeout, err)
		}
		return nil, fmt.Errorf("%w: loading page: %v", ErrExportFailed, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrExportFailed, err)
	}

	return pdfBuf, nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
