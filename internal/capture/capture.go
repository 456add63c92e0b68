// Package capture takes a screenshot of the running visualization site with
// headless Chrome.
package capture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/hashicorp/go-hclog"
	ps "github.com/mitchellh/go-ps"

	"github.com/viscm-web/cmapgen/internal/logging"
)

// Defaults reproduce the published site preview.
const (
	DefaultURL      = "http://localhost:5173"
	DefaultSelector = ".visualization-grid"
	DefaultOutput   = "public/og-preview.png"
	DefaultTimeout  = 10 * time.Second
	DefaultSettle   = 3 * time.Second
	DefaultWidth    = 1200
	DefaultHeight   = 630
	DefaultScale    = 2.0

	// pngQuality makes chromedp encode the screenshot as PNG rather than JPEG.
	pngQuality = 100
)

// devServerNames are executables that usually serve the site during development.
var devServerNames = []string{"node", "vite", "bun", "deno"}

// Options configures a capture.
type Options struct {
	URL      string
	Selector string
	Output   string

	// Timeout bounds the wait for Selector to appear.
	Timeout time.Duration
	// Settle is the pause after Selector appears, letting charts finish drawing.
	Settle time.Duration

	Width  int
	Height int
	Scale  float64

	// ExecPath overrides the Chrome binary chromedp would find on PATH.
	ExecPath string

	Logger hclog.Logger
}

// DefaultOptions returns the settings used for the site's preview image.
func DefaultOptions() Options {
	return Options{
		URL:      DefaultURL,
		Selector: DefaultSelector,
		Output:   DefaultOutput,
		Timeout:  DefaultTimeout,
		Settle:   DefaultSettle,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Scale:    DefaultScale,
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.URL == "" {
		o.URL = d.URL
	}
	if o.Selector == "" {
		o.Selector = d.Selector
	}
	if o.Output == "" {
		o.Output = d.Output
	}
	if o.Timeout <= 0 {
		o.Timeout = d.Timeout
	}
	if o.Settle < 0 {
		o.Settle = 0
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Scale <= 0 {
		o.Scale = d.Scale
	}
	return o
}

// Result describes a written screenshot.
type Result struct {
	Path  string
	Bytes int
}

// Capture loads opts.URL in headless Chrome, waits for opts.Selector, pauses
// for opts.Settle and writes a full-page PNG to opts.Output. Browser and page
// errors are returned unchanged apart from wrapping.
func Capture(ctx context.Context, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	logger := logging.OrNull(opts.Logger)

	if found, name := DevServerRunning(); found {
		logger.Debug("dev server process found", "process", name)
	} else {
		logger.Warn("no dev server process found; start one with 'npm run dev' first", "url", opts.URL)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocatorOptions(opts)...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))
	defer cancelBrowser()

	logger.Info("capturing screenshot", "url", opts.URL, "selector", opts.Selector)

	var buf []byte
	if err := chromedp.Run(browserCtx, Tasks(opts, &buf)); err != nil {
		return nil, fmt.Errorf("failed to capture %s: %w", opts.URL, err)
	}

	if err := os.MkdirAll(filepath.Dir(opts.Output), 0o755); err != nil { // #nosec G301 - Public asset directory
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(opts.Output, buf, 0o644); err != nil { // #nosec G306 - Public asset
		return nil, fmt.Errorf("failed to write %s: %w", opts.Output, err)
	}

	logger.Info("screenshot saved", "path", opts.Output, "bytes", len(buf))
	return &Result{Path: opts.Output, Bytes: len(buf)}, nil
}

// Tasks returns the browser actions for a capture, storing the PNG in buf.
func Tasks(opts Options, buf *[]byte) chromedp.Tasks {
	opts = opts.withDefaults()
	return chromedp.Tasks{
		chromedp.EmulateViewport(int64(opts.Width), int64(opts.Height), chromedp.EmulateScale(opts.Scale)),
		chromedp.Navigate(opts.URL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			waitCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
			defer cancel()
			if err := chromedp.WaitReady(opts.Selector, chromedp.ByQuery).Do(waitCtx); err != nil {
				return fmt.Errorf("waiting for %q: %w", opts.Selector, err)
			}
			return nil
		}),
		chromedp.Sleep(opts.Settle),
		chromedp.FullScreenshot(buf, pngQuality),
	}
}

func allocatorOptions(opts Options) []chromedp.ExecAllocatorOption {
	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	allocOpts = append(allocOpts, chromedp.WindowSize(opts.Width, opts.Height))
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}
	return allocOpts
}

// DevServerRunning reports whether a likely dev server process is running,
// and its executable name.
func DevServerRunning() (bool, string) {
	procs, err := ps.Processes()
	if err != nil {
		return false, ""
	}
	names := make([]string, 0, len(procs))
	for _, p := range procs {
		names = append(names, p.Executable())
	}
	return findDevServer(names)
}

func findDevServer(executables []string) (bool, string) {
	for _, exe := range executables {
		if isDevServer(exe) {
			return true, exe
		}
	}
	return false, ""
}

// isDevServer matches executable names such as "node", "node.exe" or "bun-1.1".
func isDevServer(executable string) bool {
	name := strings.ToLower(filepath.Base(executable))
	name = strings.TrimSuffix(name, ".exe")
	for _, candidate := range devServerNames {
		if name == candidate || strings.HasPrefix(name, candidate+"-") {
			return true
		}
	}
	return false
}
