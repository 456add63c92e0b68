// Package license downloads the upstream matplotlib license that covers the
// extracted colormap data.
package license

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/viscm-web/cmapgen/internal/logging"
	httputil "github.com/viscm-web/cmapgen/internal/util/http"
)

const (
	// DefaultURL is the upstream license location.
	DefaultURL = "https://raw.githubusercontent.com/matplotlib/matplotlib/main/LICENSE/LICENSE"

	// DefaultDir is the directory the license is written to.
	DefaultDir = "LICENSE"

	// FileName is the license file name inside the directory.
	FileName = "matplotlib.txt"

	// ReadmeName is the provenance note written next to the license.
	ReadmeName = "README.md"

	// SourceRepository is the upstream project the license belongs to.
	SourceRepository = "https://github.com/matplotlib/matplotlib"
)

// Options configures a license download.
type Options struct {
	// URL is the license location. If empty, DefaultURL is used.
	URL string

	// Dir is the output directory. If empty, DefaultDir is used.
	Dir string

	// Fetch configures the HTTP request.
	Fetch httputil.FetchOptions

	// Logger receives progress messages. If nil, nothing is logged.
	Logger hclog.Logger
}

// Result lists the files written by Fetch.
type Result struct {
	LicensePath string
	ReadmePath  string
	Bytes       int
}

// Fetch downloads the license and writes it together with a README that
// records where it came from. The README is only written once the license
// itself has been saved.
func Fetch(ctx context.Context, opts Options) (*Result, error) {
	url := opts.URL
	if url == "" {
		url = DefaultURL
	}
	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir
	}
	logger := logging.OrNull(opts.Logger)

	if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - License directory is part of the published project
		return nil, fmt.Errorf("failed to create license directory: %w", err)
	}

	logger.Debug("downloading license", "url", url)
	data, err := httputil.Fetch(ctx, url, opts.Fetch)
	if err != nil {
		return nil, fmt.Errorf("failed to download license: %w", err)
	}

	licensePath := filepath.Join(dir, FileName)
	if err := os.WriteFile(licensePath, data, 0o644); err != nil { // #nosec G306 - License file is published
		return nil, fmt.Errorf("failed to write license: %w", err)
	}
	logger.Debug("wrote license", "path", licensePath, "bytes", len(data))

	readmePath := filepath.Join(dir, ReadmeName)
	if err := os.WriteFile(readmePath, []byte(Readme(url)), 0o644); err != nil { // #nosec G306 - README is published
		return nil, fmt.Errorf("failed to write license README: %w", err)
	}

	return &Result{
		LicensePath: licensePath,
		ReadmePath:  readmePath,
		Bytes:       len(data),
	}, nil
}

// Readme returns the provenance note for a license downloaded from url.
func Readme(url string) string {
	var sb strings.Builder
	sb.WriteString("# Licenses\n\n")
	sb.WriteString("## " + FileName + "\n")
	sb.WriteString("This contains the license for matplotlib, which is the source of the colormap data used in this application.\n\n")
	sb.WriteString("The colormap data was extracted from matplotlib colormap definitions.\n")
	sb.WriteString("All colormap data retains matplotlib's original licensing terms.\n\n")
	sb.WriteString("Source: " + SourceRepository + "\n")
	sb.WriteString("License URL: " + url + "\n")
	return sb.String()
}

// ManualInstructions tells the operator how to fetch the license by hand.
func ManualInstructions(url string) string {
	if url == "" {
		url = DefaultURL
	}
	return "Please manually download the matplotlib license from:\n" + url
}
