// Package extract samples every catalogued colormap and writes the JSON files
// consumed by the web client.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/viscm-web/cmapgen/internal/colormap"
	"github.com/viscm-web/cmapgen/internal/logging"
	"github.com/viscm-web/cmapgen/internal/security"
)

const (
	// IndexFileName is the aggregate file written after all colormaps.
	IndexFileName = "index.json"

	// DateLayout formats the extraction timestamp (UTC, seconds precision).
	DateLayout = "2006-01-02T15:04:05"
)

// Options configures an extraction run.
type Options struct {
	// OutputDir receives <name>.json files and the index.
	OutputDir string

	// Points is the number of samples per colormap.
	// If zero, colormap.DefaultPoints is used.
	Points int

	// Catalog lists the colormaps to extract, already filtered to what the
	// provider supports. If nil, the default table is filtered against the
	// provider's names.
	Catalog colormap.Catalog

	// Precompress also writes compressed copies of the index.
	Precompress bool

	// Now returns the extraction time. If nil, time.Now is used.
	Now func() time.Time

	// Logger receives structured diagnostics.
	Logger hclog.Logger

	// Progress receives operator progress lines. If nil, progress is discarded.
	Progress io.Writer
}

// Result is the outcome of extracting one colormap.
type Result struct {
	Category colormap.Category
	Name     string
	Record   *colormap.Record
	Path     string
	Err      error
}

// OK reports whether the colormap was extracted.
func (r Result) OK() bool {
	return r.Err == nil && r.Record != nil
}

// Report summarises an extraction run.
type Report struct {
	Results         []Result
	Catalog         colormap.Catalog
	IndexPath       string
	CompressedPaths []string
	ExtractionDate  string
}

// Succeeded returns the number of colormaps written.
func (r *Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failed returns the results that did not produce a record.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Unknown returns the number of identifiers no provider could resolve.
func (r *Report) Unknown() int {
	return r.countFailures(colormap.ErrUnknownColormap)
}

// EvaluationFailures returns the number of colormaps that failed while sampling.
func (r *Report) EvaluationFailures() int {
	return r.countFailures(colormap.ErrEvaluation)
}

func (r *Report) countFailures(target error) int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil && errors.Is(res.Err, target) {
			n++
		}
	}
	return n
}

// Records returns the extracted records in catalog order.
func (r *Report) Records() []colormap.Record {
	var records []colormap.Record
	for _, res := range r.Results {
		if res.OK() {
			records = append(records, *res.Record)
		}
	}
	return records
}

// Extractor runs the catalog → sampler → writer pipeline.
type Extractor struct {
	provider colormap.Provider
	opts     Options
	logger   hclog.Logger
	progress io.Writer
}

// New creates an extractor over provider.
func New(provider colormap.Provider, opts Options) *Extractor {
	if opts.Points == 0 {
		opts.Points = colormap.DefaultPoints
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Catalog == nil {
		opts.Catalog = colormap.BuildCatalog(colormap.DefaultTable(), provider.Names())
	}

	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}

	return &Extractor{
		provider: provider,
		opts:     opts,
		logger:   logging.OrNull(opts.Logger),
		progress: progress,
	}
}

// Run extracts every catalogued colormap. Per-colormap failures are recorded
// in the report and never stop the run; failing to write a file does.
func (e *Extractor) Run(ctx context.Context) (*Report, error) {
	if e.opts.OutputDir == "" {
		return nil, fmt.Errorf("output directory must not be empty")
	}
	if e.opts.Points < 2 {
		return nil, fmt.Errorf("%w: got %d", colormap.ErrInvalidSampleCount, e.opts.Points)
	}

	if err := os.MkdirAll(e.opts.OutputDir, 0o755); err != nil { // #nosec G301 - Output directory is served publicly
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	report := &Report{Catalog: e.opts.Catalog}
	fmt.Fprintln(e.progress, "Extracting matplotlib colormaps...")

	for _, entry := range e.opts.Catalog {
		fmt.Fprintf(e.progress, "\n--- %s ---\n", strings.ToUpper(string(entry.Category)))

		for _, name := range entry.Names {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			fmt.Fprintf(e.progress, "Extracting %s... ", name)
			res, err := e.extractOne(entry.Category, name)
			if err != nil {
				fmt.Fprintln(e.progress, "✗")
				return nil, err
			}
			if res.OK() {
				fmt.Fprintln(e.progress, "✓")
			} else {
				fmt.Fprintln(e.progress, "✗")
				e.logger.Warn("failed to extract colormap", "name", name, "category", entry.Category, "error", res.Err)
			}
			report.Results = append(report.Results, res)
		}
	}

	report.ExtractionDate = e.opts.Now().UTC().Format(DateLayout)
	index := colormap.NewIndex(report.Records(), e.opts.Catalog, report.ExtractionDate)

	indexPath := filepath.Join(e.opts.OutputDir, IndexFileName)
	data, err := marshal(index)
	if err != nil {
		return nil, fmt.Errorf("failed to encode index: %w", err)
	}
	if err := writeFile(indexPath, data); err != nil {
		return nil, err
	}
	report.IndexPath = indexPath

	if e.opts.Precompress {
		paths, err := writeCompressed(indexPath, data)
		if err != nil {
			return nil, err
		}
		report.CompressedPaths = paths
	}

	e.logger.Info("extraction finished",
		"extracted", report.Succeeded(),
		"unknown", report.Unknown(),
		"evaluation_failures", report.EvaluationFailures(),
		"index", indexPath)

	return report, nil
}

// extractOne samples and writes a single colormap. Only a write failure is
// returned as an error; sampling failures are carried in the result.
func (e *Extractor) extractOne(category colormap.Category, name string) (Result, error) {
	res := Result{Category: category, Name: name}

	if err := security.ValidateIdentifier(name); err != nil {
		res.Err = fmt.Errorf("%w: %w", colormap.ErrUnknownColormap, err)
		return res, nil
	}

	rec, err := colormap.Extract(e.provider, name, e.opts.Points, category)
	if err != nil {
		res.Err = err
		return res, nil
	}

	data, err := marshal(rec)
	if err != nil {
		res.Err = fmt.Errorf("%w: %w", colormap.ErrEvaluation, err)
		return res, nil
	}

	path := filepath.Join(e.opts.OutputDir, name+".json")
	if err := writeFile(path, data); err != nil {
		return res, err
	}

	e.logger.Debug("wrote colormap", "name", name, "path", path, "source", rec.Metadata.Source)
	res.Record = &rec
	res.Path = path
	return res, nil
}

// marshal encodes v as two-space indented JSON.
func marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - Output files are served publicly
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
