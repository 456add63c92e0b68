package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/viscm-web/cmapgen/internal/colormap"
	"github.com/viscm-web/cmapgen/internal/extract"
	"github.com/viscm-web/cmapgen/internal/license"
)

var (
	// Extract command flags
	extractSkipLicense bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract matplotlib colormaps to JSON",
	Long: `Extract every catalogued matplotlib colormap into a JSON file.

Each colormap is sampled at evenly spaced points and written to
<output-dir>/<name>.json. An index.json listing every extracted colormap and
the category catalog is written alongside. Colormaps that cannot be resolved
or evaluated are reported and skipped; the run continues.

After extraction the matplotlib license is downloaded into the license
directory. A failed download is reported with manual instructions and does
not fail the command.

Examples:
  # Extract into public/colormaps (default)
  cmapgen extract

  # Extract 64 samples per colormap into another directory
  cmapgen extract -n 64 -o site/static/colormaps

  # Use only the bundled tables and skip the license download
  cmapgen extract --offline --skip-license

  # Restrict the catalog and write compressed index copies
  cmapgen extract --catalog catalog.yaml --precompress`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	flags := extractCmd.Flags()
	flags.StringP("output-dir", "o", "public/colormaps", "directory for colormap JSON files")
	flags.IntP("points", "n", colormap.DefaultPoints, "samples per colormap (at least 2)")
	flags.Bool("precompress", false, "also write index.json.gz and index.json.zst")
	flags.String("catalog", "", "YAML file overriding the category catalog")
	flags.String("license-dir", license.DefaultDir, "directory for the downloaded license")
	flags.BoolVar(&extractSkipLicense, "skip-license", false, "do not download the matplotlib license")

	configFlag(flags, "output-dir", "output_dir")
	configFlag(flags, "points", "points")
	configFlag(flags, "precompress", "precompress")
	configFlag(flags, "catalog", "catalog_file")
	configFlag(flags, "license-dir", "license_dir")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx := commandContext(cmd)
	out := cmd.ErrOrStderr()

	provider := buildProvider(ctx)
	catalog, err := loadCatalog(provider)
	if err != nil {
		return err
	}

	extractor := extract.New(provider, extract.Options{
		OutputDir:   cfg.OutputDir,
		Points:      cfg.Points,
		Catalog:     catalog,
		Precompress: cfg.Precompress,
		Logger:      logger,
		Progress:    progressWriter(out),
	})

	report, err := extractor.Run(ctx)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	printReport(out, report)

	if extractSkipLicense {
		return nil
	}
	// The license download never fails the extraction.
	_ = fetchLicense(ctx, out)
	return nil
}

// printReport summarises an extraction run.
func printReport(w io.Writer, report *extract.Report) {
	if !cfg.Quiet {
		fmt.Fprintln(w)
	}
	printOK(w, "Successfully extracted %d colormaps", report.Succeeded())
	printOK(w, "Saved to %s/", cfg.OutputDir)
	printOK(w, "Created index file at %s", report.IndexPath)
	for _, path := range report.CompressedPaths {
		printOK(w, "Created compressed index at %s", path)
	}

	if failed := report.Failed(); len(failed) > 0 {
		printFail(w, "Skipped %d colormaps (%d unknown, %d failed to evaluate)",
			len(failed), report.Unknown(), report.EvaluationFailures())
		for _, res := range failed {
			logger.Debug("skipped colormap", "name", res.Name, "error", res.Err)
		}
	}
}

// loadCatalog returns the category catalog filtered to what provider supports.
func loadCatalog(provider colormap.Provider) (colormap.Catalog, error) {
	table := colormap.DefaultTable()
	if cfg.CatalogFile != "" {
		loaded, err := colormap.LoadCatalogFile(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded catalog file", "path", cfg.CatalogFile, "colormaps", loaded.Len())
		table = loaded
	}
	return colormap.BuildCatalog(table, provider.Names()), nil
}

// commandContext returns the command's context, or a background context when
// the command was run without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
