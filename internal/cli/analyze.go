package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/viscm-web/cmapgen/internal/analysis"
	"github.com/viscm-web/cmapgen/internal/colormap"
)

var (
	// Analyze command flags
	analyzePoints    int
	analyzeFormat    string
	analyzeGrayscale bool
	analyzeLab       bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <colormap>...",
	Short: "Report perceptual statistics for colormaps",
	Long: `Report how evenly colormaps change in perceived colour.

For each colormap the CIEDE2000 difference and the L* (lightness) change
between adjacent samples are summarised as total length, RMS, maximum and
minimum. A perceptually uniform colormap has a small RMS relative to its
total length and monotonic lightness.

With --grayscale, each colormap is also analysed after removing its chroma,
which shows how it reads when printed in black and white. With --lab, JSON
output carries the a*, b* and L* coordinates of every sample.

Examples:
  # Compare viridis with jet
  cmapgen analyze viridis jet

  # Emit JSON with 64 samples each
  cmapgen analyze -n 64 -f json magma inferno

  # Check how jet reads in grayscale
  cmapgen analyze --grayscale jet`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVarP(&analyzePoints, "points", "n", colormap.DefaultPoints, "number of samples")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "table", "output format (table, json)")
	analyzeCmd.Flags().BoolVar(&analyzeGrayscale, "grayscale", false, "also analyse the grayscale conversion of each colormap")
	analyzeCmd.Flags().BoolVar(&analyzeLab, "lab", false, "include CIELAB coordinates per sample (json only)")
}

// runAnalyze executes the analyze command.
func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeFormat != "table" && analyzeFormat != "json" {
		return fmt.Errorf("unsupported format: %s (supported: table, json)", analyzeFormat)
	}
	if analyzeLab && analyzeFormat != "json" {
		return fmt.Errorf("--lab requires --format json")
	}

	provider := buildProvider(commandContext(cmd))

	var results []analysis.Result
	failed := 0
	for _, name := range args {
		colors, err := colormap.Sample(provider, name, analyzePoints)
		if err != nil {
			printFail(cmd.ErrOrStderr(), "%s: %v", name, err)
			failed++
			continue
		}
		res := analysis.Analyze(name, colors)
		if analyzeLab {
			res = res.WithCoordinates(colors)
		}
		results = append(results, res)

		if analyzeGrayscale {
			gray := analysis.Grayscale(colors)
			res := analysis.Analyze(name+" (grayscale)", gray)
			if analyzeLab {
				res = res.WithCoordinates(gray)
			}
			results = append(results, res)
		}
	}

	if err := writeAnalysis(cmd.OutOrStdout(), results, analyzeFormat); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d colormaps could not be analysed", failed, len(args))
	}
	return nil
}

// writeAnalysis prints results as a table or JSON.
func writeAnalysis(w io.Writer, results []analysis.Result, format string) error {
	if format == "json" {
		if results == nil {
			results = []analysis.Result{}
		}
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	if len(results) == 0 {
		return nil
	}

	t := NewTable([]string{"NAME", "SAMPLES", "DE2000 TOTAL", "DE2000 RMS", "DE2000 MAX", "L TOTAL", "L MIN", "MONOTONIC L"})
	for col := 1; col <= 6; col++ {
		t.AlignRight(col)
	}
	for _, r := range results {
		t.AddRow([]string{
			r.Name,
			strconv.Itoa(r.Samples),
			formatStat(r.Perceptual.TotalLength),
			formatStat(r.Perceptual.RMSDeviation),
			formatStat(r.Perceptual.MaxDelta),
			formatStat(r.Lightness.TotalLength),
			formatStat(r.Lightness.MinDelta),
			strconv.FormatBool(r.MonotonicLightness),
		})
	}
	fmt.Fprint(w, t.Render())
	return nil
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
