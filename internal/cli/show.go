package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/viscm-web/cmapgen/internal/colormap"
	"github.com/viscm-web/cmapgen/internal/swatch"
)

var (
	// Show command flags
	showPoints int
	showFormat string
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <colormap>",
	Short: "Print the samples of one colormap",
	Long: `Sample a single colormap and print the colours.

Formats:
  hex   one #rrggbb colour per line (with a swatch on a colour terminal)
  rgb   one rgb(r, g, b) colour per line
  json  the record that extract would write
  ts    a TypeScript RGB[] constant for use in the site sources

Examples:
  # Print viridis as a TypeScript constant
  cmapgen show viridis -f ts

  # Print 16 hex colours of magma
  cmapgen show magma -n 16`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVarP(&showPoints, "points", "n", colormap.DefaultPoints, "number of samples")
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "hex", "output format (hex, rgb, json, ts)")
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	provider := buildProvider(commandContext(cmd))

	category, _ := colormap.DefaultTable().CategoryOf(name)
	rec, err := colormap.Extract(provider, name, showPoints, category)
	if err != nil {
		return fmt.Errorf("failed to sample %s: %w", name, err)
	}

	out := cmd.OutOrStdout()
	if showFormat == "hex" && swatch.Enabled(out) {
		for _, c := range rec.Colors {
			fmt.Fprintf(out, "%s  %s\n", swatch.Block(c, 4), c.Hex())
		}
		return nil
	}

	output, err := formatRecord(rec, showFormat)
	if err != nil {
		return err
	}
	fmt.Fprint(out, output)
	return nil
}

// formatRecord renders a sampled colormap in the requested format.
func formatRecord(rec colormap.Record, format string) (string, error) {
	colors := rec.Colors
	var sb strings.Builder

	switch format {
	case "hex":
		for _, c := range colors {
			sb.WriteString(c.Hex() + "\n")
		}
	case "rgb":
		for _, c := range colors {
			sb.WriteString(c.String() + "\n")
		}
	case "json":
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		sb.Write(data)
		sb.WriteString("\n")
	case "ts":
		fmt.Fprintf(&sb, "const %s: RGB[] = [\n", tsIdentifier(rec.Name))
		for i, c := range colors {
			fmt.Fprintf(&sb, "  {r: %s, g: %s, b: %s}", tsNumber(c.R), tsNumber(c.G), tsNumber(c.B))
			if i < len(colors)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("];\n")
		fmt.Fprintf(&sb, "\n// Found %d colors\n", len(colors))
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json, ts)", format)
	}

	return sb.String(), nil
}

// tsIdentifier converts a colormap name such as "gist_heat" to
// "officialGistHeatColors".
func tsIdentifier(name string) string {
	var sb strings.Builder
	sb.WriteString("official")
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	sb.WriteString("Colors")
	return sb.String()
}

// tsNumber formats v the way Python prints a float: shortest round-trip
// digits, a trailing ".0" on whole numbers and exponent form outside
// [1e-4, 1e16).
func tsNumber(v float64) string {
	if abs := math.Abs(v); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
