package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viscm-web/cmapgen/internal/preview"
)

var (
	// Preview command flags
	previewTitle    string
	previewSubtitle string
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the Open Graph preview image",
	Long: `Render the 1200x630 Open Graph banner for the site.

The banner shows the site title, a viridis swatch and the feature list. Text
uses the configured font, then common system fonts, and finally the embedded
Go font when none can be loaded.

Examples:
  # Write public/og-preview.png
  cmapgen preview

  # Use a specific font and output path
  cmapgen preview --font /usr/share/fonts/TTF/Inter.ttf -o og.png`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	defaults := preview.DefaultOptions()

	previewCmd.Flags().StringP("output", "o", preview.DefaultOutput, "output PNG path")
	previewCmd.Flags().String("font", "", "TrueType font to try first")
	previewCmd.Flags().StringVar(&previewTitle, "title", defaults.Title, "banner title")
	previewCmd.Flags().StringVar(&previewSubtitle, "subtitle", defaults.Subtitle, "banner subtitle")

	configFlag(previewCmd.Flags(), "output", "preview.output")
	configFlag(previewCmd.Flags(), "font", "preview.font")
}

// runPreview executes the preview command.
func runPreview(cmd *cobra.Command, args []string) error {
	if cfg.Preview.Output == "" {
		return fmt.Errorf("preview output path must not be empty")
	}

	opts := preview.DefaultOptions()
	opts.FontPath = cfg.Preview.Font
	opts.Title = previewTitle
	opts.Subtitle = previewSubtitle
	opts.Logger = logger

	if err := preview.WritePNG(cfg.Preview.Output, opts); err != nil {
		return fmt.Errorf("failed to create preview image: %w", err)
	}

	printOK(cmd.ErrOrStderr(), "OG image created: %s", cfg.Preview.Output)
	return nil
}
