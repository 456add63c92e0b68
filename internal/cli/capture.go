package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viscm-web/cmapgen/internal/capture"
)

var (
	// Capture command flags
	captureChrome string
)

// captureCmd represents the capture command
var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Screenshot the running site as the preview image",
	Long: `Capture a screenshot of the running visualization site with headless Chrome.

The page is loaded at a fixed window size and device scale factor. Once the
selector appears the command waits for the settle period, so charts can
finish drawing, then saves a PNG. The dev server must already be running.

Examples:
  # Start the dev server first, then capture public/og-preview.png
  npm run dev &
  cmapgen capture

  # Capture another page element with a longer wait
  cmapgen capture --selector "#app" --timeout 30s --settle 5s`,
	Args: cobra.NoArgs,
	RunE: runCapture,
}

func init() {
	d := capture.DefaultOptions()
	flags := captureCmd.Flags()
	flags.String("url", d.URL, "page to capture")
	flags.String("selector", d.Selector, "CSS selector to wait for")
	flags.StringP("output", "o", d.Output, "output PNG path")
	flags.Duration("timeout", d.Timeout, "maximum wait for the selector")
	flags.Duration("settle", d.Settle, "pause after the selector appears")
	flags.Int("width", d.Width, "window width in CSS pixels")
	flags.Int("height", d.Height, "window height in CSS pixels")
	flags.Float64("scale", d.Scale, "device scale factor")
	flags.StringVar(&captureChrome, "chrome", "", "Chrome or Chromium binary (default: search PATH)")

	for _, name := range []string{"url", "selector", "output", "timeout", "settle", "width", "height", "scale"} {
		configFlag(flags, name, "capture."+name)
	}
}

// runCapture executes the capture command. Browser errors fail the command.
func runCapture(cmd *cobra.Command, args []string) error {
	c := cfg.Capture
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	out := cmd.ErrOrStderr()
	if !cfg.Quiet {
		fmt.Fprintf(out, "Capturing %s (%dx%d @%gx)...\n", c.URL, c.Width, c.Height, c.Scale)
	}

	res, err := capture.Capture(commandContext(cmd), capture.Options{
		URL:      c.URL,
		Selector: c.Selector,
		Output:   c.Output,
		Timeout:  c.Timeout,
		Settle:   c.Settle,
		Width:    c.Width,
		Height:   c.Height,
		Scale:    c.Scale,
		ExecPath: captureChrome,
		Logger:   logger,
	})
	if err != nil {
		printFail(out, "Screenshot failed")
		return err
	}

	printOK(out, "Screenshot saved to %s", res.Path)
	return nil
}
