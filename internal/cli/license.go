package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/viscm-web/cmapgen/internal/license"
)

// licenseCmd represents the license command
var licenseCmd = &cobra.Command{
	Use:   "license",
	Short: "Download the matplotlib license",
	Long: `Download the matplotlib license that covers the extracted colormap data.

The license is written to <license-dir>/matplotlib.txt together with a
README.md recording where it came from.`,
	Args: cobra.NoArgs,
	RunE: runLicense,
}

func init() {
	licenseCmd.Flags().String("license-url", license.DefaultURL, "license location")
	licenseCmd.Flags().String("dir", license.DefaultDir, "directory for the license")

	configFlag(licenseCmd.Flags(), "license-url", "license_url")
	configFlag(licenseCmd.Flags(), "dir", "license_dir")
}

// runLicense executes the license command.
func runLicense(cmd *cobra.Command, args []string) error {
	return fetchLicense(commandContext(cmd), cmd.ErrOrStderr())
}

// fetchLicense downloads the license, printing manual instructions on failure.
func fetchLicense(ctx context.Context, w io.Writer) error {
	if !cfg.Quiet {
		fmt.Fprintln(w, "\nDownloading matplotlib license...")
	}

	if err := cfg.ValidateLicense(); err != nil {
		printFail(w, "Invalid license settings: %v", err)
		fmt.Fprintln(w, license.ManualInstructions(cfg.LicenseURL))
		return fmt.Errorf("invalid configuration: %w", err)
	}

	res, err := license.Fetch(ctx, license.Options{
		URL:    cfg.LicenseURL,
		Dir:    cfg.LicenseDir,
		Logger: logger,
	})
	if err != nil {
		printFail(w, "Failed to download license: %v", err)
		fmt.Fprintln(w, license.ManualInstructions(cfg.LicenseURL))
		return err
	}

	printOK(w, "Downloaded matplotlib license to %s", res.LicensePath)
	printOK(w, "Created license README at %s", res.ReadmePath)
	return nil
}
