// Package cli provides the command-line interface for cmapgen.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/viscm-web/cmapgen/internal/colormap"
	"github.com/viscm-web/cmapgen/internal/config"
	"github.com/viscm-web/cmapgen/internal/logging"
	"github.com/viscm-web/cmapgen/internal/version"
)

var (
	// Global config file flag
	cfgFile string

	// initErr holds a config file error until a command can report it.
	initErr error

	// Settings and logger shared by all commands, loaded before each run.
	cfg    config.Config
	logger hclog.Logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "cmapgen",
		Short: "Prepare colormap assets for the visualization site",
		Long: `cmapgen prepares the static assets of the colormap visualization site.

It extracts matplotlib colormaps into JSON files with an index, downloads the
matplotlib license that covers the data, renders the Open Graph preview
banner and captures a screenshot of the running site.

Settings are read from .cmapgen.yaml (current directory or $HOME), CMAPGEN_*
environment variables and command-line flags, in increasing priority.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}
)

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .cmapgen.yaml in . or $HOME)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	configFlag(rootCmd.PersistentFlags(), "verbose", "verbose")
	configFlag(rootCmd.PersistentFlags(), "quiet", "quiet")

	// Colormap source flags, shared by every command that samples colormaps
	rootCmd.PersistentFlags().String("listed-url", colormap.DefaultListedURL, "upstream _cm_listed.py location")
	rootCmd.PersistentFlags().String("cache-dir", "", "source cache directory (default: user cache dir)")
	rootCmd.PersistentFlags().Bool("offline", false, "do not download the listed colormap source")
	rootCmd.PersistentFlags().BoolVar(&refreshSource, "refresh", false, "download the listed colormap source even if cached")
	configFlag(rootCmd.PersistentFlags(), "listed-url", "listed_url")
	configFlag(rootCmd.PersistentFlags(), "cache-dir", "cache_dir")
	configFlag(rootCmd.PersistentFlags(), "offline", "offline")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(licenseCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// initConfig reads the config file and environment.
func initConfig() {
	initErr = config.Init(cfgFile)
}

// loadConfig decodes settings for the command about to run.
func loadConfig(cmd *cobra.Command, args []string) error {
	if initErr != nil {
		return initErr
	}
	if err := bindConfigFlags(cmd); err != nil {
		return err
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded
	logger = logging.New("cmapgen", cfg.Verbose, cfg.Quiet)

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", "path", used)
	}
	return nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
