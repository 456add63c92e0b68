package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/viscm-web/cmapgen/internal/colormap"
	httputil "github.com/viscm-web/cmapgen/internal/util/http"
	"github.com/viscm-web/cmapgen/internal/util/sourcecache"
)

// refreshSource forces the listed colormap source to be downloaded again.
var refreshSource bool

// configKeyAnnotation marks a flag with the config key it overrides.
const configKeyAnnotation = "cmapgen_config_key"

// configFlag records that flag name overrides config key. Several commands may
// override the same key; only the running command's flags are bound.
func configFlag(flags *pflag.FlagSet, name, key string) {
	if err := flags.SetAnnotation(name, configKeyAnnotation, []string{key}); err != nil {
		panic(fmt.Sprintf("annotating flag %s: %v", name, err))
	}
}

// bindConfigFlags binds the annotated flags of cmd, including inherited
// persistent flags, so they take priority over file and environment.
func bindConfigFlags(cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		keys, ok := f.Annotations[configKeyAnnotation]
		if !ok || len(keys) == 0 || bindErr != nil {
			return
		}
		if err := viper.BindPFlag(keys[0], f); err != nil {
			bindErr = fmt.Errorf("binding flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}

// buildProvider assembles the colormap providers in priority order: the
// upstream listed tables, the built-in tables, then the gradient fallback.
// An unavailable listed source is logged and skipped.
func buildProvider(ctx context.Context) *colormap.Registry {
	var providers []colormap.Provider

	if cfg.Offline {
		logger.Info("offline mode, listed colormaps come from the gradient fallback")
	} else {
		listed, err := loadListed(ctx)
		if err != nil {
			logger.Warn("listed colormap source unavailable, using gradient fallback", "url", cfg.ListedURL, "error", err)
		} else {
			providers = append(providers, listed)
		}
	}

	providers = append(providers, colormap.NewBuiltinProvider(), colormap.NewGradientProvider())
	return colormap.NewRegistry(providers...)
}

func loadListed(ctx context.Context) (*colormap.ListedProvider, error) {
	res, err := sourcecache.Get(ctx, cfg.ListedURL, sourcecache.Options{
		Dir:            cfg.CacheDir,
		AllowOverwrite: refreshSource,
		Fetch:          httputil.FetchOptions{},
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded listed colormap source", "path", res.Path, "cached", res.Hit)

	return colormap.LoadListedProvider(bytes.NewReader(res.Data))
}

// progressWriter returns where operator progress goes, or nil when quiet.
func progressWriter(w io.Writer) io.Writer {
	if cfg.Quiet {
		return nil
	}
	return w
}

// printOK writes a ✓ line unless quiet.
func printOK(w io.Writer, format string, args ...any) {
	if cfg.Quiet {
		return
	}
	fmt.Fprintf(w, "✓ "+format+"\n", args...)
}

// printFail writes a ✗ line.
func printFail(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "✗ "+format+"\n", args...)
}
