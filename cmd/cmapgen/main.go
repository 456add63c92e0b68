// cmapgen - colormap asset generator
//
// cmapgen extracts matplotlib colormaps to JSON, downloads the matching
// license and produces the Open Graph preview image for the colormap
// visualization site.
package main

import (
	"os"

	"github.com/viscm-web/cmapgen/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
