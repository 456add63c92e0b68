// Package swatch renders colormaps as truecolor ANSI strips for terminal previews.
package swatch

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/viscm-web/cmapgen/internal/colormap"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"

	// DefaultWidth is the strip width in terminal cells.
	DefaultWidth = 48
)

// Enabled reports whether w is a terminal that should receive colour escapes.
// NO_COLOR disables swatches regardless of the terminal.
func Enabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Block returns a solid block of width cells in colour c.
func Block(c colormap.RGB, width int) string {
	if width <= 0 {
		width = 1
	}
	return bg(c) + strings.Repeat(" ", width) + ansiReset
}

// Strip renders colors as a strip of width cells. Each cell shows the sample
// nearest its centre, so the strip can be narrower or wider than the input.
func Strip(colors []colormap.RGB, width int) string {
	if len(colors) == 0 {
		return ""
	}
	if width <= 0 {
		width = DefaultWidth
	}

	var sb strings.Builder
	for i := range width {
		idx := int(math.Floor((float64(i) + 0.5) * float64(len(colors)) / float64(width)))
		idx = min(idx, len(colors)-1)
		sb.WriteString(bg(colors[idx]))
		sb.WriteByte(' ')
	}
	sb.WriteString(ansiReset)
	return sb.String()
}

// Label returns text on a background of colour c, with black or white text
// chosen for contrast.
func Label(c colormap.RGB, text string, width int) string {
	if width <= 0 {
		width = len(text)
	}

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		display = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	fg := colormap.RGB{R: 1, G: 1, B: 1}
	if luminance(c) > 0.5 {
		fg = colormap.RGB{}
	}
	return bg(c) + fgEscape(fg) + display + ansiReset
}

// luminance returns the WCAG relative luminance of c.
func luminance(c colormap.RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func bg(c colormap.RGB) string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
}

func fgEscape(c colormap.RGB) string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, r, g, b, ansiSuffix)
}
