// Package preview renders the Open Graph banner image for the colormap site.
package preview

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/viscm-web/cmapgen/internal/logging"
)

const (
	// Width and Height are the Open Graph image dimensions.
	Width  = 1200
	Height = 630

	// DefaultOutput is where the image is written.
	DefaultOutput = "public/og-preview.png"

	// FallbackFontName identifies the embedded font used when no file loads.
	FallbackFontName = "Go Regular"

	titleSize = 48
	bodySize  = 24

	margin         = 50
	gradientY      = 180
	gradientHeight = 80
	featuresY      = 320
	featureSpacing = 40
)

// ViridisStops is the nine-colour subset of viridis drawn as the banner swatch.
var ViridisStops = []string{
	"#440154", "#482777", "#3f4a8a", "#31678e", "#26838f",
	"#1f9d8a", "#6cce5a", "#b6de2b", "#fee825",
}

// defaultFontPaths are tried in order after the configured font.
var defaultFontPaths = []string{
	"/System/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

// Options configures the banner.
type Options struct {
	// FontPath is a TrueType font tried before the platform defaults.
	FontPath string

	Title    string
	Subtitle string
	Caption  string
	Features []string

	// Stops are the swatch colours as hex strings. If empty, ViridisStops is used.
	Stops []string

	// Logger receives the font decision. If nil, nothing is logged.
	Logger hclog.Logger
}

// DefaultOptions returns the banner text used by the site.
func DefaultOptions() Options {
	return Options{
		Title:    "Colormap Visualization",
		Subtitle: "Interactive colormap analysis with perceptual evaluation",
		Caption:  "Viridis Colormap",
		Features: []string{
			"• Perceptual derivative analysis (ΔE 2000)",
			"• Color vision deficiency simulation",
			"• Authentic Mt. St. Helens test data",
			"• 3D L*a*b* color space visualization",
		},
		Stops: ViridisStops,
	}
}

// Fonts holds the faces used for drawing and where they came from.
type Fonts struct {
	Title  font.Face
	Body   font.Face
	Source string
}

// LoadFonts loads the title and body faces from the first readable font in
// paths, falling back to the embedded Go Regular font.
func LoadFonts(paths []string) (Fonts, error) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		title, err := gg.LoadFontFace(path, titleSize)
		if err != nil {
			continue
		}
		body, err := gg.LoadFontFace(path, bodySize)
		if err != nil {
			continue
		}
		return Fonts{Title: title, Body: body, Source: path}, nil
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return Fonts{}, fmt.Errorf("failed to parse fallback font: %w", err)
	}
	return Fonts{
		Title:  truetype.NewFace(f, &truetype.Options{Size: titleSize}),
		Body:   truetype.NewFace(f, &truetype.Options{Size: bodySize}),
		Source: FallbackFontName,
	}, nil
}

// Render draws the banner.
func Render(opts Options) (image.Image, error) {
	logger := logging.OrNull(opts.Logger)

	stops := opts.Stops
	if len(stops) == 0 {
		stops = ViridisStops
	}

	fonts, err := LoadFonts(append([]string{opts.FontPath}, defaultFontPaths...))
	if err != nil {
		return nil, err
	}
	if fonts.Source == FallbackFontName {
		logger.Warn("no system font found, using embedded font", "font", fonts.Source)
	} else {
		logger.Debug("loaded font", "path", fonts.Source)
	}

	dc := gg.NewContext(Width, Height)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	drawText(dc, fonts.Title, "#213547", opts.Title, margin, 50)
	drawText(dc, fonts.Body, "#666666", opts.Subtitle, margin, 110)

	drawGradient(dc, stops)
	drawText(dc, fonts.Body, "#333333", opts.Caption, margin, gradientY+gradientHeight+20)

	for i, feature := range opts.Features {
		drawText(dc, fonts.Body, "#555555", feature, margin, float64(featuresY+i*featureSpacing))
	}

	return dc.Image(), nil
}

// drawText places s with its top-left corner at (x, y).
func drawText(dc *gg.Context, face font.Face, hex, s string, x, y float64) {
	if s == "" {
		return
	}
	dc.SetFontFace(face)
	dc.SetHexColor(hex)
	dc.DrawStringAnchored(s, x, y, 0, 1)
}

// drawGradient paints the stepwise swatch one 2px column at a time. Column i
// takes stop int(t*(n-1)) with t = i/(w-1), so the last stop only colours the
// final column.
func drawGradient(dc *gg.Context, stops []string) {
	width := Width - 2*margin
	for i := range width {
		t := float64(i) / float64(width-1)
		idx := min(int(t*float64(len(stops)-1)), len(stops)-1)

		dc.SetHexColor(stops[idx])
		dc.DrawRectangle(float64(margin+i), gradientY, 2, gradientHeight+1)
		dc.Fill()
	}
}

// WritePNG renders the banner and saves it to path, creating parent
// directories as needed.
func WritePNG(path string, opts Options) error {
	img, err := Render(opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { // #nosec G301 - Public asset directory
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 - Output path is chosen by the operator
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	encodeErr := png.Encode(f, img)
	closeErr := f.Close()
	if encodeErr != nil {
		return fmt.Errorf("failed to encode PNG: %w", encodeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to write %s: %w", path, closeErr)
	}
	return nil
}
