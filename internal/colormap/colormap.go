// Package colormap provides colormap catalogs, colour function providers and
// the fixed-resolution sampling used to serialise colormaps for the web.
package colormap

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// DefaultPoints is the number of evenly spaced samples taken per colormap.
	DefaultPoints = 256

	// SourceMatplotlib tags records whose data follows matplotlib's definitions.
	SourceMatplotlib = "matplotlib"

	// TypeContinuous is the only record type currently emitted.
	TypeContinuous = "continuous"

	// LicenseNotice is written into the index metadata.
	LicenseNotice = "matplotlib license (see LICENSE/matplotlib.txt)"

	// decimals is the number of decimal places kept when serialising.
	decimals = 6
)

// RGB represents a colour with float channels in [0, 1].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// String returns the colour as "rgb(r, g, b)" with six decimals.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%.6f, %.6f, %.6f)", c.R, c.G, c.B)
}

// Hex returns the colour as an 8-bit hex string (e.g., "#440154").
func (c RGB) Hex() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Bytes returns the colour quantised to 8 bits per channel.
func (c RGB) Bytes() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

// Clamp limits every channel to [0, 1].
func (c RGB) Clamp() RGB {
	return RGB{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// Round6 rounds every channel to six decimal places.
func (c RGB) Round6() RGB {
	return RGB{R: round6(c.R), G: round6(c.G), B: round6(c.B)}
}

// IsFinite reports whether no channel is NaN or infinite.
func (c RGB) IsFinite() bool {
	return isFinite(c.R) && isFinite(c.G) && isFinite(c.B)
}

// Metadata describes where a record came from.
type Metadata struct {
	Source    string `json:"source"`
	NumPoints int    `json:"num_points"`
	Type      string `json:"type"`
	Category  string `json:"category,omitempty"`
}

// Record is a sampled colormap ready for serialisation.
type Record struct {
	Name     string   `json:"name"`
	Colors   []RGB    `json:"colors"`
	Metadata Metadata `json:"metadata"`
}

// IndexMetadata summarises an extraction run.
type IndexMetadata struct {
	TotalCount     int    `json:"total_count"`
	Source         string `json:"source"`
	ExtractionDate string `json:"extraction_date"`
	License        string `json:"license"`
}

// Index aggregates every record extracted in a run together with the catalog.
type Index struct {
	Colormaps  []Record      `json:"colormaps"`
	Categories Catalog       `json:"categories"`
	Metadata   IndexMetadata `json:"metadata"`
}

// NewIndex builds an index from the extracted records. The records slice is
// copied so later changes by the caller do not leak into the index.
func NewIndex(records []Record, catalog Catalog, extractionDate string) Index {
	colormaps := make([]Record, len(records))
	copy(colormaps, records)

	return Index{
		Colormaps:  colormaps,
		Categories: catalog,
		Metadata: IndexMetadata{
			TotalCount:     len(colormaps),
			Source:         SourceMatplotlib,
			ExtractionDate: extractionDate,
			License:        LicenseNotice,
		},
	}
}

// round6 rounds the exact decimal value of v half to even, as Python's
// round(v, 6) does. Scaling by 1e6 first would round the product instead.
func round6(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	if r == 0 {
		// Avoid serialising negative zero as "-0".
		return 0
	}
	return r
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
