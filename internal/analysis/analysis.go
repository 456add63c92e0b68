// Package analysis computes perceptual statistics for sampled colormaps in
// CIELAB space.
package analysis

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/viscm-web/cmapgen/internal/colormap"
)

// go-colorful scales L* and ΔE to [0, 1]; these helpers report them on the
// conventional 0-100 scale.
const labScale = 100

// Stats summarises a series of deltas between adjacent samples.
type Stats struct {
	// TotalLength is the sum of absolute deltas.
	TotalLength float64 `json:"total_length"`

	// RMSDeviation is the root mean square of the deltas.
	RMSDeviation float64 `json:"rms_deviation"`

	MaxDelta float64 `json:"max_delta"`
	MinDelta float64 `json:"min_delta"`
}

// Result holds the perceptual analysis of one colormap.
type Result struct {
	Name       string `json:"name"`
	Samples    int    `json:"samples"`
	Perceptual Stats  `json:"perceptual"`
	Lightness  Stats  `json:"lightness"`

	// MonotonicLightness reports whether L* never changes direction.
	MonotonicLightness bool `json:"monotonic_lightness"`

	Lab *Coordinates `json:"lab,omitempty"`
}

// Coordinates holds per-sample CIELAB coordinates, laid out for a 3D scatter plot.
type Coordinates struct {
	A []float64 `json:"a"`
	B []float64 `json:"b"`
	L []float64 `json:"l"`
}

// WithCoordinates attaches the CIELAB coordinates of colors to the result.
func (r Result) WithCoordinates(colors []colormap.RGB) Result {
	a, b, l := LabCoordinates(colors)
	r.Lab = &Coordinates{A: a, B: b, L: l}
	return r
}

func toColorful(c colormap.RGB) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Lab converts an sRGB colour to CIELAB (D65) with L* in [0, 100].
func Lab(c colormap.RGB) (l, a, b float64) {
	l, a, b = toColorful(c).Lab()
	return l * labScale, a * labScale, b * labScale
}

// DeltaE returns the CIEDE2000 colour difference between two colours.
func DeltaE(c1, c2 colormap.RGB) float64 {
	return toColorful(c1).DistanceCIEDE2000(toColorful(c2)) * labScale
}

// PerceptualDeltas returns ΔE2000 between each pair of adjacent colours.
func PerceptualDeltas(colors []colormap.RGB) []float64 {
	if len(colors) < 2 {
		return nil
	}
	deltas := make([]float64, len(colors)-1)
	for i := range deltas {
		deltas[i] = DeltaE(colors[i], colors[i+1])
	}
	return deltas
}

// LightnessDeltas returns the signed change in L* between adjacent colours.
func LightnessDeltas(colors []colormap.RGB) []float64 {
	if len(colors) < 2 {
		return nil
	}
	deltas := make([]float64, len(colors)-1)
	prev, _, _ := Lab(colors[0])
	for i := 1; i < len(colors); i++ {
		l, _, _ := Lab(colors[i])
		deltas[i-1] = l - prev
		prev = l
	}
	return deltas
}

// Summarize computes statistics over deltas. An empty series yields zeros.
func Summarize(deltas []float64) Stats {
	if len(deltas) == 0 {
		return Stats{}
	}

	stats := Stats{MaxDelta: deltas[0], MinDelta: deltas[0]}
	var sumSquares float64
	for _, d := range deltas {
		stats.TotalLength += math.Abs(d)
		sumSquares += d * d
		stats.MaxDelta = math.Max(stats.MaxDelta, d)
		stats.MinDelta = math.Min(stats.MinDelta, d)
	}
	stats.RMSDeviation = math.Sqrt(sumSquares / float64(len(deltas)))
	return stats
}

// Analyze computes the perceptual and lightness statistics of a colormap.
func Analyze(name string, colors []colormap.RGB) Result {
	lightness := LightnessDeltas(colors)
	return Result{
		Name:               name,
		Samples:            len(colors),
		Perceptual:         Summarize(PerceptualDeltas(colors)),
		Lightness:          Summarize(lightness),
		MonotonicLightness: monotonic(lightness),
	}
}

func monotonic(deltas []float64) bool {
	var up, down bool
	for _, d := range deltas {
		switch {
		case d > 0:
			up = true
		case d < 0:
			down = true
		}
	}
	return !(up && down)
}

// Grayscale removes chroma from each colour, keeping its L*. Results are
// clipped to the sRGB gamut.
func Grayscale(colors []colormap.RGB) []colormap.RGB {
	gray := make([]colormap.RGB, len(colors))
	for i, c := range colors {
		l, _, _ := toColorful(c).Lab()
		g := colorful.Lab(l, 0, 0)
		gray[i] = colormap.RGB{R: g.R, G: g.G, B: g.B}.Clamp()
	}
	return gray
}

// LabCoordinates returns the a*, b* and L* coordinates of each colour, laid
// out for a 3D scatter plot.
func LabCoordinates(colors []colormap.RGB) (a, b, l []float64) {
	a = make([]float64, len(colors))
	b = make([]float64, len(colors))
	l = make([]float64, len(colors))
	for i, c := range colors {
		l[i], a[i], b[i] = Lab(c)
	}
	return a, b, l
}
