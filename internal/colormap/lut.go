package colormap

import (
	"fmt"
	"math"
)

// LUTSize is the lookup table resolution used for segmented and functional colormaps.
const LUTSize = 256

// LUT is a lookup table colormap. Evaluation follows matplotlib: t is scaled by
// the table length and truncated, values at or beyond 1 map to the last entry
// and values below 0 map to the first.
type LUT []RGB

// At returns the table entry for t.
func (l LUT) At(t float64) (RGB, error) {
	if len(l) == 0 {
		return RGB{}, fmt.Errorf("%w: empty lookup table", ErrEvaluation)
	}
	if math.IsNaN(t) {
		return RGB{}, fmt.Errorf("%w: t is NaN", ErrEvaluation)
	}

	n := len(l)
	x := t * float64(n)
	switch {
	case x < 0:
		return l[0], nil
	case x >= float64(n):
		return l[n-1], nil
	}
	return l[int(x)], nil
}

// Segment is one anchor of a piecewise linear channel: at X the channel jumps
// from Y0 (approaching from the left) to Y1 (leaving to the right).
type Segment struct {
	X, Y0, Y1 float64
}

// SegmentData holds the per-channel anchors of a linear segmented colormap.
type SegmentData struct {
	Red, Green, Blue []Segment
}

// ChannelFunc computes a channel value directly from x in [0, 1].
type ChannelFunc func(x float64) float64

// Stop places a colour at a position along a gradient.
type Stop struct {
	Pos   float64
	Color RGB
}

// linspace returns n evenly spaced values over [0, 1], with the last value
// pinned to exactly 1.
func linspace(n int) []float64 {
	xs := make([]float64, n)
	if n == 1 {
		return xs
	}
	step := 1.0 / float64(n-1)
	for i := range xs {
		xs[i] = float64(i) * step
	}
	xs[n-1] = 1
	return xs
}

// channelTable builds an n-entry table for one channel from its anchors.
func channelTable(n int, segs []Segment) ([]float64, error) {
	if len(segs) < 2 {
		return nil, fmt.Errorf("channel needs at least 2 anchors, got %d", len(segs))
	}
	if segs[0].X != 0 || segs[len(segs)-1].X != 1 {
		return nil, fmt.Errorf("channel anchors must start at x=0 and end at x=1")
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].X < segs[i-1].X {
			return nil, fmt.Errorf("channel anchors must be in increasing order")
		}
	}

	last := segs[len(segs)-1]
	if n == 1 {
		return []float64{clamp01(last.Y0)}, nil
	}

	xs := linspace(n)
	table := make([]float64, n)
	table[0] = clamp01(segs[0].Y1)
	table[n-1] = clamp01(last.Y0)

	for i := 1; i < n-1; i++ {
		x := xs[i]
		// First anchor with X >= x.
		k := 1
		for k < len(segs)-1 && segs[k].X < x {
			k++
		}
		lo, hi := segs[k-1], segs[k]
		width := hi.X - lo.X
		if width == 0 {
			table[i] = clamp01(hi.Y0)
			continue
		}
		distance := (x - lo.X) / width
		table[i] = clamp01(distance*(hi.Y0-lo.Y1) + lo.Y1)
	}
	return table, nil
}

// NewSegmentedLUT evaluates segment data into an n-entry lookup table.
func NewSegmentedLUT(data SegmentData, n int) (LUT, error) {
	if n < 1 {
		return nil, fmt.Errorf("lookup table size must be positive, got %d", n)
	}

	r, err := channelTable(n, data.Red)
	if err != nil {
		return nil, fmt.Errorf("red: %w", err)
	}
	g, err := channelTable(n, data.Green)
	if err != nil {
		return nil, fmt.Errorf("green: %w", err)
	}
	b, err := channelTable(n, data.Blue)
	if err != nil {
		return nil, fmt.Errorf("blue: %w", err)
	}

	lut := make(LUT, n)
	for i := range lut {
		lut[i] = RGB{R: r[i], G: g[i], B: b[i]}
	}
	return lut, nil
}

// NewFunctionalLUT evaluates per-channel functions into an n-entry lookup table.
func NewFunctionalLUT(red, green, blue ChannelFunc, n int) (LUT, error) {
	if n < 1 {
		return nil, fmt.Errorf("lookup table size must be positive, got %d", n)
	}

	lut := make(LUT, n)
	for i, x := range linspace(n) {
		c := RGB{R: red(x), G: green(x), B: blue(x)}
		if !c.IsFinite() {
			return nil, fmt.Errorf("%w: non-finite value at x=%g", ErrEvaluation, x)
		}
		lut[i] = c.Clamp()
	}
	return lut, nil
}

// SegmentsFromStops converts colour stops into segment data with continuous
// channels. Stop positions must start at 0, end at 1 and be non-decreasing.
func SegmentsFromStops(stops []Stop) SegmentData {
	var data SegmentData
	for _, s := range stops {
		data.Red = append(data.Red, Segment{s.Pos, s.Color.R, s.Color.R})
		data.Green = append(data.Green, Segment{s.Pos, s.Color.G, s.Color.G})
		data.Blue = append(data.Blue, Segment{s.Pos, s.Color.B, s.Color.B})
	}
	return data
}

// EvenStops spaces colours evenly over [0, 1].
func EvenStops(colors []RGB) []Stop {
	xs := linspace(len(colors))
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		stops[i] = Stop{Pos: xs[i], Color: c}
	}
	return stops
}

// NewGradientLUT builds a linearly interpolated lookup table through colours
// spaced evenly over [0, 1].
func NewGradientLUT(colors []RGB, n int) (LUT, error) {
	if len(colors) < 2 {
		return nil, fmt.Errorf("gradient needs at least 2 colours, got %d", len(colors))
	}
	return NewSegmentedLUT(SegmentsFromStops(EvenStops(colors)), n)
}
