package colormap

import (
	"fmt"
	"slices"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// BuiltinProvider serves the colormaps whose definitions are embedded in the
// binary: segment data, functional formulae, ColorBrewer schemes and the
// qualitative tables. Lookup tables are built on first use.
type BuiltinProvider struct {
	mu   sync.Mutex
	luts map[string]LUT
}

// NewBuiltinProvider creates a provider over the embedded definitions.
func NewBuiltinProvider() *BuiltinProvider {
	return &BuiltinProvider{luts: make(map[string]LUT)}
}

// Name returns the source tag.
func (p *BuiltinProvider) Name() string {
	return SourceMatplotlib
}

// Names returns every embedded identifier, sorted.
func (p *BuiltinProvider) Names() []string {
	var names []string
	for name := range segmentedData {
		names = append(names, name)
	}
	for name := range stopData {
		names = append(names, name)
	}
	for name := range evenData {
		names = append(names, name)
	}
	for name := range evenHexData {
		names = append(names, name)
	}
	for name := range qualitativeData {
		names = append(names, name)
	}
	for name := range rgbFormulae {
		names = append(names, name)
	}
	for name := range functionalData {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the lookup table for name.
func (p *BuiltinProvider) Lookup(name string) (ColorFunc, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if lut, ok := p.luts[name]; ok {
		return lut, nil
	}

	lut, err := buildBuiltin(name)
	if err != nil {
		return nil, err
	}
	p.luts[name] = lut
	return lut, nil
}

func buildBuiltin(name string) (LUT, error) {
	if data, ok := segmentedData[name]; ok {
		return NewSegmentedLUT(data, LUTSize)
	}
	if stops, ok := stopData[name]; ok {
		return NewSegmentedLUT(SegmentsFromStops(stops), LUTSize)
	}
	if colors, ok := evenData[name]; ok {
		return NewGradientLUT(colors, LUTSize)
	}
	if hexes, ok := evenHexData[name]; ok {
		colors, err := parseHexColors(hexes)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return NewGradientLUT(colors, LUTSize)
	}
	if hexes, ok := qualitativeData[name]; ok {
		colors, err := parseHexColors(hexes)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return LUT(colors), nil
	}
	if formula, ok := rgbFormulae[name]; ok {
		return NewFunctionalLUT(
			gnuplotFuncs[formula[0]],
			gnuplotFuncs[formula[1]],
			gnuplotFuncs[formula[2]],
			LUTSize,
		)
	}
	if funcs, ok := functionalData[name]; ok {
		return NewFunctionalLUT(funcs[0], funcs[1], funcs[2], LUTSize)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownColormap, name)
}

// parseHexColors converts "#rrggbb" strings to colours.
func parseHexColors(hexes []string) ([]RGB, error) {
	colors := make([]RGB, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("invalid hex colour %q: %w", h, err)
		}
		colors[i] = RGB{R: c.R, G: c.G, B: c.B}
	}
	return colors, nil
}
