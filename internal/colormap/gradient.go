package colormap

import (
	"fmt"
	"slices"

	"github.com/mazznoer/colorgrad"
)

// SourceColorgrad tags records produced by the gradient fallback.
const SourceColorgrad = "colorgrad"

// gradientPresets maps identifiers to colorgrad preset constructors.
var gradientPresets = map[string]func() colorgrad.Gradient{
	"viridis": colorgrad.Viridis,
	"plasma":  colorgrad.Plasma,
	"inferno": colorgrad.Inferno,
	"magma":   colorgrad.Magma,
	"cividis": colorgrad.Cividis,
	"turbo":   colorgrad.Turbo,
}

// GradientProvider approximates the perceptually uniform colormaps with
// colorgrad presets. It is used when the listed tables are unavailable.
type GradientProvider struct{}

// NewGradientProvider creates a gradient provider.
func NewGradientProvider() *GradientProvider {
	return &GradientProvider{}
}

// Name returns the source tag.
func (p *GradientProvider) Name() string {
	return SourceColorgrad
}

// Names returns the preset identifiers, sorted.
func (p *GradientProvider) Names() []string {
	names := make([]string, 0, len(gradientPresets))
	for name := range gradientPresets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the preset gradient for name.
func (p *GradientProvider) Lookup(name string) (ColorFunc, error) {
	preset, ok := gradientPresets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColormap, name)
	}
	return gradientFunc{grad: preset()}, nil
}

type gradientFunc struct {
	grad colorgrad.Gradient
}

func (g gradientFunc) At(t float64) (RGB, error) {
	c := g.grad.At(t)
	return RGB{R: c.R, G: c.G, B: c.B}, nil
}
