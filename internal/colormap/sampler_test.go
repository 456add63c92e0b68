package colormap

import (
	"errors"
	"math"
	"slices"
	"testing"
)

type funcColormap func(t float64) (RGB, error)

func (f funcColormap) At(t float64) (RGB, error) { return f(t) }

type stubProvider struct {
	name  string
	funcs map[string]ColorFunc
}

func (p stubProvider) Name() string { return p.name }

func (p stubProvider) Names() []string {
	var names []string
	for name := range p.funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (p stubProvider) Lookup(name string) (ColorFunc, error) {
	fn, ok := p.funcs[name]
	if !ok {
		return nil, ErrUnknownColormap
	}
	return fn, nil
}

func TestSampleGray(t *testing.T) {
	colors, err := Sample(NewBuiltinProvider(), "gray", DefaultPoints)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}

	if len(colors) != DefaultPoints {
		t.Fatalf("len(colors) = %d, want %d", len(colors), DefaultPoints)
	}
	if colors[0] != (RGB{0, 0, 0}) {
		t.Errorf("colors[0] = %v, want black", colors[0])
	}
	if colors[255] != (RGB{1, 1, 1}) {
		t.Errorf("colors[255] = %v, want white", colors[255])
	}
	if got, want := colors[128].R, 0.501961; got != want {
		t.Errorf("colors[128].R = %v, want %v", got, want)
	}
}

func TestSampleBuiltinEndpoints(t *testing.T) {
	tests := []struct {
		name        string
		first, last RGB
	}{
		{"binary", RGB{1, 1, 1}, RGB{0, 0, 0}},
		{"jet", RGB{0, 0, 0.5}, RGB{0.5, 0, 0}},
		{"hsv", RGB{1, 0, 0}, RGB{1, 0, 0.09375}},
		{"bwr", RGB{0, 0, 1}, RGB{1, 0, 0}},
		{"cubehelix", RGB{0, 0, 0}, RGB{1, 1, 1}},
		{"Greys", RGB{1, 1, 1}, RGB{0, 0, 0}},
		{"tab10", RGB{0.121569, 0.466667, 0.705882}, RGB{0.090196, 0.745098, 0.811765}},
	}

	p := NewBuiltinProvider()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors, err := Sample(p, tt.name, DefaultPoints)
			if err != nil {
				t.Fatalf("Sample(%q) error = %v", tt.name, err)
			}
			if colors[0] != tt.first {
				t.Errorf("first = %v, want %v", colors[0], tt.first)
			}
			if colors[len(colors)-1] != tt.last {
				t.Errorf("last = %v, want %v", colors[len(colors)-1], tt.last)
			}
		})
	}
}

func TestSampleEveryBuiltin(t *testing.T) {
	p := NewBuiltinProvider()
	for _, name := range p.Names() {
		t.Run(name, func(t *testing.T) {
			colors, err := Sample(p, name, DefaultPoints)
			if err != nil {
				t.Fatalf("Sample(%q) error = %v", name, err)
			}
			for i, c := range colors {
				for _, v := range []float64{c.R, c.G, c.B} {
					if v < 0 || v > 1 {
						t.Fatalf("colors[%d] = %v out of range", i, c)
					}
					if v != math.Round(v*1e6)/1e6 {
						t.Fatalf("colors[%d] = %v not rounded to 6 places", i, c)
					}
				}
			}
		})
	}
}

func TestSampleDeterministic(t *testing.T) {
	p := NewRegistry(NewBuiltinProvider(), NewGradientProvider())
	for _, name := range []string{"viridis", "prism", "terrain", "Spectral"} {
		a, err := Sample(p, name, DefaultPoints)
		if err != nil {
			t.Fatalf("Sample(%q) error = %v", name, err)
		}
		b, err := Sample(p, name, DefaultPoints)
		if err != nil {
			t.Fatalf("Sample(%q) error = %v", name, err)
		}
		if !slices.Equal(a, b) {
			t.Errorf("Sample(%q) is not deterministic", name)
		}
	}
}

func TestSampleErrors(t *testing.T) {
	p := stubProvider{
		name: "stub",
		funcs: map[string]ColorFunc{
			"ok": funcColormap(func(t float64) (RGB, error) { return RGB{t, t, t}, nil }),
			"panics": funcColormap(func(t float64) (RGB, error) {
				panic("boom")
			}),
			"nan": funcColormap(func(t float64) (RGB, error) {
				return RGB{math.NaN(), 0, 0}, nil
			}),
			"fails": funcColormap(func(t float64) (RGB, error) {
				return RGB{}, errors.New("table missing")
			}),
		},
	}

	tests := []struct {
		name    string
		cmap    string
		n       int
		wantErr error
	}{
		{"unknown", "nope", 256, ErrUnknownColormap},
		{"panic", "panics", 256, ErrEvaluation},
		{"non-finite", "nan", 256, ErrEvaluation},
		{"function error", "fails", 256, ErrEvaluation},
		{"one sample", "ok", 1, ErrInvalidSampleCount},
		{"zero samples", "ok", 0, ErrInvalidSampleCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sample(p, tt.cmap, tt.n)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Sample() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSampleClips(t *testing.T) {
	p := stubProvider{
		name: "stub",
		funcs: map[string]ColorFunc{
			"wide": funcColormap(func(t float64) (RGB, error) {
				return RGB{-0.5, 1.5, 0.1234567}, nil
			}),
		},
	}

	colors, err := Sample(p, "wide", 2)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	want := RGB{0, 1, 0.123457}
	if colors[0] != want {
		t.Errorf("colors[0] = %v, want %v", colors[0], want)
	}
}

func TestExtract(t *testing.T) {
	rec, err := Extract(NewBuiltinProvider(), "jet", 16, CategoryMiscellaneous)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if rec.Name != "jet" {
		t.Errorf("Name = %q, want jet", rec.Name)
	}
	if len(rec.Colors) != 16 {
		t.Errorf("len(Colors) = %d, want 16", len(rec.Colors))
	}
	want := Metadata{Source: SourceMatplotlib, NumPoints: 16, Type: TypeContinuous, Category: "miscellaneous"}
	if rec.Metadata != want {
		t.Errorf("Metadata = %+v, want %+v", rec.Metadata, want)
	}
}

func TestRegistryPriority(t *testing.T) {
	listed := NewListedProvider(map[string][]RGB{
		"viridis": {{0.267004, 0.004874, 0.329415}, {0.993248, 0.906157, 0.143936}},
	})

	tests := []struct {
		name       string
		providers  []Provider
		wantSource string
	}{
		{"listed wins", []Provider{listed, NewBuiltinProvider(), NewGradientProvider()}, SourceMatplotlib},
		{"gradient fallback", []Provider{NewBuiltinProvider(), NewGradientProvider()}, SourceColorgrad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry(tt.providers...)
			rec, err := Extract(reg, "viridis", DefaultPoints, CategoryPerceptuallyUniform)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if rec.Metadata.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", rec.Metadata.Source, tt.wantSource)
			}
		})
	}
}

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry(NewBuiltinProvider(), NewGradientProvider())
	names := reg.Names()

	if !slices.IsSorted(names) {
		t.Error("Names() should be sorted")
	}
	for _, want := range []string{"viridis", "turbo", "jet", "tab20c"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() missing %q", want)
		}
	}
	if len(slices.Compact(slices.Clone(names))) != len(names) {
		t.Error("Names() contains duplicates")
	}

	if _, err := reg.Lookup("does_not_exist"); !errors.Is(err, ErrUnknownColormap) {
		t.Errorf("Lookup() error = %v, want ErrUnknownColormap", err)
	}

	// Second lookup is served from the cache.
	first, err := reg.Lookup("jet")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	second, err := reg.Lookup("jet")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	a, _ := first.At(0.3)
	b, _ := second.At(0.3)
	if a != b {
		t.Errorf("cached lookup = %v, want %v", b, a)
	}
}

func TestGradientProvider(t *testing.T) {
	p := NewGradientProvider()
	colors, err := Sample(p, "viridis", DefaultPoints)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}

	// colorgrad approximates matplotlib's table closely at the ends.
	first, last := colors[0], colors[len(colors)-1]
	if math.Abs(first.R-0.267) > 0.03 || math.Abs(first.B-0.329) > 0.03 {
		t.Errorf("first = %v, want about (0.267, 0.005, 0.329)", first)
	}
	if math.Abs(last.R-0.993) > 0.03 || math.Abs(last.G-0.906) > 0.03 {
		t.Errorf("last = %v, want about (0.993, 0.906, 0.144)", last)
	}

	if _, err := p.Lookup("jet"); !errors.Is(err, ErrUnknownColormap) {
		t.Errorf("Lookup(jet) error = %v, want ErrUnknownColormap", err)
	}
}
