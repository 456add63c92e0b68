package colormap

import (
	"errors"
	"math"
	"testing"
)

func TestLUTAt(t *testing.T) {
	lut := LUT{{0, 0, 0}, {0.5, 0.5, 0.5}, {1, 1, 1}}

	tests := []struct {
		name string
		t    float64
		want RGB
	}{
		{"start", 0, RGB{0, 0, 0}},
		{"below zero", -0.5, RGB{0, 0, 0}},
		{"first bin", 0.3, RGB{0, 0, 0}},
		{"middle bin", 0.5, RGB{0.5, 0.5, 0.5}},
		{"last bin", 0.9, RGB{1, 1, 1}},
		{"end", 1, RGB{1, 1, 1}},
		{"above one", 2, RGB{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lut.At(tt.t)
			if err != nil {
				t.Fatalf("At(%v) error = %v", tt.t, err)
			}
			if got != tt.want {
				t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestLUTAtErrors(t *testing.T) {
	if _, err := (LUT{}).At(0.5); !errors.Is(err, ErrEvaluation) {
		t.Errorf("empty LUT error = %v, want ErrEvaluation", err)
	}
	if _, err := (LUT{{1, 1, 1}}).At(math.NaN()); !errors.Is(err, ErrEvaluation) {
		t.Errorf("NaN error = %v, want ErrEvaluation", err)
	}
}

func TestLinspace(t *testing.T) {
	xs := linspace(5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("linspace(5)[%d] = %v, want %v", i, xs[i], want[i])
		}
	}

	if got := linspace(1); len(got) != 1 || got[0] != 0 {
		t.Errorf("linspace(1) = %v, want [0]", got)
	}
}

func TestChannelTable(t *testing.T) {
	tests := []struct {
		name string
		segs []Segment
		want []float64
	}{
		{
			name: "linear ramp",
			segs: seg(0, 0, 0, 1, 1, 1),
			want: []float64{0, 0.25, 0.5, 0.75, 1},
		},
		{
			name: "discontinuity",
			segs: seg(0, 0, 0, 0.5, 0, 1, 1, 1, 1),
			want: []float64{0, 0, 0, 1, 1},
		},
		{
			name: "clipped",
			segs: seg(0, -1, -1, 1, 2, 2),
			want: []float64{0, 0, 0.5, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := channelTable(5, tt.segs)
			if err != nil {
				t.Fatalf("channelTable() error = %v", err)
			}
			for i := range tt.want {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("channelTable()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestChannelTableInvalid(t *testing.T) {
	tests := []struct {
		name string
		segs []Segment
	}{
		{"too few anchors", seg(0, 0, 0)},
		{"does not start at zero", seg(0.1, 0, 0, 1, 1, 1)},
		{"does not end at one", seg(0, 0, 0, 0.9, 1, 1)},
		{"decreasing", seg(0, 0, 0, 0.6, 1, 1, 0.4, 1, 1, 1, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := channelTable(5, tt.segs); err == nil {
				t.Error("channelTable() expected error")
			}
		})
	}
}

func TestNewFunctionalLUT(t *testing.T) {
	ident := func(x float64) float64 { return x }
	double := func(x float64) float64 { return 2 * x }

	lut, err := NewFunctionalLUT(ident, double, ident, 3)
	if err != nil {
		t.Fatalf("NewFunctionalLUT() error = %v", err)
	}
	want := LUT{{0, 0, 0}, {0.5, 1, 0.5}, {1, 1, 1}}
	for i := range want {
		if lut[i] != want[i] {
			t.Errorf("lut[%d] = %v, want %v", i, lut[i], want[i])
		}
	}

	nan := func(x float64) float64 { return math.NaN() }
	if _, err := NewFunctionalLUT(ident, nan, ident, 3); !errors.Is(err, ErrEvaluation) {
		t.Errorf("NaN channel error = %v, want ErrEvaluation", err)
	}
}

func TestNewGradientLUT(t *testing.T) {
	lut, err := NewGradientLUT([]RGB{{0, 0, 1}, {1, 1, 1}, {1, 0, 0}}, 5)
	if err != nil {
		t.Fatalf("NewGradientLUT() error = %v", err)
	}

	want := LUT{{0, 0, 1}, {0.5, 0.5, 1}, {1, 1, 1}, {1, 0.5, 0.5}, {1, 0, 0}}
	for i := range want {
		if lut[i] != want[i] {
			t.Errorf("lut[%d] = %v, want %v", i, lut[i], want[i])
		}
	}

	if _, err := NewGradientLUT([]RGB{{0, 0, 0}}, 5); err == nil {
		t.Error("NewGradientLUT() with one colour expected error")
	}
}
