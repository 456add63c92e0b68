package colormap

import (
	"errors"
	"strings"
	"testing"
)

const listedSource = `from .colors import ListedColormap

_magma_data = [[0.001462, 0.000466, 0.013866],
               [0.002258, 0.001295, 0.018331],
               [0.987053, 0.991438, 0.749504]]

_viridis_data = [
    [0.267004, 0.004874, 0.329415],
    [0.268510, 0.009605, 0.335427],
    [0.993248, 0.906157, 0.143936]
]

_twilight_data = [[0.1, 0.1, 0.1], [0.2, 0.2, 0.2], [0.3, 0.3, 0.3], [0.4, 0.4, 0.4]]

_twilight_shifted_data = (_twilight_data[len(_twilight_data)//2:] +
                          _twilight_data[:len(_twilight_data)//2])
_twilight_shifted_data.reverse()

cmaps = {}
for (name, data) in (('magma', _magma_data), ('viridis', _viridis_data)):
    cmaps[name] = ListedColormap(data, name=name)
`

func TestParseListed(t *testing.T) {
	tables, err := ParseListed(strings.NewReader(listedSource))
	if err != nil {
		t.Fatalf("ParseListed() error = %v", err)
	}

	tests := []struct {
		name  string
		count int
		first RGB
		last  RGB
	}{
		{"magma", 3, RGB{0.001462, 0.000466, 0.013866}, RGB{0.987053, 0.991438, 0.749504}},
		{"viridis", 3, RGB{0.267004, 0.004874, 0.329415}, RGB{0.993248, 0.906157, 0.143936}},
		{"twilight", 4, RGB{0.1, 0.1, 0.1}, RGB{0.4, 0.4, 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors, ok := tables[tt.name]
			if !ok {
				t.Fatalf("table %q not found", tt.name)
			}
			if len(colors) != tt.count {
				t.Fatalf("len = %d, want %d", len(colors), tt.count)
			}
			if colors[0] != tt.first {
				t.Errorf("first = %v, want %v", colors[0], tt.first)
			}
			if colors[len(colors)-1] != tt.last {
				t.Errorf("last = %v, want %v", colors[len(colors)-1], tt.last)
			}
		})
	}

	if len(tables) != 3 {
		t.Errorf("found %d tables, want 3", len(tables))
	}
}

func TestParseListedEmpty(t *testing.T) {
	if _, err := ParseListed(strings.NewReader("print('hello')\n")); err == nil {
		t.Error("ParseListed() expected error for source without tables")
	}
}

func TestShiftedTwilight(t *testing.T) {
	in := []RGB{{0.1, 0, 0}, {0.2, 0, 0}, {0.3, 0, 0}, {0.4, 0, 0}}
	want := []RGB{{0.2, 0, 0}, {0.1, 0, 0}, {0.4, 0, 0}, {0.3, 0, 0}}

	got := ShiftedTwilight(in)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ShiftedTwilight()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if in[0] != (RGB{0.1, 0, 0}) {
		t.Error("ShiftedTwilight() modified its input")
	}
}

func TestListedProviderViridis(t *testing.T) {
	p, err := LoadListedProvider(strings.NewReader(listedSource))
	if err != nil {
		t.Fatalf("LoadListedProvider() error = %v", err)
	}

	names := p.Names()
	want := []string{"magma", "twilight", "twilight_shifted", "viridis"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Names() = %v, want %v", names, want)
	}

	rec, err := Extract(p, "viridis", DefaultPoints, CategoryPerceptuallyUniform)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if rec.Colors[0] != (RGB{0.267004, 0.004874, 0.329415}) {
		t.Errorf("colors[0] = %v, want viridis start", rec.Colors[0])
	}
	if rec.Colors[255] != (RGB{0.993248, 0.906157, 0.143936}) {
		t.Errorf("colors[255] = %v, want viridis end", rec.Colors[255])
	}
	if rec.Metadata.Category != string(CategoryPerceptuallyUniform) {
		t.Errorf("category = %q, want perceptually_uniform", rec.Metadata.Category)
	}

	if _, err := p.Lookup("jet"); !errors.Is(err, ErrUnknownColormap) {
		t.Errorf("Lookup(jet) error = %v, want ErrUnknownColormap", err)
	}
}
