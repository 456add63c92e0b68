package colormap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestBuildCatalog(t *testing.T) {
	table := Catalog{
		{CategoryPerceptuallyUniform, []string{"viridis", "plasma"}},
		{CategoryCyclic, []string{"twilight"}},
		{CategoryMiscellaneous, []string{"jet", "gist_ncar", "flag"}},
	}

	got := BuildCatalog(table, []string{"flag", "jet", "viridis"})

	want := Catalog{
		{CategoryPerceptuallyUniform, []string{"viridis"}},
		{CategoryCyclic, []string{}},
		{CategoryMiscellaneous, []string{"jet", "flag"}},
	}

	if len(got) != len(want) {
		t.Fatalf("len(catalog) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Category != want[i].Category {
			t.Errorf("catalog[%d].Category = %s, want %s", i, got[i].Category, want[i].Category)
		}
		if !slices.Equal(got[i].Names, want[i].Names) {
			t.Errorf("catalog[%d].Names = %v, want %v", i, got[i].Names, want[i].Names)
		}
	}
}

func TestBuildCatalogBuiltinCoverage(t *testing.T) {
	reg := NewRegistry(NewBuiltinProvider(), NewGradientProvider())
	catalog := BuildCatalog(DefaultTable(), reg.Names())

	// Only the twilight pair needs the upstream listed data.
	listedOnly := []string{"twilight", "twilight_shifted"}
	for _, name := range DefaultTable().Names() {
		_, found := catalog.CategoryOf(name)
		if want := !slices.Contains(listedOnly, name); found != want {
			t.Errorf("%s in catalog = %v, want %v", name, found, want)
		}
	}
	if got, want := catalog.Len(), DefaultTable().Len()-len(listedOnly); got != want {
		t.Errorf("catalog.Len() = %d, want %d", got, want)
	}

	// Every catalog identifier resolves.
	for _, name := range catalog.Names() {
		if _, err := reg.Lookup(name); err != nil {
			t.Errorf("Lookup(%q) error = %v", name, err)
		}
	}
}

func TestBuiltinAnchorTables(t *testing.T) {
	p := NewBuiltinProvider()

	tests := []struct {
		name string
		t    float64
		want RGB
	}{
		{"coolwarm", 0, RGB{0.2298057, 0.298717966, 0.753683153}},
		{"coolwarm", 1, RGB{0.705673158, 0.01555616, 0.150232812}},
		{"pink", 0, RGB{0.117851, 0, 0}},
		{"pink", 1, RGB{1, 1, 1}},
		{"gist_earth", 1, RGB{0.9922, 0.9843, 0.9843}},
		{"nipy_spectral", 0, RGB{0, 0, 0}},
		{"nipy_spectral", 1, RGB{0.8, 0.8, 0.8}},
		{"gist_ncar", 0, RGB{0, 0, 0.502}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := p.Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.name, err)
			}
			got, err := fn.At(tt.t)
			if err != nil {
				t.Fatalf("At(%v) error = %v", tt.t, err)
			}
			for _, pair := range [][2]float64{{got.R, tt.want.R}, {got.G, tt.want.G}, {got.B, tt.want.B}} {
				if diff := pair[0] - pair[1]; diff > 1e-6 || diff < -1e-6 {
					t.Errorf("%s.At(%v) = %v, want %v", tt.name, tt.t, got, tt.want)
					break
				}
			}
		})
	}
}

func TestCatalogLookups(t *testing.T) {
	catalog := DefaultTable()

	if got := len(catalog); got != 7 {
		t.Errorf("len(DefaultTable()) = %d, want 7", got)
	}
	if got := catalog.Len(); got != 83 {
		t.Errorf("Len() = %d, want 83", got)
	}

	names, ok := catalog.Get(CategoryCyclic)
	if !ok || !slices.Equal(names, []string{"twilight", "twilight_shifted", "hsv"}) {
		t.Errorf("Get(cyclic) = %v, %v", names, ok)
	}

	cat, ok := catalog.CategoryOf("Spectral")
	if !ok || cat != CategoryDiverging {
		t.Errorf("CategoryOf(Spectral) = %s, %v, want diverging", cat, ok)
	}
	if _, ok := catalog.CategoryOf("nope"); ok {
		t.Error("CategoryOf(nope) should not be found")
	}
}

func TestCatalogJSONOrder(t *testing.T) {
	data, err := json.Marshal(DefaultTable())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(data)

	last := -1
	for _, c := range Categories() {
		idx := strings.Index(out, `"`+string(c)+`":`)
		if idx < 0 {
			t.Fatalf("category %s missing from %s", c, out)
		}
		if idx < last {
			t.Errorf("category %s out of order", c)
		}
		last = idx
	}

	var decoded Catalog
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !slices.Equal(decoded.Names(), DefaultTable().Names()) {
		t.Error("decoded catalog names differ from the default table")
	}
	for i, entry := range decoded {
		if entry.Category != Categories()[i] {
			t.Errorf("decoded[%d] = %s, want %s", i, entry.Category, Categories()[i])
		}
	}
}

func TestCatalogJSONEmptyCategory(t *testing.T) {
	data, err := json.Marshal(Catalog{{CategoryCyclic, nil}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(data), `{"cyclic":[]}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestCatalogValidate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr bool
	}{
		{"default", DefaultTable(), false},
		{"unknown category", Catalog{{"fancy", []string{"jet"}}}, true},
		{"duplicate category", Catalog{{CategoryCyclic, nil}, {CategoryCyclic, nil}}, true},
		{"unsafe name", Catalog{{CategoryCyclic, []string{"../hsv"}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCatalogFile(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "catalog.yaml")
	content := `- category: perceptually_uniform
  names: [viridis, magma]
- category: miscellaneous
  names:
    - jet
`
	if err := os.WriteFile(valid, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	catalog, err := LoadCatalogFile(valid)
	if err != nil {
		t.Fatalf("LoadCatalogFile() error = %v", err)
	}
	if len(catalog) != 2 {
		t.Fatalf("len(catalog) = %d, want 2", len(catalog))
	}
	if !slices.Equal(catalog.Names(), []string{"viridis", "magma", "jet"}) {
		t.Errorf("Names() = %v", catalog.Names())
	}

	invalid := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(invalid, []byte("- category: shiny\n  names: [jet]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalogFile(invalid); err == nil {
		t.Error("LoadCatalogFile() expected error for unknown category")
	}

	if _, err := LoadCatalogFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadCatalogFile() expected error for missing file")
	}
}

func TestLoadCatalogFileJSON(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{
			name:    "category object",
			content: `{"diverging": ["RdBu", "bwr"], "cyclic": ["hsv"]}`,
			want:    []string{"RdBu", "bwr", "hsv"},
		},
		{
			name:    "index file",
			content: `{"colormaps": [], "categories": {"sequential": ["Greys"]}, "metadata": {"total_count": 0}}`,
			want:    []string{"Greys"},
		},
		{
			name:    "unknown category",
			content: `{"shiny": ["jet"]}`,
			wantErr: true,
		},
		{
			name:    "not an object",
			content: `["jet"]`,
			wantErr: true,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, fmt.Sprintf("catalog%d.json", i))
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			catalog, err := LoadCatalogFile(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadCatalogFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !slices.Equal(catalog.Names(), tt.want) {
				t.Errorf("Names() = %v, want %v", catalog.Names(), tt.want)
			}
		})
	}
}
