package colormap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/viscm-web/cmapgen/internal/security"
)

// Category names a fixed group of related colormaps.
type Category string

const (
	CategoryPerceptuallyUniform Category = "perceptually_uniform"
	CategorySequential          Category = "sequential"
	CategorySequential2         Category = "sequential2"
	CategoryDiverging           Category = "diverging"
	CategoryCyclic              Category = "cyclic"
	CategoryQualitative         Category = "qualitative"
	CategoryMiscellaneous       Category = "miscellaneous"
)

// Categories returns every category in catalog order.
func Categories() []Category {
	return []Category{
		CategoryPerceptuallyUniform,
		CategorySequential,
		CategorySequential2,
		CategoryDiverging,
		CategoryCyclic,
		CategoryQualitative,
		CategoryMiscellaneous,
	}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	return slices.Contains(Categories(), c)
}

// CatalogEntry is one category with its ordered identifiers.
type CatalogEntry struct {
	Category Category `yaml:"category"`
	Names    []string `yaml:"names"`
}

// Catalog is an ordered mapping from category to colormap identifiers.
// It encodes to a JSON object whose keys keep catalog order.
type Catalog []CatalogEntry

// DefaultTable returns the preferred identifiers per category, before they are
// filtered against what a provider supports.
func DefaultTable() Catalog {
	return Catalog{
		{CategoryPerceptuallyUniform, []string{
			"viridis", "plasma", "inferno", "magma", "cividis",
		}},
		{CategorySequential, []string{
			"Greys", "Purples", "Blues", "Greens", "Oranges", "Reds",
			"YlOrBr", "YlOrRd", "OrRd", "PuRd", "RdPu", "BuPu",
			"GnBu", "PuBu", "YlGnBu", "PuBuGn", "BuGn", "YlGn",
		}},
		{CategorySequential2, []string{
			"binary", "gist_yarg", "gist_gray", "gray", "bone", "pink",
			"spring", "summer", "autumn", "winter", "cool", "Wistia",
			"hot", "afmhot", "gist_heat", "copper",
		}},
		{CategoryDiverging, []string{
			"PiYG", "PRGn", "BrBG", "PuOr", "RdGy", "RdBu",
			"RdYlBu", "RdYlGn", "Spectral", "coolwarm", "bwr", "seismic",
		}},
		{CategoryCyclic, []string{
			"twilight", "twilight_shifted", "hsv",
		}},
		{CategoryQualitative, []string{
			"Pastel1", "Pastel2", "Paired", "Accent",
			"Dark2", "Set1", "Set2", "Set3",
			"tab10", "tab20", "tab20b", "tab20c",
		}},
		{CategoryMiscellaneous, []string{
			"flag", "prism", "ocean", "gist_earth", "terrain", "gist_stern",
			"gnuplot", "gnuplot2", "CMRmap", "cubehelix", "brg",
			"gist_rainbow", "rainbow", "jet", "turbo", "nipy_spectral",
			"gist_ncar",
		}},
	}
}

// BuildCatalog filters table down to the identifiers present in available.
// Order is preserved and unsupported names are dropped silently. A category
// left without identifiers is kept with an empty list.
func BuildCatalog(table Catalog, available []string) Catalog {
	supported := make(map[string]struct{}, len(available))
	for _, name := range available {
		supported[name] = struct{}{}
	}

	catalog := make(Catalog, 0, len(table))
	for _, entry := range table {
		names := make([]string, 0, len(entry.Names))
		for _, name := range entry.Names {
			if _, ok := supported[name]; ok {
				names = append(names, name)
			}
		}
		catalog = append(catalog, CatalogEntry{Category: entry.Category, Names: names})
	}
	return catalog
}

// Len returns the total number of identifiers across all categories.
func (c Catalog) Len() int {
	n := 0
	for _, entry := range c {
		n += len(entry.Names)
	}
	return n
}

// Names returns every identifier in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, 0, c.Len())
	for _, entry := range c {
		names = append(names, entry.Names...)
	}
	return names
}

// Get returns the identifiers listed under category.
func (c Catalog) Get(category Category) ([]string, bool) {
	for _, entry := range c {
		if entry.Category == category {
			return entry.Names, true
		}
	}
	return nil, false
}

// CategoryOf returns the first category listing name.
func (c Catalog) CategoryOf(name string) (Category, bool) {
	for _, entry := range c {
		if slices.Contains(entry.Names, name) {
			return entry.Category, true
		}
	}
	return "", false
}

// MarshalJSON encodes the catalog as an object keyed by category, in order.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(entry.Category))
		if err != nil {
			return nil, err
		}
		names := entry.Names
		if names == nil {
			names = []string{}
		}
		value, err := json.Marshal(names)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a catalog object, keeping the key order of the input.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("catalog must be a JSON object")
	}

	var catalog Catalog
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected catalog key %v", tok)
		}
		var names []string
		if err := dec.Decode(&names); err != nil {
			return fmt.Errorf("category %s: %w", key, err)
		}
		catalog = append(catalog, CatalogEntry{Category: Category(key), Names: names})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = catalog
	return nil
}

// Validate checks categories are known and identifiers are usable as file names.
func (c Catalog) Validate() error {
	seen := make(map[Category]bool, len(c))
	for _, entry := range c {
		if !entry.Category.IsValid() {
			return fmt.Errorf("unknown category: %s (valid: %v)", entry.Category, Categories())
		}
		if seen[entry.Category] {
			return fmt.Errorf("duplicate category: %s", entry.Category)
		}
		seen[entry.Category] = true

		for _, name := range entry.Names {
			if err := security.ValidateIdentifier(name); err != nil {
				return fmt.Errorf("category %s: %w", entry.Category, err)
			}
		}
	}
	return nil
}

// LoadCatalogFile reads a catalog table from a YAML file of the form:
//
//	- category: perceptually_uniform
//	  names: [viridis, plasma]
//
// Files ending in .json hold a category object, either on its own or as the
// "categories" member of a previously written index.json.
func LoadCatalogFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified catalog path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var table Catalog
	if strings.EqualFold(filepath.Ext(path), ".json") {
		table, err = parseJSONCatalog(data)
	} else {
		err = yaml.Unmarshal(data, &table)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog file: %w", err)
	}
	return table, nil
}

func parseJSONCatalog(data []byte) (Catalog, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	if raw, ok := members["categories"]; ok {
		data = raw
	}

	var table Catalog
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	return table, nil
}
