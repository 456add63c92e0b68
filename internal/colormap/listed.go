package colormap

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// DefaultListedURL points at matplotlib's listed colormap definitions, pinned
// to a known commit.
const DefaultListedURL = "https://raw.githubusercontent.com/matplotlib/matplotlib/3a8ad1d68a9f4a6f81cc2773619889154f5b6c57/lib/matplotlib/_cm_listed.py"

var (
	listedHeader = regexp.MustCompile(`^_(\w+)_data\s*=\s*\[`)
	listedTriple = regexp.MustCompile(`\[\s*([-+]?[\d.]+(?:[eE][-+]?\d+)?)\s*,\s*([-+]?[\d.]+(?:[eE][-+]?\d+)?)\s*,\s*([-+]?[\d.]+(?:[eE][-+]?\d+)?)\s*\]`)
)

// ParseListed extracts every `_<name>_data = [[r, g, b], ...]` table from a
// matplotlib _cm_listed.py source. Tables without any colour are skipped.
func ParseListed(r io.Reader) (map[string][]RGB, error) {
	tables := make(map[string][]RGB)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		current string
		colors  []RGB
	)
	flush := func() {
		if current != "" && len(colors) > 0 {
			tables[current] = colors
		}
		current, colors = "", nil
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if m := listedHeader.FindStringSubmatch(line); m != nil {
			flush()
			current = m[1]
			// Data may start on the header line itself.
			line = line[len(m[0]):]
		} else if current == "" {
			continue
		}

		for _, triple := range listedTriple.FindAllStringSubmatch(line, -1) {
			c, err := parseTriple(triple[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			colors = append(colors, c)
		}

		if strings.TrimSpace(line) == "]" || strings.HasSuffix(strings.TrimSpace(line), "]]") {
			flush()
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listed colormap source: %w", err)
	}
	flush()

	if len(tables) == 0 {
		return nil, fmt.Errorf("no colormap tables found")
	}
	return tables, nil
}

func parseTriple(fields []string) (RGB, error) {
	var v [3]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid channel value %q: %w", f, err)
		}
		v[i] = x
	}
	return RGB{R: v[0], G: v[1], B: v[2]}, nil
}

// ShiftedTwilight derives twilight_shifted from the twilight table: the table
// is rotated by half its length and then reversed.
func ShiftedTwilight(twilight []RGB) []RGB {
	half := len(twilight) / 2
	shifted := make([]RGB, 0, len(twilight))
	shifted = append(shifted, twilight[half:]...)
	shifted = append(shifted, twilight[:half]...)
	slices.Reverse(shifted)
	return shifted
}

// ListedProvider serves colormaps defined by explicit colour tables.
type ListedProvider struct {
	tables map[string]LUT
}

// NewListedProvider creates a provider over parsed listed tables. When a
// twilight table is present, twilight_shifted is derived from it.
func NewListedProvider(tables map[string][]RGB) *ListedProvider {
	luts := make(map[string]LUT, len(tables)+1)
	for name, colors := range tables {
		if len(colors) == 0 {
			continue
		}
		luts[name] = LUT(slices.Clone(colors))
	}
	if twilight, ok := luts["twilight"]; ok {
		if _, exists := luts["twilight_shifted"]; !exists {
			luts["twilight_shifted"] = LUT(ShiftedTwilight(twilight))
		}
	}
	return &ListedProvider{tables: luts}
}

// LoadListedProvider parses a _cm_listed.py source into a provider.
func LoadListedProvider(r io.Reader) (*ListedProvider, error) {
	tables, err := ParseListed(r)
	if err != nil {
		return nil, err
	}
	return NewListedProvider(tables), nil
}

// Name returns the source tag.
func (p *ListedProvider) Name() string {
	return SourceMatplotlib
}

// Names returns the identifiers of every parsed table, sorted.
func (p *ListedProvider) Names() []string {
	names := make([]string, 0, len(p.tables))
	for name := range p.tables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the table for name.
func (p *ListedProvider) Lookup(name string) (ColorFunc, error) {
	lut, ok := p.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColormap, name)
	}
	return lut, nil
}
