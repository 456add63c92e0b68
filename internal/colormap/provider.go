package colormap

import (
	"errors"
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	// ErrUnknownColormap is returned when no provider knows an identifier.
	ErrUnknownColormap = errors.New("unknown colormap")

	// ErrEvaluation is returned when a colour function fails while being sampled.
	ErrEvaluation = errors.New("colormap evaluation failed")
)

// ColorFunc maps a scalar t in [0, 1] to a colour.
type ColorFunc interface {
	At(t float64) (RGB, error)
}

// Provider resolves colormap identifiers to colour functions.
type Provider interface {
	// Name returns the source tag recorded in extracted metadata.
	Name() string

	// Names returns every identifier the provider supports, sorted.
	Names() []string

	// Lookup returns the colour function for name, or an error wrapping
	// ErrUnknownColormap.
	Lookup(name string) (ColorFunc, error)
}

// SourceOf returns the source tag of the provider that resolves name. Providers
// that do not implement the optional Resolver interface report their own name.
func SourceOf(p Provider, name string) string {
	if r, ok := p.(Resolver); ok {
		if owner, ok := r.Resolve(name); ok {
			return owner.Name()
		}
	}
	return p.Name()
}

// Resolver is implemented by providers that delegate to other providers.
type Resolver interface {
	Resolve(name string) (Provider, bool)
}

// defaultCacheSize bounds the number of memoised colour functions.
const defaultCacheSize = 128

// Registry layers providers in priority order. The first provider that knows
// an identifier wins.
type Registry struct {
	providers []Provider
	cache     *lru.Cache[string, ColorFunc]
}

// NewRegistry creates a registry over the given providers, highest priority first.
func NewRegistry(providers ...Provider) *Registry {
	cache, err := lru.New[string, ColorFunc](defaultCacheSize)
	if err != nil {
		// Only returned for a non-positive size.
		panic(err)
	}

	return &Registry{
		providers: slices.Clone(providers),
		cache:     cache,
	}
}

// Name returns the registry source tag.
func (r *Registry) Name() string {
	return SourceMatplotlib
}

// Names returns the union of every provider's identifiers, sorted.
func (r *Registry) Names() []string {
	var names []string
	for _, p := range r.providers {
		names = append(names, p.Names()...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Resolve returns the provider that owns name.
func (r *Registry) Resolve(name string) (Provider, bool) {
	for _, p := range r.providers {
		if slices.Contains(p.Names(), name) {
			return p, true
		}
	}
	return nil, false
}

// Lookup returns the colour function for name from the highest priority provider.
func (r *Registry) Lookup(name string) (ColorFunc, error) {
	if fn, ok := r.cache.Get(name); ok {
		return fn, nil
	}

	p, ok := r.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColormap, name)
	}

	fn, err := p.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("provider %s: %w", p.Name(), err)
	}

	r.cache.Add(name, fn)
	return fn, nil
}
