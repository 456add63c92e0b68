package colormap

import (
	"errors"
	"fmt"
)

// ErrInvalidSampleCount is returned when fewer than two samples are requested.
var ErrInvalidSampleCount = errors.New("sample count must be at least 2")

// Sample evaluates the named colormap at n evenly spaced points t = i/(n-1).
// Channel values are clipped to [0, 1] and rounded to six decimals. Failures
// wrap ErrUnknownColormap, ErrEvaluation or ErrInvalidSampleCount.
func Sample(p Provider, name string, n int) ([]RGB, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, n)
	}

	fn, err := p.Lookup(name)
	if err != nil {
		return nil, err
	}

	colors := make([]RGB, n)
	for i := range colors {
		t := float64(i) / float64(n-1)
		c, err := evaluate(fn, t)
		if err != nil {
			return nil, fmt.Errorf("%s at t=%g: %w", name, t, err)
		}
		colors[i] = c.Clamp().Round6()
	}
	return colors, nil
}

// evaluate calls fn, converting panics and non-finite results into
// ErrEvaluation.
func evaluate(fn ColorFunc, t float64) (c RGB, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrEvaluation, r)
		}
	}()

	c, err = fn.At(t)
	if err != nil {
		if errors.Is(err, ErrEvaluation) {
			return RGB{}, err
		}
		return RGB{}, fmt.Errorf("%w: %w", ErrEvaluation, err)
	}
	if !c.IsFinite() {
		return RGB{}, fmt.Errorf("%w: non-finite colour %v", ErrEvaluation, c)
	}
	return c, nil
}

// Extract samples the named colormap into a record tagged with category.
func Extract(p Provider, name string, n int, category Category) (Record, error) {
	colors, err := Sample(p, name, n)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Name:   name,
		Colors: colors,
		Metadata: Metadata{
			Source:    SourceOf(p, name),
			NumPoints: n,
			Type:      TypeContinuous,
			Category:  string(category),
		},
	}, nil
}
