package chart

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownScheme is returned for a colour scheme name that is not registered.
var ErrUnknownScheme = errors.New("unknown colour scheme")

// schemes holds the stops of the sequential colour schemes bars can be filled with.
// The stops match the nine-class ColorBrewer palettes of the same names.
var schemes = map[string][]string{
	"bluepurple": {"#f7fcfd", "#e0ecf4", "#bfd3e6", "#9ebcda", "#8c96c6", "#8c6bb1", "#88419d", "#810f7c", "#4d004b"},
	"blues":      {"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6", "#4292c6", "#2171b5", "#08519c", "#08306b"},
	"greens":     {"#f7fcf5", "#e5f5e0", "#c7e9c0", "#a1d99b", "#74c476", "#41ab5d", "#238b45", "#006d2c", "#00441b"},
	"purples":    {"#fcfbfd", "#efedf5", "#dadaeb", "#bcbddc", "#9e9ac8", "#807dba", "#6a51a3", "#54278f", "#3f007d"},
	"oranges":    {"#fff5eb", "#fee6ce", "#fdd0a2", "#fdae6b", "#fd8d3c", "#f16913", "#d94801", "#a63603", "#7f2704"},
}

// Schemes returns the registered colour scheme names, sorted.
func Schemes() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasScheme reports whether name is a registered colour scheme.
func HasScheme(name string) bool {
	_, ok := schemes[name]
	return ok
}

// Scale maps a value in [Min, Max] onto a continuous colour scheme.
type Scale struct {
	Min, Max float64
	stops    []colorful.Color
}

// NewScale builds a continuous colour scale over the given domain.
func NewScale(scheme string, min, max float64) (*Scale, error) {
	hexes, ok := schemes[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("scheme %s stop %d: %w", scheme, i, err)
		}
		stops[i] = c
	}
	return &Scale{Min: min, Max: max, stops: stops}, nil
}

// Intensity returns the position of v inside the domain, in [0, 1].
// A degenerate domain (every value equal) maps everything to full intensity.
func (s *Scale) Intensity(v float64) float64 {
	if s.Max <= s.Min {
		return 1
	}
	t := (v - s.Min) / (s.Max - s.Min)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Color returns the hex colour for an intensity in [0, 1].
func (s *Scale) Color(t float64) string {
	if t <= 0 {
		return s.stops[0].Hex()
	}
	if t >= 1 {
		return s.stops[len(s.stops)-1].Hex()
	}
	pos := t * float64(len(s.stops)-1)
	i := int(pos)
	frac := pos - float64(i)
	return s.stops[i].BlendLab(s.stops[i+1], frac).Clamped().Hex()
}
