package chart

import (
	"fmt"
	"math"
	"sort"
)

// Orientation is the direction bars grow in.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// SortOrder is the top-to-bottom order a drawing should lay bars out in.
type SortOrder string

const (
	Ascending  SortOrder = "ascending"
	Descending SortOrder = "descending"
)

// Style holds the fixed presentation settings for a bar chart.
type Style struct {
	Scheme        string `json:"scheme"`
	BarSize       int    `json:"bar_size"`      // thickness of each bar in pixels
	Step          int    `json:"step"`          // vertical space reserved per bar
	CornerRadius  int    `json:"corner_radius"` // applied to the value end of each bar only
	LabelFontSize int    `json:"label_font_size"`
	TitleFontSize int    `json:"title_font_size"`
	TitleColor    string `json:"title_color"`
	LabelLimit    int    `json:"label_limit"` // width reserved for category labels
	Width         int    `json:"width"`
}

// DefaultStyle returns the style used for every chart on the page.
func DefaultStyle() Style {
	return Style{
		Scheme:        "bluepurple",
		BarSize:       40,
		Step:          50,
		CornerRadius:  3,
		LabelFontSize: 20,
		TitleFontSize: 20,
		TitleColor:    "gray",
		LabelLimit:    300,
		Width:         900,
	}
}

// Bar is one rendered category.
type Bar struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Intensity float64 `json:"intensity"`
	Color     string  `json:"color"`
}

// Corners says which corners of a bar are rounded.
type Corners struct {
	TopLeft     bool `json:"top_left"`
	TopRight    bool `json:"top_right"`
	BottomLeft  bool `json:"bottom_left"`
	BottomRight bool `json:"bottom_right"`
}

// Domain is the value range the colour scale spans.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Descriptor is a renderer-agnostic description of a bar chart. Bars are
// sorted ascending by value; VisualOrder tells a drawing to put the largest
// bar at the top.
type Descriptor struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Source      string      `json:"source,omitempty"`
	Bars        []Bar       `json:"bars"`
	Orientation Orientation `json:"orientation"`
	VisualOrder SortOrder   `json:"visual_order"`
	Domain      Domain      `json:"domain"`
	Rounded     Corners     `json:"rounded"`
	Legend      bool        `json:"legend"`
	Style       Style       `json:"style"`
}

// Render turns a dataset into a horizontal bar chart descriptor.
// It has no side effects: the same dataset and style always give the same descriptor.
func Render(ds *Dataset, style Style) (Descriptor, error) {
	if ds == nil || ds.Len() == 0 {
		id := ""
		if ds != nil {
			id = ds.ID()
		}
		return Descriptor{}, fmt.Errorf("rendering chart %q: %w", id, ErrEmptyDataset)
	}

	entries := ds.Entries()
	for _, e := range entries {
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			return Descriptor{}, fmt.Errorf("rendering chart %q: %w: %q = %g", ds.ID(), ErrInvalidValue, e.Label, e.Value)
		}
		if e.Value < 0 {
			return Descriptor{}, fmt.Errorf("rendering chart %q: %w: %q = %g", ds.ID(), ErrNegativeValue, e.Label, e.Value)
		}
	}

	// Stable so that equal values keep their insertion order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value < entries[j].Value
	})

	domain := Domain{Min: entries[0].Value, Max: entries[len(entries)-1].Value}
	scale, err := NewScale(style.Scheme, domain.Min, domain.Max)
	if err != nil {
		return Descriptor{}, fmt.Errorf("rendering chart %q: %w", ds.ID(), err)
	}

	bars := make([]Bar, len(entries))
	for i, e := range entries {
		t := scale.Intensity(e.Value)
		bars[i] = Bar{
			Label:     e.Label,
			Value:     e.Value,
			Intensity: t,
			Color:     scale.Color(t),
		}
	}

	return Descriptor{
		ID:          ds.ID(),
		Title:       ds.Title(),
		Source:      ds.Source(),
		Bars:        bars,
		Orientation: Horizontal,
		VisualOrder: Descending,
		Domain:      domain,
		Rounded:     Corners{TopRight: true, BottomRight: true},
		Legend:      false,
		Style:       style,
	}, nil
}

// Clone returns a copy of d that shares no memory with it.
func (d Descriptor) Clone() Descriptor {
	if d.Bars != nil {
		bars := make([]Bar, len(d.Bars))
		copy(bars, d.Bars)
		d.Bars = bars
	}
	return d
}

// Max returns the largest bar value.
func (d Descriptor) Max() float64 {
	if len(d.Bars) == 0 {
		return 0
	}
	return d.Bars[len(d.Bars)-1].Value
}

// DrawOrder returns the bars in the order they are drawn top to bottom.
func (d Descriptor) DrawOrder() []Bar {
	out := make([]Bar, len(d.Bars))
	if d.VisualOrder == Ascending {
		copy(out, d.Bars)
		return out
	}
	for i, b := range d.Bars {
		out[len(d.Bars)-1-i] = b
	}
	return out
}
