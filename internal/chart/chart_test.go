package chart

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func dependencyFiles(t *testing.T) *Dataset {
	t.Helper()
	ds, err := NewDataset("where-dependencies", "What format is your application dependency information stored in?", "JetBrains",
		Entry{"requirements.txt", 69},
		Entry{"pyproject.toml", 33},
		Entry{"poetry.lock", 25},
		Entry{"pipfile.lock", 15},
		Entry{"Conda environment.yml", 11},
		Entry{"pip constraints.txt", 6},
		Entry{"Other", 4},
		Entry{"None", 4},
	)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	return ds
}

func TestRenderSortsAscendingWithStableTies(t *testing.T) {
	d, err := Render(dependencyFiles(t), DefaultStyle())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var labels []string
	for _, b := range d.Bars {
		labels = append(labels, b.Label)
	}
	want := []string{"Other", "None", "pip constraints.txt", "Conda environment.yml", "pipfile.lock", "poetry.lock", "pyproject.toml", "requirements.txt"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("bar order mismatch (-want +got):\n%s", diff)
	}

	last := d.Bars[len(d.Bars)-1]
	if last.Value != 69 {
		t.Errorf("last bar value = %v, want 69", last.Value)
	}
	if d.Max() != 69 {
		t.Errorf("Max() = %v, want 69", d.Max())
	}
}

func TestRenderBarsLengthAndOrder(t *testing.T) {
	cases := [][]Entry{
		{{"a", 1}},
		{{"a", 3}, {"b", 2}, {"c", 1}},
		{{"a", 0}, {"b", 0}},
		{{"x", 12.5}, {"y", 99}, {"z", 50}, {"w", 12.5}},
	}
	for i, entries := range cases {
		ds, err := NewDataset("case", "", "", entries...)
		if err != nil {
			t.Fatalf("case %d: NewDataset: %v", i, err)
		}
		d, err := Render(ds, DefaultStyle())
		if err != nil {
			t.Fatalf("case %d: Render: %v", i, err)
		}
		if len(d.Bars) != len(entries) {
			t.Errorf("case %d: got %d bars, want %d", i, len(d.Bars), len(entries))
		}
		for j := 1; j < len(d.Bars); j++ {
			if d.Bars[j-1].Value > d.Bars[j].Value {
				t.Errorf("case %d: bars not ascending at %d: %v > %v", i, j, d.Bars[j-1].Value, d.Bars[j].Value)
			}
		}
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	ds := dependencyFiles(t)
	first, err := Render(ds, DefaultStyle())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := Render(ds, DefaultStyle())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("descriptors differ (-first +second):\n%s", diff)
	}

	svg1, err := SVG(first)
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	svg2, err := SVG(second)
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if !bytes.Equal(svg1, svg2) {
		t.Error("SVG output is not byte-identical across renders")
	}
}

func TestRenderDoesNotMutateDataset(t *testing.T) {
	ds := dependencyFiles(t)
	before := ds.Entries()
	if _, err := Render(ds, DefaultStyle()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if diff := cmp.Diff(before, ds.Entries()); diff != "" {
		t.Errorf("dataset changed after render (-before +after):\n%s", diff)
	}
}

func TestRenderEmptyDataset(t *testing.T) {
	ds, err := NewDataset("empty", "", "")
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	if _, err := Render(ds, DefaultStyle()); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
	if _, err := Render(nil, DefaultStyle()); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset for nil dataset, got %v", err)
	}
}

func TestRenderNegativeValue(t *testing.T) {
	ds, err := NewDataset("neg", "", "", Entry{"ok", 5}, Entry{"bad", -1})
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	if _, err := Render(ds, DefaultStyle()); !errors.Is(err, ErrNegativeValue) {
		t.Errorf("expected ErrNegativeValue, got %v", err)
	}
}

func TestRenderNonFiniteValue(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		ds, err := NewDataset("bad", "Bad", "",
			Entry{Label: "a", Value: 5},
			Entry{Label: "b", Value: v},
			Entry{Label: "c", Value: 1},
		)
		if err != nil {
			t.Fatalf("NewDataset: %v", err)
		}
		if _, err := Render(ds, DefaultStyle()); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("value %v: expected ErrInvalidValue, got %v", v, err)
		}
	}
}

func TestRenderUnknownScheme(t *testing.T) {
	style := DefaultStyle()
	style.Scheme = "rainbow"
	if _, err := Render(dependencyFiles(t), style); !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("expected ErrUnknownScheme, got %v", err)
	}
}

func TestNewDatasetDuplicateLabel(t *testing.T) {
	_, err := NewDataset("dup", "", "", Entry{"a", 1}, Entry{"a", 2})
	if !errors.Is(err, ErrDuplicateLabel) {
		t.Errorf("expected ErrDuplicateLabel, got %v", err)
	}
}

func TestDatasetEntriesIsACopy(t *testing.T) {
	ds := dependencyFiles(t)
	entries := ds.Entries()
	entries[0].Value = 1000
	if v, _ := ds.Value("requirements.txt"); v != 69 {
		t.Errorf("dataset mutated through Entries(): got %v", v)
	}
}

func TestIntensityAndColor(t *testing.T) {
	d, err := Render(dependencyFiles(t), DefaultStyle())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if d.Domain.Min != 4 || d.Domain.Max != 69 {
		t.Errorf("domain = %+v, want {4 69}", d.Domain)
	}
	if d.Bars[0].Intensity != 0 {
		t.Errorf("min bar intensity = %v, want 0", d.Bars[0].Intensity)
	}
	if top := d.Bars[len(d.Bars)-1]; top.Intensity != 1 || top.Color != "#4d004b" {
		t.Errorf("max bar = %+v, want intensity 1 colour #4d004b", top)
	}
	for i := 1; i < len(d.Bars); i++ {
		if d.Bars[i].Intensity < d.Bars[i-1].Intensity {
			t.Errorf("intensity decreases at bar %d", i)
		}
		if !strings.HasPrefix(d.Bars[i].Color, "#") || len(d.Bars[i].Color) != 7 {
			t.Errorf("bar %d colour %q is not a hex colour", i, d.Bars[i].Color)
		}
	}
	if d.Legend {
		t.Error("descriptor should not request a legend")
	}
	if !d.Rounded.TopRight || !d.Rounded.BottomRight || d.Rounded.TopLeft || d.Rounded.BottomLeft {
		t.Errorf("only the value end should be rounded, got %+v", d.Rounded)
	}
}

func TestIntensityDegenerateDomain(t *testing.T) {
	ds, err := NewDataset("flat", "", "", Entry{"a", 7}, Entry{"b", 7})
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	d, err := Render(ds, DefaultStyle())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, b := range d.Bars {
		if b.Intensity != 1 {
			t.Errorf("bar %q intensity = %v, want 1", b.Label, b.Intensity)
		}
	}
}

func TestDrawOrderLargestFirst(t *testing.T) {
	d, err := Render(dependencyFiles(t), DefaultStyle())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	drawn := d.DrawOrder()
	if drawn[0].Label != "requirements.txt" {
		t.Errorf("first drawn bar = %q, want requirements.txt", drawn[0].Label)
	}
	if d.Bars[0].Label != "Other" {
		t.Error("DrawOrder must not reorder the descriptor's bars")
	}
}

func TestSVG(t *testing.T) {
	d, err := Render(dependencyFiles(t), DefaultStyle())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out, err := SVG(d)
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	svg := string(out)

	if !strings.HasPrefix(svg, "<svg") {
		t.Error("output should start with <svg")
	}
	if got := strings.Count(svg, "<path "); got != 8 {
		t.Errorf("path count = %d, want 8", got)
	}
	if !strings.Contains(svg, "requirements.txt: 69%") {
		t.Error("SVG should carry a tooltip for each bar")
	}
	// Largest bar is drawn first.
	if strings.Index(svg, "requirements.txt") > strings.Index(svg, ">None<") {
		t.Error("requirements.txt should be drawn above None")
	}
	if !strings.Contains(svg, "What format is your application dependency information stored in?") {
		t.Error("SVG should contain the chart title")
	}
}

func TestSVGEscapesLabels(t *testing.T) {
	ds, err := NewDataset("esc", "<b>", "", Entry{"a<b>&c", 1})
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	d, err := Render(ds, DefaultStyle())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out, err := SVG(d)
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if strings.Contains(string(out), "a<b>") {
		t.Error("labels must be escaped")
	}
}

func TestBarPathRoundsValueEndOnly(t *testing.T) {
	p := barPath(0, 100, 0, 40, 3, Corners{TopRight: true, BottomRight: true})
	want := "M0 0H97Q100 0 100 3V37Q100 40 97 40H0Z"
	if p != want {
		t.Errorf("barPath = %q, want %q", p, want)
	}

	// Zero-length bars fall back to a plain rectangle.
	p = barPath(0, 0, 0, 40, 3, Corners{TopRight: true, BottomRight: true})
	if strings.Contains(p, "Q") {
		t.Errorf("zero-length bar should not be rounded: %q", p)
	}
}

func TestNiceTicks(t *testing.T) {
	tests := []struct {
		max       float64
		tick, top float64
	}{
		{69, 10, 70},
		{30, 5, 30},
		{4, 0.5, 4},
		{0, 1, 1},
	}
	for _, tt := range tests {
		tick, top := niceTicks(tt.max)
		if tick != tt.tick || top != tt.top {
			t.Errorf("niceTicks(%v) = (%v, %v), want (%v, %v)", tt.max, tick, top, tt.tick, tt.top)
		}
	}
}

func TestTerminal(t *testing.T) {
	d, err := Render(dependencyFiles(t), DefaultStyle())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out, err := Terminal(d, 80)
	if err != nil {
		t.Fatalf("Terminal: %v", err)
	}
	if !strings.Contains(out, "69%") {
		t.Error("terminal output should list the percentages")
	}
	if strings.Index(out, "requirements.txt") > strings.LastIndex(out, "None") {
		t.Error("largest bar should be listed first")
	}
}

func TestSchemes(t *testing.T) {
	if !HasScheme("bluepurple") {
		t.Error("bluepurple should be registered")
	}
	if HasScheme("nope") {
		t.Error("unexpected scheme")
	}
	names := Schemes()
	if len(names) == 0 || names[0] != "bluepurple" {
		t.Errorf("Schemes() = %v, want sorted names starting with bluepurple", names)
	}
}
