// Package page composes the DeReLiCT Code guidance page: it declares the
// tabs, fills each one with its content and charts, and renders the result.
package page

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/murphyqm/derelict/internal/chart"
	"github.com/murphyqm/derelict/internal/content"
)

// ErrInvalidState is returned when composer steps are called out of order.
var ErrInvalidState = errors.New("invalid composer state")

// State is the lifecycle position of a Composer.
type State int

const (
	Uninitialized State = iota
	Populated
	Rendered
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Populated:
		return "populated"
	case Rendered:
		return "rendered"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Tab declares one section of the page.
type Tab struct {
	ID    string
	Title string
}

// Definition is everything the composer needs to build the page. It is built
// once at start-up and never modified, so it can be shared by every request.
type Definition struct {
	Title          string
	Tagline        string
	Tabs           []Tab
	Datasets       Datasets
	Style          chart.Style
	ShowToolsChart bool
}

// DefaultTabs returns the page's tab strip in display order.
func DefaultTabs() []Tab {
	return []Tab{
		{ID: "why", Title: "Why?"},
		{ID: "dependencies", Title: "**De**"},
		{ID: "repository", Title: "**Re**"},
		{ID: "license", Title: "**Li**"},
		{ID: "citation", Title: "**C**"},
		{ID: "testing", Title: "**T**"},
	}
}

// DefaultDefinition returns the canonical page definition.
func DefaultDefinition() (Definition, error) {
	ds, err := SurveyDatasets()
	if err != nil {
		return Definition{}, err
	}
	return Definition{
		Title:    "How to avoid DeReLiCT Code",
		Tagline:  "Basic steps to help avoid total code collapse.",
		Tabs:     DefaultTabs(),
		Datasets: ds,
		Style:    chart.DefaultStyle(),
	}, nil
}

// Page is a fully rendered page.
type Page struct {
	RenderID string
	Title    string
	Tagline  string
	Sections []content.Section
	Charts   []chart.Descriptor
}

// Chart returns the chart with the given id.
func (p *Page) Chart(id string) (chart.Descriptor, bool) {
	for _, c := range p.Charts {
		if c.ID == id {
			return c, true
		}
	}
	return chart.Descriptor{}, false
}

// Composer builds one page. It is single use: Populate, then Render.
type Composer struct {
	def    Definition
	state  State
	model  *content.Model
	charts []chart.Descriptor
}

// NewComposer returns a composer for the given definition.
func NewComposer(def Definition) *Composer {
	return &Composer{def: def}
}

// State reports where the composer is in its lifecycle.
func (c *Composer) State() State { return c.state }

// Populate declares every tab and fills it with content. Any failure leaves
// the composer uninitialized; nothing is partially built.
func (c *Composer) Populate() error {
	if c.state != Uninitialized {
		return fmt.Errorf("%w: populate called while %s", ErrInvalidState, c.state)
	}
	if strings.TrimSpace(c.def.Title) == "" {
		return fmt.Errorf("composing page: title is empty")
	}

	model := content.NewModel()
	w := &sectionWriter{model: model, style: c.def.Style}
	for _, tab := range c.def.Tabs {
		h, err := model.AddSection(tab.ID, tab.Title)
		if err != nil {
			return fmt.Errorf("composing page: %w", err)
		}
		fill, ok := tabContent[tab.ID]
		if !ok {
			return fmt.Errorf("composing page: no content for tab %q", tab.ID)
		}
		w.h = h
		fill(w, c.def)
		if w.err != nil {
			return fmt.Errorf("composing tab %q: %w", tab.ID, w.err)
		}
	}

	c.model = model
	c.charts = w.charts
	c.state = Populated
	return nil
}

// Render produces the page from the populated content model.
func (c *Composer) Render() (*Page, error) {
	if c.state != Populated {
		return nil, fmt.Errorf("%w: render called while %s", ErrInvalidState, c.state)
	}
	charts := make([]chart.Descriptor, len(c.charts))
	for i, d := range c.charts {
		charts[i] = d.Clone()
	}
	p := &Page{
		RenderID: uuid.NewString(),
		Title:    c.def.Title,
		Tagline:  c.def.Tagline,
		Sections: c.model.Sections(),
		Charts:   charts,
	}
	c.state = Rendered
	return p, nil
}

// Build populates and renders a fresh composer for def.
func Build(def Definition) (*Page, error) {
	c := NewComposer(def)
	if err := c.Populate(); err != nil {
		return nil, err
	}
	return c.Render()
}

// sectionWriter appends blocks to the current section, remembering the first
// error so tab content can be written as a flat list of calls.
type sectionWriter struct {
	model  *content.Model
	h      content.Handle
	style  chart.Style
	charts []chart.Descriptor
	err    error
}

func (w *sectionWriter) add(b content.Block) {
	if w.err != nil {
		return
	}
	w.err = w.model.Append(w.h, b)
}

func (w *sectionWriter) header(text string)    { w.add(content.Heading{Level: 1, Text: text}) }
func (w *sectionWriter) subheader(text string) { w.add(content.Heading{Level: 2, Text: text}) }
func (w *sectionWriter) caption(text string)   { w.add(content.Caption{Text: text}) }
func (w *sectionWriter) divider()              { w.add(content.Divider{}) }

// write adds a paragraph; the parts are joined with single spaces.
func (w *sectionWriter) write(parts ...string) {
	w.add(content.Paragraph{Text: strings.Join(parts, " ")})
}

func (w *sectionWriter) link(label, url string) {
	w.add(content.Link{Label: label, URL: url})
}

func (w *sectionWriter) code(language, text string) {
	w.add(content.Code{Language: language, Text: text})
}

func (w *sectionWriter) chart(ds *chart.Dataset, caption string) {
	if w.err != nil {
		return
	}
	d, err := chart.Render(ds, w.style)
	if err != nil {
		w.err = err
		return
	}
	w.add(content.ChartEmbed{Chart: d, Caption: caption})
	if w.err == nil {
		w.charts = append(w.charts, d)
	}
}
