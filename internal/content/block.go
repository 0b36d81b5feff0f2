package content

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/murphyqm/derelict/internal/chart"
)

// Kind identifies the variant of a Block.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindParagraph Kind = "paragraph"
	KindCaption   Kind = "caption"
	KindLink      Kind = "link"
	KindCode      Kind = "code"
	KindDivider   Kind = "divider"
	KindChart     Kind = "chart"
)

// Block is one unit of static page content. The set of implementations is
// closed: only the types in this file satisfy it.
type Block interface {
	Kind() Kind
	validate() error
}

// Heading is a section header. Level 1 is a header, 2 a subheader, 3 a minor heading.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Paragraph is body text written in inline Markdown.
type Paragraph struct {
	Text string `json:"text"`
}

// Caption is small print, such as a disclaimer, in inline Markdown.
type Caption struct {
	Text string `json:"text"`
}

// Link is a standalone hyperlink.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Code is a literal, preformatted block such as a licence text.
type Code struct {
	Language string `json:"language,omitempty"`
	Text     string `json:"text"`
}

// Divider is a horizontal rule.
type Divider struct{}

// ChartEmbed places a rendered bar chart in a section. The descriptor is
// produced from exactly one dataset.
type ChartEmbed struct {
	Chart   chart.Descriptor `json:"chart"`
	Caption string           `json:"caption,omitempty"`
}

func (Heading) Kind() Kind    { return KindHeading }
func (Paragraph) Kind() Kind  { return KindParagraph }
func (Caption) Kind() Kind    { return KindCaption }
func (Link) Kind() Kind       { return KindLink }
func (Code) Kind() Kind       { return KindCode }
func (Divider) Kind() Kind    { return KindDivider }
func (ChartEmbed) Kind() Kind { return KindChart }

func (h Heading) validate() error {
	if h.Level < 1 || h.Level > 3 {
		return fmt.Errorf("heading level %d out of range 1..3", h.Level)
	}
	if strings.TrimSpace(h.Text) == "" {
		return fmt.Errorf("heading text is empty")
	}
	return nil
}

func (p Paragraph) validate() error {
	if strings.TrimSpace(p.Text) == "" {
		return fmt.Errorf("paragraph text is empty")
	}
	return nil
}

func (c Caption) validate() error {
	if strings.TrimSpace(c.Text) == "" {
		return fmt.Errorf("caption text is empty")
	}
	return nil
}

func (l Link) validate() error {
	if strings.TrimSpace(l.Label) == "" {
		return fmt.Errorf("link label is empty")
	}
	if strings.TrimSpace(l.URL) == "" {
		return fmt.Errorf("link url is empty")
	}
	if _, err := url.Parse(l.URL); err != nil {
		return fmt.Errorf("link url %q: %w", l.URL, err)
	}
	return nil
}

func (c Code) validate() error {
	if strings.TrimSpace(c.Text) == "" {
		return fmt.Errorf("code block is empty")
	}
	return nil
}

func (Divider) validate() error { return nil }

func (c ChartEmbed) validate() error {
	if len(c.Chart.Bars) == 0 {
		return fmt.Errorf("chart %q has no bars", c.Chart.ID)
	}
	if c.Chart.ID == "" {
		return fmt.Errorf("chart has no id")
	}
	for i, b := range c.Chart.Bars {
		if math.IsNaN(b.Value) || math.IsInf(b.Value, 0) || b.Value < 0 {
			return fmt.Errorf("chart %q bar %q has invalid value %g", c.Chart.ID, b.Label, b.Value)
		}
		if i > 0 && b.Value < c.Chart.Bars[i-1].Value {
			return fmt.Errorf("chart %q bars are not sorted ascending at %q", c.Chart.ID, b.Label)
		}
	}
	return nil
}

// copyBlock returns b with any memory it holds copied, so the model and its
// callers never share a backing array.
func copyBlock(b Block) Block {
	if c, ok := b.(ChartEmbed); ok {
		c.Chart = c.Chart.Clone()
		return c
	}
	return b
}
