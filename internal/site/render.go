package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/murphyqm/derelict/internal/chart"
	"github.com/murphyqm/derelict/internal/content"
	"github.com/murphyqm/derelict/internal/page"
)

// pageData holds the data passed to the HTML template.
type pageData struct {
	Title    string
	Tagline  string
	BasePath string
	Sections []sectionData
}

// sectionData is one tab with its blocks already converted to HTML.
type sectionData struct {
	ID    string
	Title template.HTML
	Body  template.HTML
}

// Renderer turns a rendered page into an HTML document.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// NewRenderer parses the page template and configures Markdown conversion.
func NewRenderer() (*Renderer, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Renderer{md: md, tmpl: tmpl}, nil
}

// Render writes the full HTML document for p.
func (r *Renderer) Render(w io.Writer, p *page.Page) error {
	data := pageData{
		Title:   p.Title,
		Tagline: p.Tagline,
	}
	for _, s := range p.Sections {
		sd, err := r.section(s)
		if err != nil {
			return err
		}
		data.Sections = append(data.Sections, sd)
	}
	return r.tmpl.Execute(w, data)
}

func (r *Renderer) section(s content.Section) (sectionData, error) {
	title, err := r.inline(s.Title)
	if err != nil {
		return sectionData{}, fmt.Errorf("section %q title: %w", s.ID, err)
	}
	var body bytes.Buffer
	for i, b := range s.Blocks {
		if err := r.block(&body, b); err != nil {
			return sectionData{}, fmt.Errorf("section %q block %d (%s): %w", s.ID, i, b.Kind(), err)
		}
		body.WriteString("\n")
	}
	return sectionData{ID: s.ID, Title: title, Body: template.HTML(body.String())}, nil
}

// block writes the HTML for a single content block.
func (r *Renderer) block(w *bytes.Buffer, b content.Block) error {
	switch v := b.(type) {
	case content.Heading:
		text, err := r.inline(v.Text)
		if err != nil {
			return err
		}
		// The page title is the only h1; section headings start at h2.
		fmt.Fprintf(w, "<h%d>%s</h%d>", v.Level+1, text, v.Level+1)
	case content.Paragraph:
		return r.md.Convert([]byte(v.Text), w)
	case content.Caption:
		text, err := r.inline(v.Text)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, `<p class="caption">%s</p>`, text)
	case content.Link:
		fmt.Fprintf(w, `<p class="link-block"><a href="%s">%s</a></p>`,
			template.HTMLEscapeString(v.URL), template.HTMLEscapeString(v.Label))
	case content.Code:
		fence := codeFence(v.Text)
		src := fence + v.Language + "\n" + strings.TrimRight(v.Text, "\n") + "\n" + fence + "\n"
		return r.md.Convert([]byte(src), w)
	case content.Divider:
		w.WriteString("<hr>")
	case content.ChartEmbed:
		svg, err := chart.SVG(v.Chart)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, `<figure class="chart" id="chart-%s">`+"\n", template.HTMLEscapeString(v.Chart.ID))
		w.Write(svg)
		if v.Caption != "" {
			text, err := r.inline(v.Caption)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "<figcaption>%s</figcaption>\n", text)
		}
		w.WriteString("</figure>")
	default:
		return fmt.Errorf("unsupported block kind %q", b.Kind())
	}
	return nil
}

// Line starts goldmark would read as a list, heading or quote.
var (
	orderedMarker = regexp.MustCompile(`^(\s*\d+)([.)]\s)`)
	blockMarker   = regexp.MustCompile(`^(\s*)([-+*#>]\s)`)
)

// inline converts a single line of Markdown to HTML without the wrapping paragraph.
func (r *Renderer) inline(text string) (template.HTML, error) {
	src := orderedMarker.ReplaceAllString(text, `$1\$2`)
	src = blockMarker.ReplaceAllString(src, `$1\$2`)
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	out := strings.TrimSpace(buf.String())
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return template.HTML(out), nil
}

// codeFence returns a backtick fence longer than any backtick run in text.
func codeFence(text string) string {
	longest, run := 0, 0
	for _, c := range text {
		if c == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}
