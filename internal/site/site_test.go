package site

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/murphyqm/derelict/internal/chart"
	"github.com/murphyqm/derelict/internal/content"
	"github.com/murphyqm/derelict/internal/page"
	"github.com/murphyqm/derelict/internal/progress"
)

func buildPage(t *testing.T, tools bool) *page.Page {
	t.Helper()
	def, err := page.DefaultDefinition()
	if err != nil {
		t.Fatalf("DefaultDefinition: %v", err)
	}
	def.ShowToolsChart = tools
	p, err := page.Build(def)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p
}

func renderHTML(t *testing.T, p *page.Page) string {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, p); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestRenderPage(t *testing.T) {
	html := renderHTML(t, buildPage(t, false))

	if got := strings.Count(html, `role="tabpanel"`); got != 6 {
		t.Errorf("tab panels = %d, want 6", got)
	}
	if got := strings.Count(html, `role="tab" `); got != 6 {
		t.Errorf("tabs = %d, want 6", got)
	}
	for _, id := range []string{"why", "dependencies", "repository", "license", "citation", "testing"} {
		if !strings.Contains(html, `id="panel-`+id+`"`) {
			t.Errorf("missing panel %s", id)
		}
	}
	if !strings.Contains(html, "<title>How to avoid DeReLiCT Code</title>") {
		t.Error("missing document title")
	}
	if !strings.Contains(html, "<strong>De</strong>") {
		t.Error("tab titles should be rendered as markdown")
	}
	if got := strings.Count(html, "<svg"); got != 1 {
		t.Errorf("inline charts = %d, want 1", got)
	}
	if !strings.Contains(html, `id="chart-`+page.DependencyFilesID+`"`) {
		t.Error("missing chart figure")
	}
	if !strings.Contains(html, "<hr>") {
		t.Error("missing divider")
	}
	if !strings.Contains(html, "<pre") {
		t.Error("missing code block")
	}
	// Only the first panel starts active.
	if got := strings.Count(html, "tab-panel active"); got != 1 {
		t.Errorf("active panels = %d, want 1", got)
	}
}

func TestRenderPageWithToolsChart(t *testing.T) {
	html := renderHTML(t, buildPage(t, true))
	if got := strings.Count(html, "<svg"); got != 2 {
		t.Errorf("inline charts = %d, want 2", got)
	}
}

func TestRenderBlocks(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	tests := []struct {
		name  string
		block content.Block
		want  string
	}{
		{"heading", content.Heading{Level: 1, Text: "Hello"}, "<h2>Hello</h2>"},
		{"subheading", content.Heading{Level: 2, Text: "Sub"}, "<h3>Sub</h3>"},
		{"paragraph", content.Paragraph{Text: "Some *emphasis*"}, "<p>Some <em>emphasis</em></p>"},
		{"caption", content.Caption{Text: "small print"}, `<p class="caption">small print</p>`},
		{"link", content.Link{Label: "a & b", URL: "https://example.com/?a=1&b=2"}, `<a href="https://example.com/?a=1&amp;b=2">a &amp; b</a>`},
		{"divider", content.Divider{}, "<hr>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := r.block(&buf, tt.block); err != nil {
				t.Fatalf("block: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("got %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestRenderEscapesRawHTML(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	var buf bytes.Buffer
	if err := r.block(&buf, content.Paragraph{Text: "<script>alert(1)</script>"}); err != nil {
		t.Fatalf("block: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Errorf("raw HTML passed through: %q", buf.String())
	}
}

func TestRenderChartEmbed(t *testing.T) {
	ds, err := chart.NewDataset("demo", "Demo", "", chart.Entry{Label: "a", Value: 1}, chart.Entry{Label: "b", Value: 2})
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	d, err := chart.Render(ds, chart.DefaultStyle())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	var buf bytes.Buffer
	if err := r.block(&buf, content.ChartEmbed{Chart: d, Caption: "Source: *me*"}); err != nil {
		t.Fatalf("block: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`<figure class="chart" id="chart-demo">`, "<svg", "<figcaption>Source: <em>me</em></figcaption>", "</figure>"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestCodeFence(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"plain", "```"},
		{"has `inline`", "```"},
		{"has ```fence```", "````"},
		{"has `````five", "``````"},
	}
	for _, tt := range tests {
		if got := codeFence(tt.text); got != tt.want {
			t.Errorf("codeFence(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	var log bytes.Buffer
	g := NewGenerator(dir, progress.NewCIReporter(&log))

	p := buildPage(t, true)
	n, err := g.Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// index.html, style.css, script.js, two charts, page.json
	if n != 6 {
		t.Errorf("files = %d, want 6", n)
	}

	for _, name := range []string{
		"index.html",
		"style.css",
		"script.js",
		"charts/" + page.DependencyFilesID + ".svg",
		"charts/" + page.DependencyToolsID + ".svg",
		"page.json",
	} {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name))); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "page.json"))
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("page.json: %v", err)
	}
	if decoded.Title != p.Title {
		t.Errorf("page.json title = %q", decoded.Title)
	}

	if !strings.Contains(log.String(), "[6/6] page.json") {
		t.Errorf("progress log = %q", log.String())
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	p := buildPage(t, false)
	a := filepath.Join(t.TempDir(), "a")
	b := filepath.Join(t.TempDir(), "b")
	if _, err := NewGenerator(a, nil).Generate(p); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := NewGenerator(b, nil).Generate(p); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, name := range []string{"index.html", "page.json"} {
		x, _ := os.ReadFile(filepath.Join(a, name))
		y, _ := os.ReadFile(filepath.Join(b, name))
		if !bytes.Equal(x, y) {
			t.Errorf("%s differs between runs", name)
		}
	}
}

func TestInlineKeepsNumberedHeadings(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	tests := map[string]string{
		"1. Use a package manager": "1. Use a package manager",
		"- not a list":             "- not a list",
		"**bold**":                 "<strong>bold</strong>",
	}
	for in, want := range tests {
		got, err := r.inline(in)
		if err != nil {
			t.Fatalf("inline(%q): %v", in, err)
		}
		if string(got) != want {
			t.Errorf("inline(%q) = %q, want %q", in, got, want)
		}
	}
}
