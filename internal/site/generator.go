package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/murphyqm/derelict/internal/chart"
	"github.com/murphyqm/derelict/internal/page"
	"github.com/murphyqm/derelict/internal/progress"
)

// Generator writes a rendered page out as a self-contained static site.
type Generator struct {
	OutputDir string
	Reporter  progress.Reporter
}

// NewGenerator creates a Generator that writes into outputDir.
func NewGenerator(outputDir string, reporter progress.Reporter) *Generator {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	return &Generator{
		OutputDir: outputDir,
		Reporter:  reporter,
	}
}

// file is one output file relative to the output directory.
type file struct {
	path string
	data []byte
}

// Generate renders p and writes index.html, the static assets, one SVG per
// chart and page.json. Returns the number of files written.
func (g *Generator) Generate(p *page.Page) (int, error) {
	files, err := g.files(p)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Join(g.OutputDir, "charts"), 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	g.Reporter.Start(len(files))
	defer g.Reporter.Finish()

	for i, f := range files {
		out := filepath.Join(g.OutputDir, filepath.FromSlash(f.path))
		if err := os.WriteFile(out, f.data, 0o644); err != nil {
			return i, fmt.Errorf("writing %s: %w", f.path, err)
		}
		g.Reporter.Update(i+1, f.path)
	}
	return len(files), nil
}

// files renders every output in memory so nothing is written when rendering fails.
func (g *Generator) files(p *page.Page) ([]file, error) {
	r, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	var index bytes.Buffer
	if err := r.Render(&index, p); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	pageJSON, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding page: %w", err)
	}

	files := []file{
		{path: "index.html", data: index.Bytes()},
		{path: "style.css", data: []byte(cssContent)},
		{path: "script.js", data: []byte(jsContent)},
	}
	for _, d := range p.Charts {
		svg, err := chart.SVG(d)
		if err != nil {
			return nil, fmt.Errorf("rendering chart %s: %w", d.ID, err)
		}
		files = append(files, file{path: "charts/" + d.ID + ".svg", data: svg})
	}
	files = append(files, file{path: "page.json", data: pageJSON})
	return files, nil
}

// Stylesheet returns the page stylesheet.
func Stylesheet() []byte { return []byte(cssContent) }

// Script returns the tab switching script.
func Script() []byte { return []byte(jsContent) }
