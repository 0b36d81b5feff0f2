package page

import (
	"encoding/json"

	"github.com/murphyqm/derelict/internal/chart"
	"github.com/murphyqm/derelict/internal/content"
)

type jsonBlock struct {
	Kind content.Kind  `json:"kind"`
	Data content.Block `json:"data,omitempty"`
}

type jsonSection struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Blocks []jsonBlock `json:"blocks"`
}

type jsonPage struct {
	Title    string             `json:"title"`
	Tagline  string             `json:"tagline,omitempty"`
	Sections []jsonSection      `json:"sections"`
	Charts   []chart.Descriptor `json:"charts"`
}

// MarshalJSON encodes the page with every block tagged by its kind.
// The render id is left out so the encoding only depends on the content.
func (p *Page) MarshalJSON() ([]byte, error) {
	out := jsonPage{
		Title:    p.Title,
		Tagline:  p.Tagline,
		Sections: make([]jsonSection, len(p.Sections)),
		Charts:   p.Charts,
	}
	if out.Charts == nil {
		out.Charts = []chart.Descriptor{}
	}
	for i, s := range p.Sections {
		js := jsonSection{ID: s.ID, Title: s.Title, Blocks: make([]jsonBlock, len(s.Blocks))}
		for j, b := range s.Blocks {
			js.Blocks[j] = jsonBlock{Kind: b.Kind(), Data: b}
			if b.Kind() == content.KindDivider {
				js.Blocks[j].Data = nil
			}
		}
		out.Sections[i] = js
	}
	return json.Marshal(out)
}
