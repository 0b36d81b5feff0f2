// Package content holds the ordered, tabbed structure of the page: named
// sections, each a sequence of content blocks in display order.
package content

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	// ErrDuplicateID is returned by AddSection when the id is already taken.
	ErrDuplicateID = errors.New("duplicate section id")
	// ErrInvalidSection is returned by AddSection for an empty id or title.
	ErrInvalidSection = errors.New("invalid section")
	// ErrUnknownSection is returned by Append for a handle this model did not issue.
	ErrUnknownSection = errors.New("unknown section")
	// ErrInvalidBlock is returned by Append for a malformed block.
	ErrInvalidBlock = errors.New("invalid block")
)

// Section is a named tab and its blocks.
type Section struct {
	ID     string
	Title  string
	Blocks []Block
}

// Handle refers to a section of the Model that created it.
type Handle struct {
	model *Model
	pos   int
}

// ID returns the id of the section the handle refers to.
func (h Handle) ID() string {
	if h.model == nil || h.pos < 0 || h.pos >= len(h.model.sections) {
		return ""
	}
	return h.model.sections[h.pos].ID
}

// Model is the ordered collection of sections on a page.
type Model struct {
	sections []*Section
	byID     map[string]int
}

// NewModel returns an empty content model.
func NewModel() *Model {
	return &Model{byID: make(map[string]int)}
}

// AddSection declares a new section at the end of the page.
func (m *Model) AddSection(id, title string) (Handle, error) {
	if strings.TrimSpace(id) == "" {
		return Handle{}, fmt.Errorf("%w: empty id", ErrInvalidSection)
	}
	if strings.TrimSpace(title) == "" {
		return Handle{}, fmt.Errorf("%w: section %q has no title", ErrInvalidSection, id)
	}
	if _, ok := m.byID[id]; ok {
		return Handle{}, fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	m.sections = append(m.sections, &Section{ID: id, Title: title})
	pos := len(m.sections) - 1
	m.byID[id] = pos
	return Handle{model: m, pos: pos}, nil
}

// Append adds a block at the end of a section.
func (m *Model) Append(h Handle, b Block) error {
	if h.model != m || h.pos < 0 || h.pos >= len(m.sections) {
		return ErrUnknownSection
	}
	s := m.sections[h.pos]
	if b == nil {
		return fmt.Errorf("section %q: %w: nil block", s.ID, ErrInvalidBlock)
	}
	if err := b.validate(); err != nil {
		return fmt.Errorf("section %q: %w: %s: %v", s.ID, ErrInvalidBlock, b.Kind(), err)
	}
	s.Blocks = append(s.Blocks, copyBlock(b))
	return nil
}

// Len returns the number of sections.
func (m *Model) Len() int { return len(m.sections) }

// Section returns a copy of the section with the given id.
func (m *Model) Section(id string) (Section, bool) {
	pos, ok := m.byID[id]
	if !ok {
		return Section{}, false
	}
	return m.sections[pos].clone(), true
}

// Render yields the sections in declaration order. The sequence is lazy and
// can be ranged over any number of times; each pass reflects the model as it
// is at that moment and hands out copies, so callers cannot change the model
// through it.
func (m *Model) Render() iter.Seq[Section] {
	return func(yield func(Section) bool) {
		for _, s := range m.sections {
			if !yield(s.clone()) {
				return
			}
		}
	}
}

// Sections collects Render into a slice.
func (m *Model) Sections() []Section {
	out := make([]Section, 0, len(m.sections))
	for s := range m.Render() {
		out = append(out, s)
	}
	return out
}

func (s *Section) clone() Section {
	blocks := make([]Block, len(s.Blocks))
	for i, b := range s.Blocks {
		blocks[i] = copyBlock(b)
	}
	return Section{ID: s.ID, Title: s.Title, Blocks: blocks}
}
