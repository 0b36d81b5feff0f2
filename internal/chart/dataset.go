package chart

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when a chart is requested for a dataset with no entries.
	ErrEmptyDataset = errors.New("dataset has no entries")
	// ErrNegativeValue is returned when a dataset holds a value below zero.
	ErrNegativeValue = errors.New("dataset value is negative")
	// ErrInvalidValue is returned when a dataset holds NaN or an infinite value.
	ErrInvalidValue = errors.New("dataset value is not a finite number")
	// ErrDuplicateLabel is returned when a dataset is built with the same label twice.
	ErrDuplicateLabel = errors.New("duplicate dataset label")
)

// Entry is one category of a survey question and the percentage of responders who picked it.
type Entry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Dataset is an ordered mapping from category label to percentage. Values do not
// need to sum to 100: the surveys it holds are multiple-answer questions.
// A Dataset is never modified after NewDataset returns.
type Dataset struct {
	id      string
	title   string
	source  string
	entries []Entry
}

// NewDataset builds a dataset, keeping entries in the order given.
// Labels must be unique. Values are checked when the dataset is rendered.
func NewDataset(id, title, source string, entries ...Entry) (*Dataset, error) {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Label] {
			return nil, fmt.Errorf("dataset %s: %w: %q", id, ErrDuplicateLabel, e.Label)
		}
		seen[e.Label] = true
	}
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Dataset{id: id, title: title, source: source, entries: cp}, nil
}

// ID returns the identifier the dataset is addressed by (e.g. in chart URLs).
func (d *Dataset) ID() string { return d.id }

// Title returns the survey question the dataset answers.
func (d *Dataset) Title() string { return d.title }

// Source returns the attribution line for the data.
func (d *Dataset) Source() string { return d.source }

// Len returns the number of entries.
func (d *Dataset) Len() int { return len(d.entries) }

// Entries returns a copy of the entries in insertion order.
func (d *Dataset) Entries() []Entry {
	cp := make([]Entry, len(d.entries))
	copy(cp, d.entries)
	return cp
}

// Value looks up the percentage recorded for label.
func (d *Dataset) Value(label string) (float64, bool) {
	for _, e := range d.entries {
		if e.Label == label {
			return e.Value, true
		}
	}
	return 0, false
}
