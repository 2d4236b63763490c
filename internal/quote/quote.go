// Package quote holds the quote catalog and the random selection logic
package quote

import (
	"math/rand"
	"time"
)

// Author describes who said a quote. Every field beyond the name is optional.
type Author struct {
	Name  string `yaml:"name"`
	Bio   string `yaml:"bio,omitempty"`
	Photo string `yaml:"photo,omitempty"`
}

// Record is a single quote. Author may be nil.
type Record struct {
	Text   string  `yaml:"text"`
	Author *Author `yaml:"author,omitempty"`
}

// AuthorName returns the author name, or fallback when no author is known.
func (r Record) AuthorName(fallback string) string {
	if r.Author == nil || r.Author.Name == "" {
		return fallback
	}
	return r.Author.Name
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithRand sets the random source used for selection. Used by tests and the
// --seed flag; the default source is time-seeded.
func WithRand(rng *rand.Rand) SelectorOption {
	return func(s *Selector) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithRandomStart picks the initial index uniformly over the whole collection
// instead of starting at 0. One-shot consumers use this so every record is
// reachable; SelectAnother alone never revisits the index it starts from.
func WithRandomStart() SelectorOption {
	return func(s *Selector) {
		s.randomStart = true
	}
}

// Selector owns a fixed collection of records and the index of the one
// currently shown. The collection is never mutated after construction.
type Selector struct {
	records     []Record
	index       int
	rng         *rand.Rand
	randomStart bool
}

// NewSelector creates a selector over records, starting at index 0 unless
// WithRandomStart is given.
func NewSelector(records []Record, opts ...SelectorOption) *Selector {
	s := &Selector{
		records: records,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.randomStart && len(s.records) > 1 {
		s.index = s.rng.Intn(len(s.records))
	}
	return s
}

// Len returns the collection size.
func (s *Selector) Len() int { return len(s.records) }

// Index returns the current selection index.
func (s *Selector) Index() int { return s.index }

// Current returns the currently selected record. The second return is false
// when the collection is empty.
func (s *Selector) Current() (Record, bool) {
	if len(s.records) == 0 {
		return Record{}, false
	}
	return s.records[s.index], true
}

// SelectAnother moves the selection to a uniformly random record different
// from the current one. With zero or one record there is nothing different to
// pick, so the index stays at 0. The redraw loop is intentionally unbounded:
// the draw is uniform, so it terminates with probability 1 and keeps the
// distribution over the other records uniform.
func (s *Selector) SelectAnother() {
	if len(s.records) <= 1 {
		s.index = 0
		return
	}
	next := s.rng.Intn(len(s.records))
	for next == s.index {
		next = s.rng.Intn(len(s.records))
	}
	s.index = next
}
