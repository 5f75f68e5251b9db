package model

import "fmt"

// Span is a half-open interval [Start, End) over token indices
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// NewSpan creates a span covering [start, end)
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of tokens covered by the span
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether the token index falls inside the span
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.End
}

// Overlaps reports whether two spans share at least one token index
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// OverlapsAny reports whether the span overlaps any span in the set
func (s Span) OverlapsAny(spans []Span) bool {
	for _, other := range spans {
		if s.Overlaps(other) {
			return true
		}
	}
	return false
}

// Distance returns the token gap between two spans (0 if adjacent or overlapping)
func (s Span) Distance(other Span) int {
	if s.Overlaps(other) {
		return 0
	}
	if s.End <= other.Start {
		return other.Start - s.End
	}
	return s.Start - other.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
