package model

// EntityMention is a primary entity identified upstream. Read-only to the
// annotator: slot candidates are sought around these mentions.
type EntityMention struct {
	Extent Span   `json:"extent" yaml:"extent"`
	Head   []int  `json:"head" yaml:"head"` // head token indices, possibly non-contiguous
	Type   string `json:"type" yaml:"type"`
}

// HeadSpan returns the envelope span covering all head token indices.
// Returns an empty span at the extent start if no head indices are present.
func (m *EntityMention) HeadSpan() Span {
	if len(m.Head) == 0 {
		return Span{Start: m.Extent.Start, End: m.Extent.Start}
	}
	min, max := m.Head[0], m.Head[0]
	for _, i := range m.Head[1:] {
		if i < min {
			min = i
		}
		if i > max {
			max = i
		}
	}
	return Span{Start: min, End: max + 1}
}

// SlotMention is a candidate slot span emitted by the scanner. Its extent
// never overlaps a primary entity extent and its type is never blank.
type SlotMention struct {
	Extent         Span   `json:"extent" yaml:"extent"`
	Type           string `json:"type" yaml:"type"`
	NormalizedName string `json:"normalized_name,omitempty" yaml:"normalized_name,omitempty"`
}
