package model

// Sentence is the unit of annotation. Tokens and entity mentions are produced
// upstream; Slots is filled in by the annotator. Parse may be nil when the
// upstream parser produced no tree (the modifier pass is skipped then).
type Sentence struct {
	Tokens   []*Token         `json:"tokens" yaml:"tokens"`
	Entities []*EntityMention `json:"entities,omitempty" yaml:"entities,omitempty"`
	Parse    *ParseNode       `json:"-" yaml:"-"`

	Slots []SlotMention `json:"slots,omitempty" yaml:"slots,omitempty"`
}

// Words returns the surface forms of the sentence tokens.
func (s *Sentence) Words() []string {
	words := make([]string, len(s.Tokens))
	for i, tok := range s.Tokens {
		words[i] = tok.Word
	}
	return words
}

// EntitySpans returns the extent spans of all primary entity mentions.
func (s *Sentence) EntitySpans() []Span {
	spans := make([]Span, 0, len(s.Entities))
	for _, m := range s.Entities {
		spans = append(spans, m.Extent)
	}
	return spans
}

// Document is an ordered set of independently processable sentences.
type Document struct {
	ID        string      `json:"id,omitempty" yaml:"id,omitempty"`
	Sentences []*Sentence `json:"sentences" yaml:"sentences"`
}
