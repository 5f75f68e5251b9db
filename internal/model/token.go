package model

// NERBlank is the sentinel NER tag meaning "no entity", as produced by
// upstream taggers.
const NERBlank = "O"

// NERModifier is the reserved tag attached to descriptive noun runs found
// immediately before a primary entity inside its noun phrase.
const NERModifier = "MODIFIER"

// Token is one element of a sentence. The NER tag is the only field the
// annotator mutates; everything else is produced upstream and read-only here.
type Token struct {
	Word       string `json:"word" yaml:"word"`
	POS        string `json:"pos" yaml:"pos"`
	NER        string `json:"ner" yaml:"ner"`
	Antecedent string `json:"antecedent,omitempty" yaml:"antecedent,omitempty"` // coreference antecedent text, "" = none
}

// HasAntecedent reports whether the token carries a non-empty coreference
// antecedent. Upstream sometimes emits empty strings; those count as absent.
func (t *Token) HasAntecedent() bool {
	return t.Antecedent != ""
}

// IsEntity reports whether the token carries a real NER tag (not empty, not
// the blank sentinel).
func (t *Token) IsEntity() bool {
	return t.NER != "" && t.NER != NERBlank
}
