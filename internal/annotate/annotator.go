// Package annotate implements the two per-sentence analysis passes: the
// modifier finder, which tags descriptive noun runs preceding a primary
// entity inside its noun phrase, and the slot span scanner, which proposes
// candidate slot mentions from NER-tagged token runs outside the primary
// entity. Sentences are independent; an Annotator may be shared across
// concurrent sentence workers.
package annotate

import (
	"github.com/relextract/slotscan/internal/gazetteer"
	"github.com/relextract/slotscan/internal/model"
)

// Annotator runs both passes over a sentence in their required order:
// modifier tagging first (tree traversal), then the coreference rewrite and
// slot scan (token scan), since the scanner reads NER tags the earlier
// passes may have written.
type Annotator struct {
	scanner *SlotScanner
}

// SentenceResult reports what one sentence's annotation did.
type SentenceResult struct {
	Slots           []model.SlotMention
	ModifierTokens  int
	PronounRewrites int
	HadParse        bool
}

// New creates an annotator with the given gazetteer and proximity policy.
func New(gaz gazetteer.Gazetteer, proximity Checker) *Annotator {
	return &Annotator{scanner: NewSlotScanner(gaz, proximity)}
}

// AnnotateSentence annotates one sentence in place: tokens may get MODIFIER
// or rewritten NER tags, and the candidate slot list is attached to the
// sentence. Safe to call concurrently for distinct sentences.
func (a *Annotator) AnnotateSentence(sent *model.Sentence) SentenceResult {
	result := SentenceResult{HadParse: sent.Parse != nil}

	result.ModifierTokens = TagModifiers(sent)

	slots, rewrites := a.scanner.Scan(sent)
	sent.Slots = slots
	result.Slots = slots
	result.PronounRewrites = rewrites

	return result
}
