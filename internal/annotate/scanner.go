package annotate

import (
	"github.com/relextract/slotscan/internal/gazetteer"
	"github.com/relextract/slotscan/internal/model"
)

// slotBoundaryPOS lists part-of-speech tags that may not begin a slot span
// and are trimmed from its right edge: prepositions, determiners, adverbs,
// existential "there", and the possessive marker.
var slotBoundaryPOS = map[string]bool{
	"IN": true, "DT": true, "RB": true, "EX": true, "POS": true,
}

// SlotScanner finds candidate slot mentions: maximal runs of identically
// tagged, non-primary named-entity tokens near a primary entity.
type SlotScanner struct {
	gaz       gazetteer.Gazetteer
	proximity Checker
}

// NewSlotScanner creates a scanner with the given gazetteer and proximity
// collaborators.
func NewSlotScanner(gaz gazetteer.Gazetteer, proximity Checker) *SlotScanner {
	return &SlotScanner{gaz: gaz, proximity: proximity}
}

// Scan runs the coreference NER rewrite followed by the left-to-right span
// scan and returns the sentence's candidate slot mentions, in token order,
// plus the number of pronoun rewrites performed. The rewrite mutates token
// NER tags in place; the scan itself is a pure read.
func (s *SlotScanner) Scan(sent *model.Sentence) ([]model.SlotMention, int) {
	tokens := sent.Tokens
	entitySpans := sent.EntitySpans()
	mask := BuildEntityMask(len(tokens), sent.Entities)
	voteNER, hasVote := EntityNERVote(tokens, sent.Entities)

	rewrites := RewriteCoreferentNER(tokens, s.gaz)

	var slots []model.SlotMention
	for start := 0; start < len(tokens); start++ {
		token := tokens[start]
		ner := token.NER
		pos := token.POS
		antecedent := token.Antecedent

		// Valid candidates must be named entities, outside the primary
		// entity, not a continuation of the primary entity's own tag
		// (e.g. "[George Bush] Sr.", where "Sr." is not a slot), and must start
		// on a reasonable POS.
		if ner == "" || ner == model.NERBlank ||
			mask[start] ||
			(start > 0 && mask[start] && hasVote && voteNER == ner) ||
			slotBoundaryPOS[pos] {
			continue
		}

		end := start + 1
		for end < len(tokens) {
			next := tokens[end]
			if antecedent == "" {
				antecedent = next.Antecedent
			}
			if next.NER != ner || mask[end] {
				break
			}
			end++
		}

		// Trim dangling function words from the right edge
		for end > start+1 && slotBoundaryPOS[tokens[end-1].POS] {
			end--
		}

		// Don't absorb trailing fragments of a primary entity's own type
		if end < len(tokens)-1 && mask[end] && hasVote && voteNER == tokens[end-1].NER {
			continue
		}

		for _, tag := range model.TagsFromString(ner) {
			span := model.NewSpan(start, end)
			if span.OverlapsAny(entitySpans) || !s.proximity.CloseEnough(span, entitySpans) {
				continue
			}
			slot := model.SlotMention{Extent: span, Type: tag.String()}
			if antecedent != "" && tag != model.TagDate && tag != model.TagNumber {
				slot.NormalizedName = antecedent
			}
			slots = append(slots, slot)
		}

		start = end - 1
	}

	return slots, rewrites
}
