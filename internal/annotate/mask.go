package annotate

import "github.com/relextract/slotscan/internal/model"

// BuildEntityMask marks every token index covered by a primary entity extent.
// Masked indices are excluded from slot candidacy.
func BuildEntityMask(tokenCount int, mentions []*model.EntityMention) []bool {
	mask := make([]bool, tokenCount)
	for _, m := range mentions {
		for i := m.Extent.Start; i < m.Extent.End; i++ {
			mask[i] = true
		}
	}
	return mask
}

// EntityNERVote tallies the NER tags at the primary mentions' head token
// indices and returns the majority tag. Ties break toward the tag seen first.
// Returns ok=false when the tally is empty or the winner is the blank
// sentinel; the scanner then relaxes its dangling-suffix exclusion.
func EntityNERVote(tokens []*model.Token, mentions []*model.EntityMention) (string, bool) {
	counts := make(map[string]int)
	var order []string
	for _, m := range mentions {
		for _, i := range m.Head {
			ner := tokens[i].NER
			if counts[ner] == 0 {
				order = append(order, ner)
			}
			counts[ner]++
		}
	}
	if len(order) == 0 {
		return "", false
	}

	best := order[0]
	for _, ner := range order[1:] {
		if counts[ner] > counts[best] {
			best = ner
		}
	}
	if best == model.NERBlank {
		return "", false
	}
	return best, true
}
