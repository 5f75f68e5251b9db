package annotate

import (
	"strings"

	"github.com/relextract/slotscan/internal/model"
)

// TagModifiers finds, for each primary entity, the contiguous run of common
// nouns immediately preceding it inside its smallest enclosing noun phrase,
// and tags those tokens MODIFIER. Returns the number of tokens tagged.
// Sentences without a parse tree are left untouched; the caller decides
// whether that is worth a warning.
func TagModifiers(sent *model.Sentence) int {
	tree := sent.Parse
	if tree == nil {
		return 0
	}
	if !tree.Indexed() {
		tree.IndexSpans(0)
	}

	tagged := 0
	for _, mention := range sent.Entities {
		head := mention.HeadSpan()
		node := findEnclosingNP(tree, head)
		if node == nil {
			continue
		}

		// Scan leftward context inside the phrase, up to the entity head.
		// The run is the first stretch of NN*-tagged, untagged-NER tokens;
		// it ends at the first token breaking either condition.
		phraseStart := node.Begin
		scanEnd := head.Start
		runStart, runEnd := -1, -1
		for i := phraseStart; i < scanEnd; i++ {
			token := sent.Tokens[i]
			qualifies := strings.HasPrefix(token.POS, "NN") && token.NER == model.NERBlank
			if runStart == -1 && qualifies {
				runStart = i
			} else if runStart >= 0 && !qualifies {
				runEnd = i
				break
			}
		}
		if runStart < 0 {
			continue
		}
		if runEnd == -1 {
			runEnd = scanEnd
		}

		for i := runStart; i < runEnd; i++ {
			sent.Tokens[i].NER = model.NERModifier
			tagged++
		}
	}
	return tagged
}

// findEnclosingNP returns the smallest NP node whose token range covers the
// head span, or nil. Children are searched before their parent so the first
// match in post-order is the deepest qualifying node; the traversal uses an
// explicit stack to stay safe on very deep trees.
func findEnclosingNP(root *model.ParseNode, head model.Span) *model.ParseNode {
	type frame struct {
		node *model.ParseNode
		next int
	}

	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.Children) {
			child := top.node.Children[top.next]
			top.next++
			stack = append(stack, frame{node: child})
			continue
		}

		node := top.node
		stack = stack[:len(stack)-1]
		if node.Label == "NP" && node.Begin <= head.Start && node.End >= head.End {
			return node
		}
	}
	return nil
}
