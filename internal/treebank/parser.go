// Package treebank reads Penn-style bracketed constituency parses, e.g.
// "(S (NP (NNP Barack) (NNP Obama)) (VP (VBD was) ...))", into parse trees.
package treebank

import (
	"fmt"
	"strings"

	"github.com/relextract/slotscan/internal/model"
)

type tokenKind int

const (
	tokOpen tokenKind = iota
	tokClose
	tokAtom
)

type token struct {
	kind tokenKind
	text string
}

// Parse reads a bracketed parse string into a tree and assigns token-index
// spans. An unlabeled wrapper around the root, as some parsers emit
// ("( (S ...))"), is tolerated.
func Parse(input string) (*model.ParseNode, error) {
	toks := lex(input)
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty parse string")
	}

	var root *model.ParseNode
	var stack []*model.ParseNode

	for i := 0; i < len(toks); i++ {
		switch toks[i].kind {
		case tokOpen:
			label := ""
			if i+1 < len(toks) && toks[i+1].kind == tokAtom {
				label = toks[i+1].text
				i++
			}
			node := &model.ParseNode{Label: label}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			} else if root == nil {
				root = node
			} else {
				return nil, fmt.Errorf("multiple root nodes")
			}
			stack = append(stack, node)

		case tokClose:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unbalanced parse: unexpected %q", ")")
			}
			stack = stack[:len(stack)-1]

		case tokAtom:
			if len(stack) == 0 {
				return nil, fmt.Errorf("token %q outside any node", toks[i].text)
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, &model.ParseNode{Label: toks[i].text})
		}
	}

	if len(stack) != 0 {
		return nil, fmt.Errorf("unbalanced parse: %d unclosed nodes", len(stack))
	}
	if root == nil {
		return nil, fmt.Errorf("no nodes in parse string")
	}

	// An unlabeled single-child wrapper is the parser's artifact, not a
	// constituent
	if root.Label == "" && len(root.Children) == 1 {
		root = root.Children[0]
	}

	root.IndexSpans(0)
	return root, nil
}

func lex(input string) []token {
	var toks []token
	var atom strings.Builder

	flush := func() {
		if atom.Len() > 0 {
			toks = append(toks, token{kind: tokAtom, text: atom.String()})
			atom.Reset()
		}
	}

	for _, r := range input {
		switch {
		case r == '(':
			flush()
			toks = append(toks, token{kind: tokOpen})
		case r == ')':
			flush()
			toks = append(toks, token{kind: tokClose})
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			atom.WriteRune(r)
		}
	}
	flush()
	return toks
}
