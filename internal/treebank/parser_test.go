package treebank

import "testing"

func TestParse_Simple(t *testing.T) {
	tree, err := Parse("(S (NP (NNP Ann)) (VP (VBD left)))")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if tree.Label != "S" {
		t.Errorf("root label = %q, want S", tree.Label)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(tree.Children))
	}
	if tree.Begin != 0 || tree.End != 2 {
		t.Errorf("root span [%d,%d), want [0,2)", tree.Begin, tree.End)
	}
	if !tree.Indexed() {
		t.Error("expected indexed tree")
	}

	np := tree.Children[0]
	if np.Label != "NP" || np.Begin != 0 || np.End != 1 {
		t.Errorf("NP = %q [%d,%d)", np.Label, np.Begin, np.End)
	}
	word := np.Children[0].Children[0]
	if !word.IsLeaf() || word.Label != "Ann" {
		t.Errorf("expected leaf Ann, got %q", word.Label)
	}
}

func TestParse_UnlabeledWrapperUnwrapped(t *testing.T) {
	tree, err := Parse("( (S (NP (NNP Ann)) (VP (VBD left))))")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if tree.Label != "S" {
		t.Errorf("expected wrapper removed, root label = %q", tree.Label)
	}
}

func TestParse_WhitespaceVariants(t *testing.T) {
	tree, err := Parse("(S\n  (NP (NNP Ann))\n\t(VP (VBD left)))")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := tree.YieldLen(); got != 2 {
		t.Errorf("YieldLen() = %d, want 2", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"unclosed", "(S (NP (NNP Ann)"},
		{"extra close", "(S (NNP Ann)))"},
		{"bare token", "Ann"},
		{"two roots", "(S (NNP Ann)) (S (NNP Bob))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.input); err == nil {
				t.Errorf("Parse(%q) succeeded, expected error", tt.input)
			}
		})
	}
}

func TestParse_PunctuationLabels(t *testing.T) {
	tree, err := Parse("(S (NP (NNP Ann)) (. .))")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := tree.YieldLen(); got != 2 {
		t.Errorf("YieldLen() = %d, want 2", got)
	}
	dot := tree.Children[1]
	if dot.Label != "." || dot.Children[0].Label != "." {
		t.Errorf("punctuation node = %q / %q", dot.Label, dot.Children[0].Label)
	}
}
