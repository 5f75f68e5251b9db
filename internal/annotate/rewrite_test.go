package annotate

import (
	"testing"

	"github.com/relextract/slotscan/internal/model"
)

func TestRewrite_PersonPronoun(t *testing.T) {
	tokens := []*model.Token{
		{Word: "Maria", POS: "NNP", NER: "PERSON"},
		{Word: "left", POS: "VBD", NER: "O"},
		{Word: "she", POS: "PRP", NER: "O", Antecedent: "Maria"},
	}

	n := RewriteCoreferentNER(tokens, emptyGazetteer())
	if n != 1 {
		t.Errorf("expected 1 rewrite, got %d", n)
	}
	if tokens[2].NER != "PERSON" {
		t.Errorf("expected she -> PERSON, got %s", tokens[2].NER)
	}
}

func TestRewrite_PersonPronounCaseInsensitive(t *testing.T) {
	tokens := []*model.Token{
		{Word: "He", POS: "PRP", NER: "O", Antecedent: "Obama"},
	}

	RewriteCoreferentNER(tokens, emptyGazetteer())
	if tokens[0].NER != "PERSON" {
		t.Errorf("expected He -> PERSON, got %s", tokens[0].NER)
	}
}

func TestRewrite_PlacePronounViaGazetteer(t *testing.T) {
	gaz := &fakeGazetteer{
		cities:    map[string]bool{"Paris": true},
		regions:   map[string]bool{"Bavaria": true},
		countries: map[string]bool{"France": true},
	}

	cases := []struct {
		antecedent string
		want       string
	}{
		{"Paris", "CITY"},
		{"Bavaria", "STATE_OR_PROVINCE"},
		{"France", "COUNTRY"},
	}
	for _, tc := range cases {
		tokens := []*model.Token{
			{Word: "it", POS: "PRP", NER: "O", Antecedent: tc.antecedent},
		}
		RewriteCoreferentNER(tokens, gaz)
		if tokens[0].NER != tc.want {
			t.Errorf("antecedent %s: expected %s, got %s", tc.antecedent, tc.want, tokens[0].NER)
		}
	}
}

func TestRewrite_CityWinsOverRegion(t *testing.T) {
	// Some names are both a city and a region; the city reading wins.
	gaz := &fakeGazetteer{
		cities:    map[string]bool{"Quebec": true},
		regions:   map[string]bool{"Quebec": true},
		countries: map[string]bool{},
	}
	tokens := []*model.Token{
		{Word: "it", POS: "PRP", NER: "O", Antecedent: "Quebec"},
	}

	RewriteCoreferentNER(tokens, gaz)
	if tokens[0].NER != "CITY" {
		t.Errorf("expected CITY, got %s", tokens[0].NER)
	}
}

func TestRewrite_SkipsIneligibleTokens(t *testing.T) {
	gaz := &fakeGazetteer{
		cities:    map[string]bool{"Paris": true},
		regions:   map[string]bool{},
		countries: map[string]bool{},
	}

	tokens := []*model.Token{
		// already tagged
		{Word: "she", POS: "PRP", NER: "PERSON", Antecedent: "Maria"},
		// not a pronoun
		{Word: "city", POS: "NN", NER: "O", Antecedent: "Paris"},
		// no antecedent
		{Word: "it", POS: "PRP", NER: "O"},
		// lowercase antecedent
		{Word: "it", POS: "PRP", NER: "O", Antecedent: "paris"},
		// unknown place, non-person pronoun
		{Word: "it", POS: "PRP", NER: "O", Antecedent: "Xanadu"},
	}

	n := RewriteCoreferentNER(tokens, gaz)
	if n != 0 {
		t.Errorf("expected 0 rewrites, got %d", n)
	}
	if tokens[1].NER != "O" || tokens[2].NER != "O" || tokens[3].NER != "O" || tokens[4].NER != "O" {
		t.Errorf("expected ineligible tokens untouched: %v", tokens)
	}
}

func TestRewrite_PossessivePronounNotRewritten(t *testing.T) {
	// Possessives (POS tag PRP$) stay out of the rewrite.
	tokens := []*model.Token{
		{Word: "his", POS: "PRP$", NER: "O", Antecedent: "Obama"},
	}

	n := RewriteCoreferentNER(tokens, emptyGazetteer())
	if n != 0 || tokens[0].NER != "O" {
		t.Errorf("expected his untouched, got %d rewrites, NER %s", n, tokens[0].NER)
	}
}
