package input

import (
	"strings"
	"testing"

	"github.com/relextract/slotscan/internal/model"
)

func TestCoNLLAdapter_Read(t *testing.T) {
	content := "#doc training-04\n" +
		"#parse (S (NP (NNP Barack) (NNP Obama)) (VP (VBD spoke)))\n" +
		"#entity 0 2 PERSON head=0,1\n" +
		"Barack\tNNP\tPERSON\n" +
		"Obama\tNNP\tPERSON\n" +
		"spoke\tVBD\tO\n" +
		"\n" +
		"she\tPRP\t\tMaria\n" +
		"sang\tVBD\tO\n"

	docs, err := NewCoNLLAdapter().Read(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	doc := docs[0]
	if doc.ID != "training-04" {
		t.Errorf("doc ID = %q, want training-04", doc.ID)
	}
	if len(doc.Sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(doc.Sentences))
	}

	first := doc.Sentences[0]
	if len(first.Tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(first.Tokens))
	}
	if first.Tokens[0].Word != "Barack" || first.Tokens[0].POS != "NNP" || first.Tokens[0].NER != "PERSON" {
		t.Errorf("unexpected first token: %+v", first.Tokens[0])
	}
	if first.Parse == nil || first.Parse.YieldLen() != 3 {
		t.Error("expected parse with 3 leaves")
	}
	if len(first.Entities) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(first.Entities))
	}
	ent := first.Entities[0]
	if ent.Extent != model.NewSpan(0, 2) || ent.Type != "PERSON" {
		t.Errorf("unexpected entity: %+v", ent)
	}
	if len(ent.Head) != 2 || ent.Head[0] != 0 || ent.Head[1] != 1 {
		t.Errorf("unexpected head: %v", ent.Head)
	}

	second := doc.Sentences[1]
	if second.Tokens[0].NER != model.NERBlank {
		t.Errorf("expected empty NER column normalized, got %q", second.Tokens[0].NER)
	}
	if second.Tokens[0].Antecedent != "Maria" {
		t.Errorf("expected antecedent column, got %q", second.Tokens[0].Antecedent)
	}
}

func TestCoNLLAdapter_MultipleDocuments(t *testing.T) {
	content := "#doc a\n" +
		"x\tNN\tO\n" +
		"#doc b\n" +
		"y\tNN\tO\n"

	docs, err := NewCoNLLAdapter().Read(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(docs) != 2 || docs[0].ID != "a" || docs[1].ID != "b" {
		t.Errorf("unexpected documents: %+v", docs)
	}
}

func TestCoNLLAdapter_DefaultHead(t *testing.T) {
	content := "#entity 1 3 ORGANIZATION\n" +
		"the\tDT\tO\n" +
		"World\tNNP\tORGANIZATION\n" +
		"Bank\tNNP\tORGANIZATION\n"

	docs, err := NewCoNLLAdapter().Read(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	head := docs[0].Sentences[0].Entities[0].Head
	if len(head) != 2 || head[0] != 1 || head[1] != 2 {
		t.Errorf("expected default head [1 2], got %v", head)
	}
}

func TestCoNLLAdapter_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"short token line", "Obama\tNNP\n"},
		{"bad entity start", "#entity x 2 PERSON\n"},
		{"bad entity head", "#entity 0 1 PERSON head=z\n"},
		{"bad parse", "#parse (S (NP\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCoNLLAdapter().Read(strings.NewReader(tt.content)); err == nil {
				t.Errorf("expected error for %q", tt.content)
			}
		})
	}
}

func TestCoNLLAdapter_IgnoresOtherComments(t *testing.T) {
	content := "# generated 2026-01-12\n" +
		"Obama\tNNP\tPERSON\n"

	docs, err := NewCoNLLAdapter().Read(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(docs) != 1 || len(docs[0].Sentences[0].Tokens) != 1 {
		t.Errorf("unexpected documents: %+v", docs)
	}
}

func TestCoNLLAdapter_Empty(t *testing.T) {
	docs, err := NewCoNLLAdapter().Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %d", len(docs))
	}
}
