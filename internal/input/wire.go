package input

import (
	"fmt"

	"github.com/relextract/slotscan/internal/model"
	"github.com/relextract/slotscan/internal/treebank"
)

// Wire types shared by the JSON and YAML adapters. The parse tree travels as
// a bracketed string and is expanded on load.

type wireFile struct {
	Documents []wireDocument `json:"documents" yaml:"documents"`
}

type wireDocument struct {
	ID        string         `json:"id" yaml:"id"`
	Sentences []wireSentence `json:"sentences" yaml:"sentences"`
}

type wireSentence struct {
	Tokens   []wireToken   `json:"tokens" yaml:"tokens"`
	Entities []wireMention `json:"entities" yaml:"entities"`
	Parse    string        `json:"parse" yaml:"parse"`
}

type wireToken struct {
	Word       string `json:"word" yaml:"word"`
	POS        string `json:"pos" yaml:"pos"`
	NER        string `json:"ner" yaml:"ner"`
	Antecedent string `json:"antecedent" yaml:"antecedent"`
}

type wireMention struct {
	Extent []int  `json:"extent" yaml:"extent"` // [start, end)
	Head   []int  `json:"head" yaml:"head"`
	Type   string `json:"type" yaml:"type"`
}

func (f *wireFile) build() ([]*model.Document, error) {
	docs := make([]*model.Document, 0, len(f.Documents))
	for di, wd := range f.Documents {
		doc := &model.Document{ID: wd.ID}
		for si, ws := range wd.Sentences {
			sent, err := ws.build()
			if err != nil {
				return nil, fmt.Errorf("document %d sentence %d: %w", di, si, err)
			}
			doc.Sentences = append(doc.Sentences, sent)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *wireSentence) build() (*model.Sentence, error) {
	sent := &model.Sentence{}

	for _, wt := range s.Tokens {
		ner := wt.NER
		if ner == "" {
			ner = model.NERBlank
		}
		sent.Tokens = append(sent.Tokens, &model.Token{
			Word:       wt.Word,
			POS:        wt.POS,
			NER:        ner,
			Antecedent: wt.Antecedent,
		})
	}

	for _, wm := range s.Entities {
		if len(wm.Extent) != 2 {
			return nil, fmt.Errorf("entity extent must be [start, end), got %v", wm.Extent)
		}
		head := wm.Head
		if len(head) == 0 {
			// Default head to the whole extent
			for i := wm.Extent[0]; i < wm.Extent[1]; i++ {
				head = append(head, i)
			}
		}
		sent.Entities = append(sent.Entities, &model.EntityMention{
			Extent: model.NewSpan(wm.Extent[0], wm.Extent[1]),
			Head:   head,
			Type:   wm.Type,
		})
	}

	if s.Parse != "" {
		tree, err := treebank.Parse(s.Parse)
		if err != nil {
			return nil, fmt.Errorf("parse tree: %w", err)
		}
		sent.Parse = tree
	}

	return sent, nil
}
