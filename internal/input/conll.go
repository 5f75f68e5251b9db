package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/relextract/slotscan/internal/model"
	"github.com/relextract/slotscan/internal/treebank"
)

// CoNLLAdapter reads documents from a CoNLL-style column format:
//
//	#doc training-04
//	#parse (S (NP (NNP Barack) (NNP Obama)) (VP (VBD was) ...))
//	#entity 0 2 PERSON head=0,1
//	Barack	NNP	PERSON
//	Obama	NNP	PERSON
//	was	VBD	O
//	...
//
// Token columns are word, POS, NER, and an optional coreference antecedent.
// A blank line ends a sentence; a #doc line starts a new document.
type CoNLLAdapter struct{}

// NewCoNLLAdapter creates a new CoNLL adapter.
func NewCoNLLAdapter() *CoNLLAdapter {
	return &CoNLLAdapter{}
}

// Name returns the adapter name.
func (a *CoNLLAdapter) Name() string {
	return "conll"
}

// CanHandle checks the file extension.
func (a *CoNLLAdapter) CanHandle(path string) bool {
	return hasExt(path, ".conll", ".tsv")
}

// Read parses documents from the column format.
func (a *CoNLLAdapter) Read(r io.Reader) ([]*model.Document, error) {
	var docs []*model.Document
	doc := &model.Document{}
	sent := &model.Sentence{}
	lineNo := 0

	flushSentence := func() {
		if len(sent.Tokens) > 0 {
			doc.Sentences = append(doc.Sentences, sent)
		}
		sent = &model.Sentence{}
	}
	flushDocument := func() {
		flushSentence()
		if len(doc.Sentences) > 0 {
			docs = append(docs, doc)
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t")

		switch {
		case line == "":
			flushSentence()

		case strings.HasPrefix(line, "#doc"):
			flushDocument()
			doc = &model.Document{ID: strings.TrimSpace(strings.TrimPrefix(line, "#doc"))}

		case strings.HasPrefix(line, "#parse "):
			tree, err := treebank.Parse(strings.TrimPrefix(line, "#parse "))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			sent.Parse = tree

		case strings.HasPrefix(line, "#entity "):
			mention, err := parseEntityLine(strings.TrimPrefix(line, "#entity "))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			sent.Entities = append(sent.Entities, mention)

		case strings.HasPrefix(line, "#"):
			// Other comment; ignore

		default:
			token, err := parseTokenLine(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			sent.Tokens = append(sent.Tokens, token)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	flushDocument()
	return docs, nil
}

func parseTokenLine(line string) (*model.Token, error) {
	cols := strings.Split(line, "\t")
	if len(cols) < 3 {
		return nil, fmt.Errorf("token line needs word, POS, NER columns: %q", line)
	}
	token := &model.Token{
		Word: cols[0],
		POS:  cols[1],
		NER:  cols[2],
	}
	if token.NER == "" {
		token.NER = model.NERBlank
	}
	if len(cols) > 3 {
		token.Antecedent = cols[3]
	}
	return token, nil
}

func parseEntityLine(rest string) (*model.EntityMention, error) {
	fields := strings.Fields(rest)
	if len(fields) < 3 {
		return nil, fmt.Errorf("entity line needs start, end, type: %q", rest)
	}
	start, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("entity start: %w", err)
	}
	end, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("entity end: %w", err)
	}

	mention := &model.EntityMention{
		Extent: model.NewSpan(start, end),
		Type:   fields[2],
	}

	for _, field := range fields[3:] {
		if !strings.HasPrefix(field, "head=") {
			continue
		}
		for _, part := range strings.Split(strings.TrimPrefix(field, "head="), ",") {
			idx, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("entity head index %q: %w", part, err)
			}
			mention.Head = append(mention.Head, idx)
		}
	}

	// Default head: every token in the extent
	if len(mention.Head) == 0 {
		for i := start; i < end; i++ {
			mention.Head = append(mention.Head, i)
		}
	}

	return mention, nil
}
