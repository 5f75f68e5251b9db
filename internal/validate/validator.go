// Package validate checks input documents against the annotator's caller
// contract before any annotation runs: span indices in bounds, well-ordered
// spans, head indices inside the token sequence, and parse yields matching
// token counts. Violations are fatal input errors, not retryable conditions.
package validate

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/relextract/slotscan/internal/model"
)

// Validator validates documents concurrently across sentences.
type Validator struct {
	maxWorkers int
}

// NewValidator creates a new validator.
func NewValidator(maxWorkers int) *Validator {
	if maxWorkers <= 0 {
		maxWorkers = 8
	}
	return &Validator{maxWorkers: maxWorkers}
}

// Result is the validation outcome for one sentence.
type Result struct {
	DocumentID string   `json:"document_id,omitempty"`
	Document   int      `json:"document"`
	Sentence   int      `json:"sentence"`
	Errors     []string `json:"errors,omitempty"`
}

// Valid reports whether the sentence passed all checks.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks every sentence of every document. Sentences are independent
// and checked concurrently, bounded by the worker limit. All results are
// returned, failing sentences included.
func (v *Validator) Validate(ctx context.Context, docs []*model.Document) ([]Result, error) {
	type slot struct {
		doc     *model.Document
		docIdx  int
		sent    *model.Sentence
		sentIdx int
	}
	var slots []slot
	for di, doc := range docs {
		for si, sent := range doc.Sentences {
			slots = append(slots, slot{doc: doc, docIdx: di, sent: sent, sentIdx: si})
		}
	}
	if len(slots) == 0 {
		return []Result{}, nil
	}

	results := make([]Result, len(slots))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, v.maxWorkers)

	for i, s := range slots {
		wg.Add(1)
		go func(idx int, s slot) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = Result{
					DocumentID: s.doc.ID,
					Document:   s.docIdx,
					Sentence:   s.sentIdx,
					Errors:     []string{"context cancelled"},
				}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = Result{
				DocumentID: s.doc.ID,
				Document:   s.docIdx,
				Sentence:   s.sentIdx,
				Errors:     checkSentence(s.sent),
			}
		}(i, s)
	}

	wg.Wait()
	return results, nil
}

// FirstError summarizes failing results as a single error, or nil if all
// sentences passed.
func FirstError(results []Result) error {
	var problems []string
	for _, r := range results {
		if r.Valid() {
			continue
		}
		for _, msg := range r.Errors {
			problems = append(problems, fmt.Sprintf("document %d sentence %d: %s", r.Document, r.Sentence, msg))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	const maxShown = 5
	if len(problems) > maxShown {
		problems = append(problems[:maxShown], fmt.Sprintf("... and %d more", len(problems)-maxShown))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(problems, "; "))
}

func checkSentence(sent *model.Sentence) []string {
	var errs []string
	n := len(sent.Tokens)

	if n == 0 {
		errs = append(errs, "sentence has no tokens")
		return errs
	}

	for mi, mention := range sent.Entities {
		extent := mention.Extent
		if extent.Start > extent.End {
			errs = append(errs, fmt.Sprintf("entity %d: extent %s is inverted", mi, extent))
		}
		if extent.Start < 0 || extent.End > n {
			errs = append(errs, fmt.Sprintf("entity %d: extent %s outside token range [0,%d)", mi, extent, n))
		}
		for _, h := range mention.Head {
			if h < 0 || h >= n {
				errs = append(errs, fmt.Sprintf("entity %d: head index %d outside token range [0,%d)", mi, h, n))
			}
		}
		if strings.TrimSpace(mention.Type) == "" {
			errs = append(errs, fmt.Sprintf("entity %d: empty type", mi))
		}
	}

	if sent.Parse != nil {
		if yield := sent.Parse.YieldLen(); yield != n {
			errs = append(errs, fmt.Sprintf("parse yield has %d leaves but sentence has %d tokens", yield, n))
		}
	}

	return errs
}
