// Package score turns raw annotation counts into diagnostic signals for the
// run report. Signals are reporting only and never feed back into annotation.
package score

import (
	"fmt"

	"github.com/relextract/slotscan/internal/model"
)

// Scorer generates diagnostic signals from run statistics.
type Scorer struct{}

// NewScorer creates a new scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Signals derives diagnostic signals from the run statistics, with the raw
// inputs attached so every observation is explainable.
func (s *Scorer) Signals(stats model.Stats) []model.Signal {
	var signals []model.Signal

	signals = append(signals, s.missingParses(stats))
	signals = append(signals, s.slotCoverage(stats))

	if stats.PronounRewrites > 0 {
		signals = append(signals, model.Signal{
			Type:        model.SignalPronounRewrites,
			Severity:    model.SeverityInfo,
			Description: fmt.Sprintf("Rewrote NER tags of %d coreferent pronouns", stats.PronounRewrites),
			Data: map[string]interface{}{
				"rewrites": stats.PronounRewrites,
			},
		})
	}

	if stats.ModifierTokens > 0 {
		signals = append(signals, model.Signal{
			Type:        model.SignalModifierYield,
			Severity:    model.SeverityInfo,
			Description: fmt.Sprintf("Tagged %d tokens as entity modifiers", stats.ModifierTokens),
			Data: map[string]interface{}{
				"modifier_tokens": stats.ModifierTokens,
			},
		})
	}

	return signals
}

// missingParses flags how many sentences had no parse tree; those sentences
// skip the modifier pass entirely.
func (s *Scorer) missingParses(stats model.Stats) model.Signal {
	ratio := 0.0
	if stats.Sentences > 0 {
		ratio = float64(stats.MissingParses) / float64(stats.Sentences)
	}

	severity := model.SeverityInfo
	if ratio > 0.5 {
		severity = model.SeverityCritical
	} else if ratio > 0.1 {
		severity = model.SeverityWarning
	}

	return model.Signal{
		Type:        model.SignalMissingParses,
		Severity:    severity,
		Description: fmt.Sprintf("%d of %d sentences had no parse tree (modifier pass skipped)", stats.MissingParses, stats.Sentences),
		Data: map[string]interface{}{
			"missing":   stats.MissingParses,
			"sentences": stats.Sentences,
			"ratio":     ratio,
			"formula":   "missing_parses / sentences",
		},
	}
}

// slotCoverage reports the slot yield relative to the primary entities.
func (s *Scorer) slotCoverage(stats model.Stats) model.Signal {
	if stats.PrimaryEntities == 0 {
		return model.Signal{
			Type:        model.SignalSlotCoverage,
			Severity:    model.SeverityWarning,
			Description: "No primary entities in input; no slot candidates possible",
			Data: map[string]interface{}{
				"primary_entities": 0,
				"slot_mentions":    stats.SlotMentions,
			},
		}
	}

	ratio := float64(stats.SlotMentions) / float64(stats.PrimaryEntities)
	severity := model.SeverityInfo
	if stats.SlotMentions == 0 {
		severity = model.SeverityWarning
	}

	return model.Signal{
		Type:        model.SignalSlotCoverage,
		Severity:    severity,
		Description: fmt.Sprintf("Slot-to-entity ratio: %.2f", ratio),
		Data: map[string]interface{}{
			"primary_entities": stats.PrimaryEntities,
			"slot_mentions":    stats.SlotMentions,
			"ratio":            ratio,
			"formula":          "slot_mentions / primary_entities",
		},
	}
}
