package score

import (
	"testing"

	"github.com/relextract/slotscan/internal/model"
)

func findSignal(signals []model.Signal, typ model.SignalType) *model.Signal {
	for i := range signals {
		if signals[i].Type == typ {
			return &signals[i]
		}
	}
	return nil
}

func TestScorer_BaseSignalsAlwaysPresent(t *testing.T) {
	s := NewScorer()
	signals := s.Signals(model.Stats{Sentences: 10, PrimaryEntities: 4, SlotMentions: 6})

	if findSignal(signals, model.SignalMissingParses) == nil {
		t.Error("expected missing-parses signal")
	}
	if findSignal(signals, model.SignalSlotCoverage) == nil {
		t.Error("expected slot-coverage signal")
	}
}

func TestScorer_MissingParsesSeverity(t *testing.T) {
	s := NewScorer()

	tests := []struct {
		name      string
		sentences int
		missing   int
		want      model.SignalSeverity
	}{
		{"none missing", 10, 0, model.SeverityInfo},
		{"few missing", 10, 1, model.SeverityInfo},
		{"many missing", 10, 2, model.SeverityWarning},
		{"most missing", 10, 6, model.SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := s.Signals(model.Stats{Sentences: tt.sentences, MissingParses: tt.missing, PrimaryEntities: 1, SlotMentions: 1})
			sig := findSignal(signals, model.SignalMissingParses)
			if sig == nil {
				t.Fatal("expected missing-parses signal")
			}
			if sig.Severity != tt.want {
				t.Errorf("expected severity %s, got %s", tt.want, sig.Severity)
			}
		})
	}
}

func TestScorer_MissingParsesData(t *testing.T) {
	s := NewScorer()
	signals := s.Signals(model.Stats{Sentences: 4, MissingParses: 1, PrimaryEntities: 1, SlotMentions: 1})

	sig := findSignal(signals, model.SignalMissingParses)
	if sig == nil {
		t.Fatal("expected missing-parses signal")
	}
	if sig.Data["missing"] != 1 {
		t.Errorf("expected missing=1 in data, got %v", sig.Data["missing"])
	}
	if sig.Data["formula"] == nil {
		t.Error("expected formula in data")
	}
	if ratio, ok := sig.Data["ratio"].(float64); !ok || ratio != 0.25 {
		t.Errorf("expected ratio 0.25, got %v", sig.Data["ratio"])
	}
}

func TestScorer_SlotCoverage_NoEntities(t *testing.T) {
	s := NewScorer()
	signals := s.Signals(model.Stats{Sentences: 3})

	sig := findSignal(signals, model.SignalSlotCoverage)
	if sig == nil {
		t.Fatal("expected slot-coverage signal")
	}
	if sig.Severity != model.SeverityWarning {
		t.Errorf("expected warning with no entities, got %s", sig.Severity)
	}
}

func TestScorer_SlotCoverage_NoSlots(t *testing.T) {
	s := NewScorer()
	signals := s.Signals(model.Stats{Sentences: 3, PrimaryEntities: 5})

	sig := findSignal(signals, model.SignalSlotCoverage)
	if sig == nil {
		t.Fatal("expected slot-coverage signal")
	}
	if sig.Severity != model.SeverityWarning {
		t.Errorf("expected warning with zero slots, got %s", sig.Severity)
	}
}

func TestScorer_SlotCoverage_Ratio(t *testing.T) {
	s := NewScorer()
	signals := s.Signals(model.Stats{Sentences: 3, PrimaryEntities: 4, SlotMentions: 10})

	sig := findSignal(signals, model.SignalSlotCoverage)
	if sig == nil {
		t.Fatal("expected slot-coverage signal")
	}
	if sig.Severity != model.SeverityInfo {
		t.Errorf("expected info severity, got %s", sig.Severity)
	}
	if ratio, ok := sig.Data["ratio"].(float64); !ok || ratio != 2.5 {
		t.Errorf("expected ratio 2.5, got %v", sig.Data["ratio"])
	}
}

func TestScorer_OptionalSignals(t *testing.T) {
	s := NewScorer()

	// Zero counts suppress the optional signals
	signals := s.Signals(model.Stats{Sentences: 3, PrimaryEntities: 1, SlotMentions: 1})
	if findSignal(signals, model.SignalPronounRewrites) != nil {
		t.Error("expected no pronoun-rewrite signal for zero rewrites")
	}
	if findSignal(signals, model.SignalModifierYield) != nil {
		t.Error("expected no modifier-yield signal for zero modifiers")
	}

	signals = s.Signals(model.Stats{Sentences: 3, PrimaryEntities: 1, SlotMentions: 1, PronounRewrites: 2, ModifierTokens: 4})
	if sig := findSignal(signals, model.SignalPronounRewrites); sig == nil {
		t.Error("expected pronoun-rewrite signal")
	} else if sig.Severity != model.SeverityInfo {
		t.Errorf("expected info severity, got %s", sig.Severity)
	}
	if findSignal(signals, model.SignalModifierYield) == nil {
		t.Error("expected modifier-yield signal")
	}
}
