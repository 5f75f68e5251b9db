package model

import "time"

// Report is the complete result of one annotation run over a document file.
type Report struct {
	Source      string    `json:"source"`       // input file that was annotated
	AnnotatedAt time.Time `json:"annotated_at"` // when the run occurred

	Documents []*Document `json:"documents"` // annotated documents (tokens mutated, slots filled)

	Stats   Stats    `json:"stats"`             // run statistics
	Signals []Signal `json:"signals,omitempty"` // diagnostic signals

	LLM *LLMSummary `json:"llm,omitempty"` // optional LLM summary (reporting only)
}

// Stats aggregates counts over an annotation run.
type Stats struct {
	Documents       int            `json:"documents"`
	Sentences       int            `json:"sentences"`
	Tokens          int            `json:"tokens"`
	PrimaryEntities int            `json:"primary_entities"`
	SlotMentions    int            `json:"slot_mentions"`
	SlotsByType     map[string]int `json:"slots_by_type,omitempty"`
	ModifierTokens  int            `json:"modifier_tokens"`
	PronounRewrites int            `json:"pronoun_rewrites"`
	MissingParses   int            `json:"missing_parses"`
	EmptyCandidates int            `json:"empty_candidates"` // sentences with entities but no slots
}

// Signal is a diagnostic observation about the run, with transparent data.
type Signal struct {
	Type        SignalType             `json:"type"`
	Severity    SignalSeverity         `json:"severity"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// SignalType classifies the type of diagnostic signal.
type SignalType string

const (
	SignalMissingParses   SignalType = "missing_parses"   // sentences with no parse tree
	SignalSlotCoverage    SignalType = "slot_coverage"    // slot yield per primary entity
	SignalPronounRewrites SignalType = "pronoun_rewrites" // coreference-driven NER rewrites
	SignalModifierYield   SignalType = "modifier_yield"   // tokens tagged MODIFIER
)

// SignalSeverity indicates the importance of the signal.
type SignalSeverity string

const (
	SeverityInfo     SignalSeverity = "info"
	SeverityWarning  SignalSeverity = "warning"
	SeverityCritical SignalSeverity = "critical"
)

// LLMSummary contains the optional LLM-generated run summary.
// It never affects annotation output and is clearly separated.
type LLMSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
