package annotate

import (
	"testing"

	"github.com/relextract/slotscan/internal/model"
)

func TestWindowChecker(t *testing.T) {
	entities := []model.Span{model.NewSpan(0, 2)}

	tests := []struct {
		name        string
		maxDistance int
		span        model.Span
		want        bool
	}{
		{"within window", 5, model.NewSpan(4, 5), true},
		{"at window edge", 2, model.NewSpan(4, 5), true},
		{"beyond window", 1, model.NewSpan(4, 5), false},
		{"adjacent", 0, model.NewSpan(2, 3), true},
		{"unlimited", -1, model.NewSpan(40, 41), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewWindowChecker(tt.maxDistance)
			if got := checker.CloseEnough(tt.span, entities); got != tt.want {
				t.Errorf("CloseEnough(%s) = %v, want %v", tt.span, got, tt.want)
			}
		})
	}
}

func TestWindowChecker_NoEntities(t *testing.T) {
	checker := NewWindowChecker(1)
	if !checker.CloseEnough(model.NewSpan(10, 11), nil) {
		t.Error("expected true when there are no entity spans")
	}
}
