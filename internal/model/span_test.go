package model

import "testing"

func TestSpan_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"identical", NewSpan(1, 3), NewSpan(1, 3), true},
		{"partial", NewSpan(1, 3), NewSpan(2, 5), true},
		{"contained", NewSpan(0, 5), NewSpan(2, 3), true},
		{"adjacent", NewSpan(1, 3), NewSpan(3, 5), false},
		{"disjoint", NewSpan(0, 1), NewSpan(4, 6), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("%s.Overlaps(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("%s.Overlaps(%s) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestSpan_Distance(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want int
	}{
		{"overlapping", NewSpan(1, 3), NewSpan(2, 5), 0},
		{"adjacent", NewSpan(1, 3), NewSpan(3, 5), 0},
		{"one apart", NewSpan(1, 3), NewSpan(4, 5), 1},
		{"reversed", NewSpan(4, 5), NewSpan(1, 3), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Distance(tt.b); got != tt.want {
				t.Errorf("%s.Distance(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSpan_Contains(t *testing.T) {
	s := NewSpan(2, 4)
	for i, want := range map[int]bool{1: false, 2: true, 3: true, 4: false} {
		if got := s.Contains(i); got != want {
			t.Errorf("Contains(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestSpan_OverlapsAny(t *testing.T) {
	spans := []Span{NewSpan(0, 2), NewSpan(5, 7)}
	if !NewSpan(1, 3).OverlapsAny(spans) {
		t.Error("expected overlap with first span")
	}
	if NewSpan(3, 5).OverlapsAny(spans) {
		t.Error("expected no overlap in the gap")
	}
	if NewSpan(0, 1).OverlapsAny(nil) {
		t.Error("expected no overlap with empty set")
	}
}

func TestSpan_Len(t *testing.T) {
	if got := NewSpan(2, 5).Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}
