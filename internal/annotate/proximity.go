package annotate

import "github.com/relextract/slotscan/internal/model"

// Checker decides whether a candidate span is positionally near enough to
// some primary entity extent to be worth proposing. The policy is external to
// the scanning algorithm itself.
type Checker interface {
	CloseEnough(span model.Span, entitySpans []model.Span) bool
}

// WindowChecker accepts candidates within a fixed token gap of the nearest
// primary entity extent. A negative MaxDistance accepts everything.
type WindowChecker struct {
	MaxDistance int
}

// NewWindowChecker creates a proximity checker with the given token window.
func NewWindowChecker(maxDistance int) *WindowChecker {
	return &WindowChecker{MaxDistance: maxDistance}
}

// CloseEnough reports whether the span lies within MaxDistance tokens of any
// entity span. With no entity spans present there is nothing to be close to,
// and every candidate passes.
func (c *WindowChecker) CloseEnough(span model.Span, entitySpans []model.Span) bool {
	if c.MaxDistance < 0 || len(entitySpans) == 0 {
		return true
	}
	for _, entity := range entitySpans {
		if span.Distance(entity) <= c.MaxDistance {
			return true
		}
	}
	return false
}
