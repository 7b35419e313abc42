package tui

import "github.com/rgehrsitz/viagerpro/internal/domain"

// Message types for the Bubble Tea update cycle

// recalcMsg fires when the debounce delay after an edit has elapsed. Only the
// message carrying the latest edit sequence triggers a recomputation.
type recalcMsg struct {
	seq int
}

// ResultMsg carries a fresh valuation, or the validation problems preventing one
type ResultMsg struct {
	Result   *domain.ValuationResult
	Problems []string
	Warnings []string

	// Department names the department whose average price stood in for an empty avg_price_m2
	Department string
}
