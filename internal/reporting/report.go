// Package reporting renders simulation results for humans. The markdown
// renderer backs the one-shot CLI; services return JSON directly.
package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"exec-planner/internal/domain"
)

// Report wraps one simulation result with generation metadata.
type Report struct {
	GeneratedAt time.Time
	Result      *domain.SimulationResult
}

// NewReport builds a report with the current UTC time.
func NewReport(result *domain.SimulationResult) *Report {
	return &Report{
		GeneratedAt: time.Now().UTC(),
		Result:      result,
	}
}

// WithClock sets a custom timestamp for deterministic output.
func (r *Report) WithClock(now func() time.Time) *Report {
	r.GeneratedAt = now()
	return r
}

// formatUSD renders a dollar amount with two fixed decimal places,
// avoiding float formatting artifacts on displayed money.
func formatUSD(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}
