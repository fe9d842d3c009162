package domain

import "github.com/google/uuid"

// Report represents a complete projection report
type Report struct {
	RunID      uuid.UUID
	Title      string
	Parameters Parameters
	Rows       []YearRow
	Cumulative CumulativeTotals
}

// InterestRate is the yearly growth rate, e.g. 0.07 for a 1.07 multiplier
func (r *Report) InterestRate() float64 {
	return r.Parameters.InterestMultiplier - 1.0
}
