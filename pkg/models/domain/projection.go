package domain

// Parameters are the inputs of a growth projection.
type Parameters struct {
	InitialCapital     float64
	InterestMultiplier float64 // 1.07 == 7% yearly growth
	YearlyContribution float64 // negative values model withdrawals
}

// YearRecord is the outcome of a single projected year.
type YearRecord struct {
	Total          float64
	InterestEarned float64
	Contribution   float64
}

// Growth is the full change of the year, interest plus contribution.
func (r YearRecord) Growth() float64 {
	return r.InterestEarned + r.Contribution
}

// YearRow is a YearRecord labelled with its display year.
type YearRow struct {
	Year int
	YearRecord
}

// CumulativeTotals are the running sums of one projection run.
type CumulativeTotals struct {
	Years        int
	FinalTotal   float64
	Interest     float64
	Contribution float64
}

func (c CumulativeTotals) Growth() float64 {
	return c.Interest + c.Contribution
}
