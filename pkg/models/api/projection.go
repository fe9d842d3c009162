package api

type ProjectionInput struct {
	Capital      float64 `json:"capital" yaml:"capital"`
	Interest     float64 `json:"interest" yaml:"interest"`
	Contribution float64 `json:"contribution" yaml:"contribution"`
	Years        int     `json:"years" yaml:"years"`
}

type Parameters struct {
	InitialCapital     float64 `json:"initial_capital" yaml:"initial_capital"`
	InterestMultiplier float64 `json:"interest_multiplier" yaml:"interest_multiplier"`
	InterestRate       float64 `json:"interest_rate" yaml:"interest_rate"`
	YearlyContribution float64 `json:"yearly_contribution" yaml:"yearly_contribution"`
}

type YearRow struct {
	Year           int     `json:"year" yaml:"year"`
	Total          float64 `json:"total" yaml:"total"`
	Growth         float64 `json:"growth" yaml:"growth"`
	InterestEarned float64 `json:"interest_earned" yaml:"interest_earned"`
	Contribution   float64 `json:"contribution" yaml:"contribution"`
}

type Cumulative struct {
	Years        int     `json:"years" yaml:"years"`
	FinalTotal   float64 `json:"final_total" yaml:"final_total"`
	Growth       float64 `json:"growth" yaml:"growth"`
	Interest     float64 `json:"interest" yaml:"interest"`
	Contribution float64 `json:"contribution" yaml:"contribution"`
}

type Projection struct {
	RunID      string     `json:"run_id" yaml:"run_id"`
	Title      string     `json:"title" yaml:"title"`
	Parameters Parameters `json:"parameters" yaml:"parameters"`
	Years      []YearRow  `json:"years" yaml:"years"`
	Cumulative Cumulative `json:"cumulative" yaml:"cumulative"`
}

type ScenarioList struct {
	Scenarios []string `json:"scenarios"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
