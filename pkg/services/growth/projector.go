// Package growth projects the yearly growth of an investment.
package growth

import (
	"fmt"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
	"github.com/de-tools/growth-atlas/pkg/store/ledger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultStartYear labels the first projected year.
const DefaultStartYear = 1

// Projector compounds an initial capital year by year and keeps the
// results of its latest run. A Projector is not safe for concurrent use;
// services should create one per projection.
type Projector struct {
	params    domain.Parameters
	startYear int
	logger    zerolog.Logger

	runID     uuid.UUID
	runParams domain.Parameters
	ledger    *ledger.Ledger
	totals    domain.CumulativeTotals
}

type Option func(*Projector)

func WithStartYear(year int) Option {
	return func(p *Projector) {
		p.startYear = year
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(p *Projector) {
		p.logger = logger
	}
}

func NewProjector(params domain.Parameters, opts ...Option) (*Projector, error) {
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}

	p := &Projector{
		params:    params,
		startYear: DefaultStartYear,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.reset()
	return p, nil
}

func (p *Projector) reset() {
	p.runID = uuid.New()
	p.runParams = p.params
	p.ledger = ledger.New(ledger.WithStartYear(p.startYear))
	p.totals = domain.CumulativeTotals{FinalTotal: p.params.InitialCapital}
}

// Project simulates yearsToPredict yearly steps and returns the final total.
// Every call starts a new run: the ledger and cumulative totals of the
// previous run are discarded.
func (p *Projector) Project(yearsToPredict int) (float64, error) {
	if yearsToPredict < 0 {
		return 0, fmt.Errorf("%w: years to predict must be non-negative, got %d",
			ErrInvalidParameter, yearsToPredict)
	}

	p.reset()
	logger := p.logger.With().Str("run_id", p.runID.String()).Logger()
	logger.Debug().
		Float64("capital", p.params.InitialCapital).
		Float64("multiplier", p.params.InterestMultiplier).
		Float64("contribution", p.params.YearlyContribution).
		Int("years", yearsToPredict).
		Msg("projection started")

	capital := p.runParams.InitialCapital
	multiplier := p.runParams.InterestMultiplier
	contribution := p.runParams.YearlyContribution
	for year := 1; year <= yearsToPredict; year++ {
		total := NextTotal(capital, multiplier, contribution)
		growth := total - capital
		interest := growth - contribution

		p.ledger.Append(domain.YearRecord{
			Total:          total,
			InterestEarned: interest,
			Contribution:   contribution,
		})
		p.totals.Interest += interest
		p.totals.Contribution += contribution

		capital = total
	}
	p.totals.Years = yearsToPredict
	p.totals.FinalTotal = capital

	logger.Debug().
		Float64("final_total", capital).
		Int("records", p.ledger.Len()).
		Msg("projection finished")

	return capital, nil
}

// NextTotal is the capital after one year of compounding plus the flat
// contribution. The contribution is not compounded in the year it is added.
func NextTotal(capital, multiplier, contribution float64) float64 {
	return capital*multiplier + contribution
}

func (p *Projector) Parameters() domain.Parameters {
	return p.params
}

func (p *Projector) InitialCapital() float64 {
	return p.params.InitialCapital
}

func (p *Projector) InterestRate() float64 {
	return p.params.InterestMultiplier
}

func (p *Projector) YearlyContribution() float64 {
	return p.params.YearlyContribution
}

// SetInitialCapital replaces the capital; negative values are rejected.
func (p *Projector) SetInitialCapital(capital float64) error {
	if err := ValidateCapital(capital); err != nil {
		return err
	}
	p.params.InitialCapital = capital
	return nil
}

// SetInterestRate replaces the interest multiplier, which must be within
// [MinInterestMultiplier, MaxInterestMultiplier].
func (p *Projector) SetInterestRate(multiplier float64) error {
	if err := ValidateInterestMultiplier(multiplier); err != nil {
		return err
	}
	p.params.InterestMultiplier = multiplier
	return nil
}

// SetYearlyContribution accepts any value, negative contributions are withdrawals.
func (p *Projector) SetYearlyContribution(contribution float64) {
	p.params.YearlyContribution = contribution
}

func (p *Projector) RunID() uuid.UUID {
	return p.runID
}

// Ledger holds the records of the latest run.
func (p *Projector) Ledger() *ledger.Ledger {
	return p.ledger
}

func (p *Projector) Totals() domain.CumulativeTotals {
	return p.totals
}

// Report assembles the results of the latest run. Nothing is recomputed, so
// parameters changed after the run are not reflected.
func (p *Projector) Report() *domain.Report {
	return &domain.Report{
		RunID:      p.runID,
		Title:      "Investment Growth Projection",
		Parameters: p.runParams,
		Rows:       p.ledger.Rows(),
		Cumulative: p.totals,
	}
}
