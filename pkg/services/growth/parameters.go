package growth

import (
	"errors"
	"fmt"
	"math"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
)

const (
	MinInterestMultiplier = 1.0 // no growth
	MaxInterestMultiplier = 1.5 // 50% yearly growth
)

// ErrInvalidParameter is returned when a projection parameter is out of range.
var ErrInvalidParameter = errors.New("invalid parameter")

// NewParameters validates the inputs and returns them as projection parameters.
func NewParameters(capital, multiplier, contribution float64) (domain.Parameters, error) {
	if err := ValidateCapital(capital); err != nil {
		return domain.Parameters{}, err
	}
	if err := ValidateInterestMultiplier(multiplier); err != nil {
		return domain.Parameters{}, err
	}
	return domain.Parameters{
		InitialCapital:     capital,
		InterestMultiplier: multiplier,
		YearlyContribution: contribution,
	}, nil
}

func ValidateParameters(p domain.Parameters) error {
	_, err := NewParameters(p.InitialCapital, p.InterestMultiplier, p.YearlyContribution)
	return err
}

func ValidateCapital(capital float64) error {
	if math.IsNaN(capital) || math.IsInf(capital, 0) || capital < 0 {
		return fmt.Errorf("%w: capital must be a non-negative value, got %v", ErrInvalidParameter, capital)
	}
	return nil
}

func ValidateInterestMultiplier(multiplier float64) error {
	if math.IsNaN(multiplier) || multiplier < MinInterestMultiplier || multiplier > MaxInterestMultiplier {
		return fmt.Errorf("%w: interest multiplier must be within %.1f-%.1f, got %v",
			ErrInvalidParameter, MinInterestMultiplier, MaxInterestMultiplier, multiplier)
	}
	return nil
}
