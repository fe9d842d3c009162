package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
	"github.com/de-tools/growth-atlas/pkg/services/growth"
)

// ErrMalformedInput is returned when supplied input cannot be parsed.
var ErrMalformedInput = errors.New("malformed input")

const (
	DefaultCapital      = 16000.00
	DefaultInterest     = 1.07
	DefaultContribution = 5000.00
	DefaultYears        = 38
)

// Input is the full set of values needed for one projection run.
type Input struct {
	Capital      float64
	Interest     float64
	Contribution float64
	Years        int
}

func DefaultInput() Input {
	return Input{
		Capital:      DefaultCapital,
		Interest:     DefaultInterest,
		Contribution: DefaultContribution,
		Years:        DefaultYears,
	}
}

// Parameters validates the input and converts it to projection parameters.
func (in Input) Parameters() (domain.Parameters, error) {
	return growth.NewParameters(in.Capital, in.Interest, in.Contribution)
}

func (in Input) Validate() error {
	if in.Years < 0 {
		return fmt.Errorf("%w: years must be non-negative, got %d", growth.ErrInvalidParameter, in.Years)
	}
	_, err := in.Parameters()
	return err
}

// ParseArgs reads the positional form: capital, interest, contribution, years.
func ParseArgs(args []string) (Input, error) {
	if len(args) != 4 {
		return Input{}, fmt.Errorf("%w: expected 4 arguments (capital, interest, contribution, years), got %d",
			ErrMalformedInput, len(args))
	}

	var (
		in  Input
		err error
	)
	if in.Capital, err = parseFloat("capital", args[0]); err != nil {
		return Input{}, err
	}
	if in.Interest, err = parseFloat("interest", args[1]); err != nil {
		return Input{}, err
	}
	if in.Contribution, err = parseFloat("contribution", args[2]); err != nil {
		return Input{}, err
	}
	if in.Years, err = parseInt("years", args[3]); err != nil {
		return Input{}, err
	}
	return in, nil
}

func parseFloat(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, numberError(name, value, err)
	}
	return f, nil
}

func parseInt(name, value string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, numberError(name, value, err)
	}
	return i, nil
}

func numberError(name, value string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: number overflow for %s %q", ErrMalformedInput, name, value)
	}
	return fmt.Errorf("%w: bad input for %s %q", ErrMalformedInput, name, value)
}

// ParseFields overrides the defaults with the supplied fields (capital,
// interest, contribution, years). One malformed field fails the whole call.
func ParseFields(fields map[string]string) (Input, error) {
	in := DefaultInput()
	var err error
	if v, ok := fields["capital"]; ok {
		if in.Capital, err = parseFloat("capital", v); err != nil {
			return Input{}, err
		}
	}
	if v, ok := fields["interest"]; ok {
		if in.Interest, err = parseFloat("interest", v); err != nil {
			return Input{}, err
		}
	}
	if v, ok := fields["contribution"]; ok {
		if in.Contribution, err = parseFloat("contribution", v); err != nil {
			return Input{}, err
		}
	}
	if v, ok := fields["years"]; ok {
		if in.Years, err = parseInt("years", v); err != nil {
			return Input{}, err
		}
	}
	return in, nil
}
