// Package demo holds the two demonstration callers of the division core.
// Example traps thrown errors, Expected inspects results. Both print what
// they observe and check it against the expected outcome of each scenario.
package demo

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/caffee/division/division"
)

// Scenario is one call and its expected outcome. WantErr is zero when a
// quotient is expected.
type Scenario struct {
	Dividend float64
	Divisor  float64
	Want     float64
	WantErr  division.DivByZero
}

// Scenarios returns the calls both demonstrations run.
func Scenarios() []Scenario {
	return []Scenario{
		{Dividend: 1, Divisor: 0, WantErr: division.DivisorIsZero},
		{Dividend: 0, Divisor: 0, WantErr: division.BothAreZero},
		{Dividend: 4, Divisor: 2, Want: 2},
		{Dividend: 0, Divisor: 5, Want: 0},
	}
}

func (s Scenario) String() string {
	return fmt.Sprintf("division(%g, %g)", s.Dividend, s.Divisor)
}

func (s Scenario) check(observed division.Result) error {
	if s.WantErr != 0 {
		e, ok := division.As(observed.Err())
		if !ok {
			return fmt.Errorf("%s: want %s, got %s", s, s.WantErr.String(), observed)
		}
		if e != s.WantErr {
			return fmt.Errorf("%s: want %s, got %s", s, s.WantErr.String(), e.String())
		}
		return nil
	}
	if !observed.HasValue() {
		return fmt.Errorf("%s: want result = %f, got %s", s, s.Want, observed)
	}
	if observed.Value() != s.Want {
		return fmt.Errorf("%s: want result = %f, got %s", s, s.Want, observed)
	}
	return nil
}

// observe is one demonstration's way of calling the core.
type observe func(s Scenario) (division.Result, error)

func run(out io.Writer, logger *zap.Logger, title string, scenarios []Scenario, call observe) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	fmt.Fprintln(out, title)

	var result *multierror.Error
	for _, s := range scenarios {
		observed, err := call(s)
		if err != nil {
			logger.Error("cannot observe outcome", zap.Stringer("scenario", s), zap.Error(err))
			result = multierror.Append(result, fmt.Errorf("%s: %w", s, err))
			continue
		}
		fmt.Fprintln(out, observed)

		if err := s.check(observed); err != nil {
			logger.Error("unexpected outcome", zap.Stringer("scenario", s), zap.Error(err))
			result = multierror.Append(result, err)
			continue
		}
		logger.Debug("scenario passed", zap.Stringer("scenario", s), zap.Stringer("outcome", observed))
	}
	return result.ErrorOrNil()
}
