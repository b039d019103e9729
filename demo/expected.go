package demo

import (
	"io"

	"go.uber.org/zap"

	"github.com/caffee/division/division"
)

// Expected calls division.Divide and branches on the Result.
type Expected struct {
	Out    io.Writer
	Logger *zap.Logger
}

func (d Expected) Run(scenarios []Scenario) error {
	return run(d.Out, d.Logger, "Running expected example:", scenarios, func(s Scenario) (division.Result, error) {
		r := division.Divide(s.Dividend, s.Divisor)
		if r.HasValue() {
			return r, nil
		}

		e, ok := division.As(r.Err())
		if !ok {
			return division.Result{}, errNotDivision
		}
		return division.Failure(e), nil
	})
}
