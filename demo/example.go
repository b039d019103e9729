package demo

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/caffee/division/division"
)

// errNotDivision means a trapped error was not a DivByZero.
var errNotDivision = errors.New("caught error is not a division error")

// Example calls MustDivide inside division.Try and narrows whatever it
// catches to a DivByZero.
type Example struct {
	Out    io.Writer
	Logger *zap.Logger
}

func (d Example) Run(scenarios []Scenario) error {
	return run(d.Out, d.Logger, "Good example:", scenarios, func(s Scenario) (division.Result, error) {
		var result float64
		err := division.Try(func() {
			result = division.MustDivide(s.Dividend, s.Divisor)
		})
		if err == nil {
			return division.Quotient(result), nil
		}

		var e division.DivByZero
		if !errors.As(err, &e) {
			return division.Result{}, errNotDivision
		}
		return division.Failure(e), nil
	})
}
