package demo

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/caffee/division/division"
)

type runner interface {
	Run(scenarios []Scenario) error
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		title string
		run   func(out *bytes.Buffer) runner
	}{
		{
			name:  "example",
			title: "Good example:",
			run:   func(out *bytes.Buffer) runner { return Example{Out: out} },
		},
		{
			name:  "expected",
			title: "Running expected example:",
			run:   func(out *bytes.Buffer) runner { return Expected{Out: out} },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, tt.run(&out).Run(Scenarios()))

			want := tt.title + "\n" +
				"error = " + division.DivisorIsZero.Message() + "\n" +
				"error = " + division.BothAreZero.Message() + "\n" +
				"result = 2.000000\n" +
				"result = 0.000000\n"
			require.Equal(t, want, out.String())
		})
	}
}

func TestRunMismatch(t *testing.T) {
	wrong := []Scenario{
		{Dividend: 1, Divisor: 0, WantErr: division.BothAreZero},
		{Dividend: 4, Divisor: 2, Want: 3},
		{Dividend: 0, Divisor: 0, Want: 0},
		{Dividend: 6, Divisor: 0, WantErr: division.DivisorIsZero},
	}

	core, logs := observer.New(zapcore.ErrorLevel)
	for _, r := range []runner{
		Example{Out: &bytes.Buffer{}, Logger: zap.New(core)},
		Expected{Out: &bytes.Buffer{}, Logger: zap.New(core)},
	} {
		err := r.Run(wrong)
		require.Error(t, err)

		merr, ok := err.(*multierror.Error)
		require.True(t, ok)
		require.Len(t, merr.Errors, 3)
		require.Contains(t, merr.Errors[0].Error(), "division(1, 0): want BothAreZero, got DivisorIsZero")
		require.Contains(t, merr.Errors[1].Error(), "want result = 3.000000, got result = 2.000000")
		require.Contains(t, merr.Errors[2].Error(), "division(0, 0): want result = 0.000000")
	}
	require.Equal(t, 6, logs.FilterMessage("unexpected outcome").Len())
}

func TestScenarioCheck(t *testing.T) {
	for _, s := range Scenarios() {
		require.NoError(t, s.check(division.Divide(s.Dividend, s.Divisor)))
	}

	s := Scenario{Dividend: 1, Divisor: 0, WantErr: division.DivisorIsZero}
	require.Error(t, s.check(division.Quotient(1)))
}
