package division

import "fmt"

// Result holds either a quotient or the DivByZero that prevented it.
// The zero Result is a successful quotient of 0.
type Result struct {
	quotient float64
	err      DivByZero
}

// Quotient builds a successful Result.
func Quotient(q float64) Result {
	return Result{quotient: q}
}

// Failure builds a failed Result.
func Failure(e DivByZero) Result {
	return Result{err: e}
}

func (r Result) HasValue() bool {
	return r.err == 0
}

// Value returns the quotient. It panics when the Result holds an error,
// check HasValue first.
func (r Result) Value() float64 {
	if !r.HasValue() {
		panic(fmt.Sprintf("division: Value called on failed result: %s", r.err))
	}
	return r.quotient
}

// Err returns the division error, or nil for a quotient.
func (r Result) Err() error {
	if r.HasValue() {
		return nil
	}
	return r.err
}

// Get unpacks the Result into the usual (value, error) pair.
func (r Result) Get() (float64, error) {
	if !r.HasValue() {
		return 0, r.err
	}
	return r.quotient, nil
}

func (r Result) String() string {
	if !r.HasValue() {
		return "error = " + r.err.Message()
	}
	return fmt.Sprintf("result = %f", r.quotient)
}
