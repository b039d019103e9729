// Package division computes a quotient or classifies why it does not exist.
//
// The same classification is reported two ways. Divide returns a Result
// that holds either the quotient or the error. Division and MustDivide
// raise the error instead, as a returned error or as a panic caught by Try.
// In every case the error is a DivByZero value.
package division

// classify is the only place the zero checks live.
func classify(dividend, divisor float64) Result {
	if divisor != 0 {
		return Quotient(dividend / divisor)
	}
	if dividend == 0 {
		return Failure(BothAreZero)
	}
	return Failure(DivisorIsZero)
}

// Divide never fails; inspect the Result.
func Divide(dividend, divisor float64) Result {
	return classify(dividend, divisor)
}

// Division returns the quotient, or a DivByZero error.
func Division(dividend, divisor float64) (float64, error) {
	return classify(dividend, divisor).Get()
}

// MustDivide returns the quotient and throws the DivByZero otherwise.
// Call it inside Try.
func MustDivide(dividend, divisor float64) float64 {
	r := classify(dividend, divisor)
	if !r.HasValue() {
		Throw(r.err)
	}
	return r.quotient
}
