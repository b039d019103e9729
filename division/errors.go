package division

import (
	"errors"
	"fmt"
)

// DivByZero is the reason a division has no quotient. The value itself is
// the error, so a caller narrows a generic error to it with errors.As.
type DivByZero int

const (
	// DivisorIsZero: the divisor is zero and the dividend is not.
	DivisorIsZero DivByZero = iota + 1
	// BothAreZero: dividend and divisor are both zero.
	BothAreZero
)

var names = map[DivByZero]string{
	DivisorIsZero: "DivisorIsZero",
	BothAreZero:   "BothAreZero",
}

var messages = map[DivByZero]string{
	DivisorIsZero: "Division by zero is not allowed",
	BothAreZero:   "Division of zero by zero is undefined",
}

// Variants lists every DivByZero value.
func Variants() []DivByZero {
	return []DivByZero{DivisorIsZero, BothAreZero}
}

// Message returns the diagnostic text of the variant.
func (e DivByZero) Message() string {
	if msg, ok := messages[e]; ok {
		return msg
	}
	return fmt.Sprintf("unknown division error %d", int(e))
}

func (e DivByZero) Error() string {
	return e.Message()
}

func (e DivByZero) String() string {
	if name, ok := names[e]; ok {
		return name
	}
	return fmt.Sprintf("DivByZero(%d)", int(e))
}

// Valid reports whether e is one of the declared variants.
func (e DivByZero) Valid() bool {
	_, ok := names[e]
	return ok
}

// As narrows err to a DivByZero. ok is false when err is nil or does not
// wrap a division error.
func As(err error) (e DivByZero, ok bool) {
	ok = errors.As(err, &e)
	return
}

// Parse looks a variant up by its name, as produced by String.
func Parse(name string) (DivByZero, bool) {
	for e, n := range names {
		if n == name {
			return e, true
		}
	}
	return 0, false
}

// FromMessage recovers the variant from its message. Transports that only
// carry error text (net/rpc) use it to restore the typed error.
func FromMessage(msg string) (DivByZero, bool) {
	for e, m := range messages {
		if m == msg {
			return e, true
		}
	}
	return 0, false
}
