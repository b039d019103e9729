package division

// thrown marks panics raised by Throw so Try leaves every other panic alone.
type thrown struct {
	err error
}

// Throw unwinds to the nearest Try with err.
func Throw(err error) {
	panic(thrown{err: err})
}

// Try runs fn and returns the error it threw, or nil when fn returned
// normally. Panics that did not come from Throw keep propagating.
func Try(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			t, ok := r.(thrown)
			if !ok {
				panic(r)
			}
			err = t.err
		}
	}()

	fn()
	return nil
}
