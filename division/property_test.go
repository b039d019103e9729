package division_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/caffee/division/division"
	"github.com/caffee/division/sample"
)

const rounds = 500

func TestClassificationProperties(t *testing.T) {
	Convey("Given random operands with a zero divisor", t, func() {
		for i := 0; i < rounds; i++ {
			ops := sample.NewZeroDivisor()
			want := division.DivisorIsZero
			if ops.Dividend == 0 {
				want = division.BothAreZero
			}

			r := division.Divide(ops.Dividend, ops.Divisor)
			So(r.HasValue(), ShouldBeFalse)
			e, ok := division.As(r.Err())
			So(ok, ShouldBeTrue)
			So(e, ShouldEqual, want)
			So(e.Message(), ShouldNotBeBlank)

			_, err := division.Division(ops.Dividend, ops.Divisor)
			So(err, ShouldEqual, r.Err())
		}
	})

	Convey("Given random operands with a non-zero divisor", t, func() {
		for i := 0; i < rounds; i++ {
			ops := sample.NewNonZeroDivisor()

			r := division.Divide(ops.Dividend, ops.Divisor)
			So(r.HasValue(), ShouldBeTrue)
			So(r.Value(), ShouldEqual, ops.Dividend/ops.Divisor)

			var q float64
			err := division.Try(func() {
				q = division.MustDivide(ops.Dividend, ops.Divisor)
			})
			So(err, ShouldBeNil)
			So(q, ShouldEqual, r.Value())
		}
	})

	Convey("Given a mixed list of operands", t, func() {
		for _, ops := range sample.NewOperandsList(rounds) {
			r := division.Divide(ops.Dividend, ops.Divisor)
			So(r.HasValue(), ShouldEqual, ops.Divisor != 0)
		}
	})
}
