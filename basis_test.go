package qcompendium

import (
	"slices"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// prefix collects the first n elements of a basis enumeration.
func prefix[B comparable](basis Basis[B], n int) []B {
	out := make([]B, 0, n)
	for e := range basis.Elements() {
		out = append(out, e)
		if len(out) == n {
			break
		}
	}
	return out
}

func TestBases(t *testing.T) {
	Convey("Given the basis capability instances", t, func(c C) {
		Convey("The bool basis enumerates false then true", func(c C) {
			c.So(slices.Collect(BoolBasis{}.Elements()), ShouldResemble, []bool{false, true})
		})

		Convey("The move basis enumerates Vertical then Horizontal", func(c C) {
			c.So(slices.Collect(MoveBasis{}.Elements()), ShouldResemble, []Move{Vertical, Horizontal})
		})

		Convey("The rotation basis enumerates CounterClockwise then Clockwise", func(c C) {
			c.So(slices.Collect(RotationBasis{}.Elements()), ShouldResemble, []Rotation{CounterClockwise, Clockwise})
		})

		Convey("The colour basis enumerates Red, Yellow, Blue", func(c C) {
			c.So(slices.Collect(ColourBasis{}.Elements()), ShouldResemble, []Colour{Red, Yellow, Blue})
		})

		Convey("The natural basis starts at zero and keeps going", func(c C) {
			c.So(prefix[Natural](NaturalBasis{}, 6), ShouldResemble, []Natural{0, 1, 2, 3, 4, 5})
		})

		Convey("Enumerations are restartable", func(c C) {
			basis := NaturalBasis{}
			first := prefix[Natural](basis, 3)
			second := prefix[Natural](basis, 3)
			c.So(second, ShouldResemble, first)
		})
	})
}
