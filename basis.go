package qcompendium

import "iter"

/*
Basis is the capability that makes a discrete type usable as the index set
of a quantum vector. Each implementation enumerates the valid elements of
its type in a fixed order, as a restartable sequence. Most bases are finite
and explicitly listed; the natural numbers are the one unbounded case, and
their enumeration is produced lazily so a consumer can stop at any prefix.
*/
type Basis[B comparable] interface {
	Elements() iter.Seq[B]
}

// Move is a basis of two orthogonal game moves.
type Move int

const (
	Vertical Move = iota
	Horizontal
)

func (m Move) String() string {
	if m == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// Rotation is a basis of the two rotation directions.
type Rotation int

const (
	CounterClockwise Rotation = iota
	Clockwise
)

func (r Rotation) String() string {
	if r == CounterClockwise {
		return "CounterClockwise"
	}
	return "Clockwise"
}

// Colour is a three-element basis of primary colours.
type Colour int

const (
	Red Colour = iota
	Yellow
	Blue
)

func (c Colour) String() string {
	switch c {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	default:
		return "Blue"
	}
}

// Natural is a non-negative integer basis element, ordered by value.
type Natural int

// BoolBasis enumerates false then true.
type BoolBasis struct{}

func (BoolBasis) Elements() iter.Seq[bool] {
	return listed(false, true)
}

// MoveBasis enumerates Vertical then Horizontal.
type MoveBasis struct{}

func (MoveBasis) Elements() iter.Seq[Move] {
	return listed(Vertical, Horizontal)
}

// RotationBasis enumerates CounterClockwise then Clockwise.
type RotationBasis struct{}

func (RotationBasis) Elements() iter.Seq[Rotation] {
	return listed(CounterClockwise, Clockwise)
}

// ColourBasis enumerates Red, Yellow, Blue.
type ColourBasis struct{}

func (ColourBasis) Elements() iter.Seq[Colour] {
	return listed(Red, Yellow, Blue)
}

/*
NaturalBasis enumerates 0, 1, 2, … without bound. The sequence never
terminates on its own; consumers are expected to stop ranging once they
have seen enough of the prefix.
*/
type NaturalBasis struct{}

func (NaturalBasis) Elements() iter.Seq[Natural] {
	return func(yield func(Natural) bool) {
		for i := Natural(0); ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// listed turns an explicit element list into a restartable sequence.
func listed[B comparable](elements ...B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for _, e := range elements {
			if !yield(e) {
				return
			}
		}
	}
}
