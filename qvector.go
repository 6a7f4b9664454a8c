package qcompendium

import (
	"math"
	"math/cmplx"

	"github.com/theapemachine/errnie"
)

// Tolerance is the absolute tolerance on the normalization sum. A vector is
// normalized when the sum of its squared amplitude magnitudes deviates from
// one by strictly less than this value.
const Tolerance = 1e-9

// Pair associates a basis element with its probability amplitude.
type Pair[B comparable] struct {
	Element   B
	Amplitude complex128
}

/*
QVector is the eager representation of a quantum state over a discrete
basis: a unique-keyed mapping from basis elements to complex probability
amplitudes. Keys are unique because construction folds the supplied pairs
into a map, so a later duplicate overwrites an earlier one. A QVector is
immutable once constructed; operations that change state return a new
vector instead.
*/
type QVector[B comparable] struct {
	amplitudes map[B]complex128
}

/*
NewQVector folds the supplied pairs into a unique-keyed mapping, checks
that the result is normalized, and returns the vector. Construction either
fully succeeds or fails with ErrNotNormalized; a caller never sees a
partially built vector.
*/
func NewQVector[B comparable](pairs []Pair[B]) (*QVector[B], error) {
	amplitudes := make(map[B]complex128, len(pairs))
	for _, p := range pairs {
		amplitudes[p.Element] = p.Amplitude
	}
	return newQVector(amplitudes)
}

// NewQVectorFromMap constructs a vector directly from an amplitude mapping.
// The map is copied, so the caller keeps ownership of its argument.
func NewQVectorFromMap[B comparable](amplitudes map[B]complex128) (*QVector[B], error) {
	copied := make(map[B]complex128, len(amplitudes))
	for e, amp := range amplitudes {
		copied[e] = amp
	}
	return newQVector(copied)
}

func newQVector[B comparable](amplitudes map[B]complex128) (*QVector[B], error) {
	if !isNormalized(amplitudes) {
		return nil, ErrNotNormalized
	}
	errnie.Info("NewQVector - %d basis states", len(amplitudes))
	return &QVector[B]{amplitudes: amplitudes}, nil
}

/*
Amplitude returns the probability amplitude associated with the given basis
element, or the zero complex number when the element carries no entry. It
is total and never fails; an absent element is a valid zero amplitude, not
an error.
*/
func (qv *QVector[B]) Amplitude(element B) complex128 {
	return qv.amplitudes[element]
}

// Size returns the number of basis elements carrying an entry.
func (qv *QVector[B]) Size() int {
	return len(qv.amplitudes)
}

// isNormalized sums the squared magnitude of every amplitude and accepts
// the mapping when the sum is within Tolerance of one. The empty mapping
// sums to zero and is rejected.
func isNormalized[B comparable](amplitudes map[B]complex128) bool {
	sum := 0.0
	for _, amp := range amplitudes {
		sum += probability(amp)
	}
	return math.Abs(sum-1) < Tolerance
}

// probability is the squared modulus of an amplitude.
func probability(amplitude complex128) float64 {
	modulus := cmplx.Abs(amplitude)
	return modulus * modulus
}
