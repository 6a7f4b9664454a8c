package qcompendium

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// Probability returns the squared magnitude of the amplitude at the given
// basis element, or zero when the element carries no entry.
func (qv *QVector[B]) Probability(element B) float64 {
	return probability(qv.amplitudes[element])
}

// Probabilities returns the measurement distribution over the vector's
// support, renormalized so the probabilities sum to one.
func (qv *QVector[B]) Probabilities() map[B]float64 {
	elements, probs := qv.distribution()
	dist := make(map[B]float64, len(elements))
	for i, e := range elements {
		dist[e] = probs[i]
	}
	return dist
}

/*
Measure samples a basis element according to the vector's probability
distribution and returns it together with the collapsed state: a fresh unit
vector concentrated on the measured element. The receiver is left
untouched; collapse produces a separate immutable value.
*/
func (qv *QVector[B]) Measure() (B, *QVector[B]) {
	elements, probs := qv.distribution()

	r := rand.Float64()
	cumulative := 0.0
	measured := len(elements) - 1
	for i, p := range probs {
		cumulative += p
		if r <= cumulative {
			measured = i
			break
		}
	}

	return elements[measured], NewUnitVector(elements[measured])
}

// Collapse measures the vector and returns only the collapsed state.
func (qv *QVector[B]) Collapse() *QVector[B] {
	_, collapsed := qv.Measure()
	return collapsed
}

// distribution extracts the support and its normalized probabilities. A
// constructed vector is never empty, so the total is always positive.
func (qv *QVector[B]) distribution() ([]B, []float64) {
	elements := make([]B, 0, len(qv.amplitudes))
	probs := make([]float64, 0, len(qv.amplitudes))
	for e, amp := range qv.amplitudes {
		elements = append(elements, e)
		probs = append(probs, probability(amp))
	}
	floats.Scale(1/floats.Sum(probs), probs)
	return elements, probs
}

// NewUnitVector builds the vector assigning amplitude one to a single basis
// element. It is trivially normalized and is the state a measurement
// collapses to.
func NewUnitVector[B comparable](element B) *QVector[B] {
	return &QVector[B]{amplitudes: map[B]complex128{element: 1}}
}

/*
NewUniformVector builds the even superposition over a finite basis: every
element receives the real amplitude 1/sqrt(n). The basis enumeration is
consumed in full, so this must not be called with an unbounded basis such
as NaturalBasis.
*/
func NewUniformVector[B comparable](basis Basis[B]) (*QVector[B], error) {
	var elements []B
	for e := range basis.Elements() {
		elements = append(elements, e)
	}

	amplitudes := make(map[B]complex128, len(elements))
	amp := complex(1/math.Sqrt(float64(len(elements))), 0)
	for _, e := range elements {
		amplitudes[e] = amp
	}
	return newQVector(amplitudes)
}
