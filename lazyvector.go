package qcompendium

import (
	"iter"
	"math"

	"github.com/theapemachine/errnie"
)

// normalizationBudget bounds how many pairs the truncated validator will
// consume from a lazy sequence before deciding.
const normalizationBudget = 1000

/*
LazyQVector is the lazy representation of a quantum state: an ordered
sequence of basis-element/amplitude pairs. Unlike the map-backed QVector,
duplicate elements are permitted; a lookup returns the amplitude of the
first matching pair in sequence order, so uniqueness is the caller's
responsibility. The sequence must be restartable, since it is ranged once
during validation and again on every lookup. Because the sequence may be
conceptually infinite, normalization is only checked on a bounded prefix.
*/
type LazyQVector[B comparable] struct {
	pairs iter.Seq2[B, complex128]
}

/*
NewLazyQVector validates the pair sequence with the truncated normalization
check and returns the vector. The sequence may be unbounded: validation
never consumes more than normalizationBudget pairs, short-circuiting as
soon as the running sum overshoots one beyond tolerance. Construction
either fully succeeds or fails with ErrNotNormalized.
*/
func NewLazyQVector[B comparable](pairs iter.Seq2[B, complex128]) (*LazyQVector[B], error) {
	if !isNormalizedTruncated(pairs, normalizationBudget) {
		return nil, ErrNotNormalized
	}
	errnie.Info("NewLazyQVector - validated within a budget of %d pairs", normalizationBudget)
	return &LazyQVector[B]{pairs: pairs}, nil
}

// NewLazyQVectorOf constructs a lazy vector from an explicit, finite pair
// list, preserving its order.
func NewLazyQVectorOf[B comparable](pairs ...Pair[B]) (*LazyQVector[B], error) {
	return NewLazyQVector(pairSeq(pairs))
}

/*
Amplitude returns the amplitude of the first pair whose element equals the
query, or the zero complex number when no pair matches. On an unbounded
sequence a query for an element that never occurs does not terminate, so
callers holding an infinite vector should only query elements of its
support.
*/
func (qv *LazyQVector[B]) Amplitude(element B) complex128 {
	for e, amp := range qv.pairs {
		if e == element {
			return amp
		}
	}
	return 0
}

/*
isNormalizedTruncated decides normalization from at most budget pairs of a
possibly infinite sequence. Before consuming each pair it fails outright if
the running sum already strictly exceeds 1+Tolerance, which is what lets a
divergent series be rejected without reading all of it. Once the budget is
spent with pairs still remaining, the unfinished sequence is accepted as
soon as its partial sum has come within Tolerance of one; this is a
deliberately permissive truncation policy, not a resumption point. A
sequence that ends within budget is judged on its final sum.
*/
func isNormalizedTruncated[B comparable](pairs iter.Seq2[B, complex128], budget int) bool {
	sum := 0.0
	remaining := budget
	for _, amp := range pairs {
		if sum > 1+Tolerance {
			return false
		}
		if remaining == 0 {
			return math.Abs(sum) > 1-Tolerance
		}
		sum += probability(amp)
		remaining--
	}
	return sum > 1-Tolerance
}

/*
GeometricVector is the canonical infinite instance: a lazy vector over the
positive naturals assigning amplitude 1/sqrt(2^i) to the integer i. Its
squared magnitudes form the geometric series sum 1/2^i, which converges to
one, so the truncated check accepts it well inside the budget.
*/
func GeometricVector() (*LazyQVector[Natural], error) {
	pairs := func(yield func(Natural, complex128) bool) {
		for i := range (NaturalBasis{}).Elements() {
			if i == 0 {
				continue
			}
			amp := complex(1/math.Sqrt(math.Exp2(float64(i))), 0)
			if !yield(i, amp) {
				return
			}
		}
	}
	return NewLazyQVector(pairs)
}

// pairSeq adapts a pair slice into a restartable ordered sequence.
func pairSeq[B comparable](pairs []Pair[B]) iter.Seq2[B, complex128] {
	return func(yield func(B, complex128) bool) {
		for _, p := range pairs {
			if !yield(p.Element, p.Amplitude) {
				return
			}
		}
	}
}
