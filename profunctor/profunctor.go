// Package profunctor implements the two profunctors optics are instantiated
// with: Transform, which wraps a function A -> B and is used to update, and
// Accumulator, which wraps a function A -> R, ignores its output side, and is
// used to extract.
//
// Go methods cannot introduce type parameters, so the capability set
// {Dimap, First, Left} is expressed twice. The Profunctor interface carries
// it over erased values and can only be implemented inside this package.
// P[A, B] is the statically typed handle callers work with, and the free
// functions Dimap, First and Left restore the types on each side of the
// erased step. A mismatch between an optic and the profunctor it is given is
// therefore a compile error, not a runtime one.
package profunctor

import (
	"github.com/authcorp/optics/functional"
)

// rule is an erased computation step. The error channel carries structural
// failures raised by adapters (for example a missing record field).
type rule func(any) (any, error)

// Profunctor is the capability set shared by every concrete profunctor.
// It is closed: rule is unexported, so only Transform and Accumulator implement it.
type Profunctor interface {
	// Dimap adapts the input with pre and the output with post.
	Dimap(pre, post rule) Profunctor
	// First lifts the profunctor to pairs, threading the second component.
	First() Profunctor
	// Left lifts the profunctor to sums, acting on the focused variant only.
	Left() Profunctor
}

// pair and sum are the erased shapes First and Left operate on.
type pair struct {
	first, second any
}

type sum struct {
	value   any
	focused bool
}

// Kind names a concrete profunctor.
type Kind string

// Profunctor kinds.
const (
	KindNone        Kind = "none"
	KindTransform   Kind = "transform"
	KindAccumulator Kind = "accumulator"
)

// P is a profunctor from A-context to B-context.
// Construct it with Transform or Accumulator. The zero value has no rule:
// lifting it through Dimap, First, Left or an optic yields another zero P,
// and the terminal operations report a kind mismatch for it.
type P[A, B any] struct {
	impl Profunctor
}

// Kind reports which concrete profunctor p wraps.
func (p P[A, B]) Kind() Kind {
	return kindOf(p.impl)
}

func kindOf(impl Profunctor) Kind {
	switch impl.(type) {
	case transform:
		return KindTransform
	case accumulator:
		return KindAccumulator
	default:
		return KindNone
	}
}

// Dimap adapts the input of p contravariantly with pre and its output
// covariantly with post. Accumulators ignore post.
func Dimap[A, B, C, D any](p P[A, B], pre func(C) A, post func(B) D) P[C, D] {
	return DimapE(p, func(c C) (A, error) { return pre(c), nil }, post)
}

// DimapE is Dimap with a fallible input adapter. An error from pre aborts the
// run and is returned by the terminal operation unchanged.
func DimapE[A, B, C, D any](p P[A, B], pre func(C) (A, error), post func(B) D) P[C, D] {
	if p.impl == nil {
		return P[C, D]{}
	}
	return P[C, D]{impl: p.impl.Dimap(
		func(x any) (any, error) {
			a, err := pre(as[C](x))
			if err != nil {
				return nil, err
			}
			return a, nil
		},
		func(x any) (any, error) {
			return post(as[B](x)), nil
		},
	)}
}

// First extends p to pairs whose first component it acts on.
func First[A, B, X any](p P[A, B]) P[functional.Pair[A, X], functional.Pair[B, X]] {
	if p.impl == nil {
		return P[functional.Pair[A, X], functional.Pair[B, X]]{}
	}
	return P[functional.Pair[A, X], functional.Pair[B, X]]{impl: p.impl.First().Dimap(
		func(x any) (any, error) {
			in := as[functional.Pair[A, X]](x)
			return pair{first: in.First, second: in.Second}, nil
		},
		func(x any) (any, error) {
			out := x.(pair)
			return functional.NewPair(as[B](out.first), as[X](out.second)), nil
		},
	)}
}

// Left extends p to sums. Focused values go through p; Unfocused values
// pass through untouched.
func Left[A, B, X any](p P[A, B]) P[functional.Either[A, X], functional.Either[B, X]] {
	if p.impl == nil {
		return P[functional.Either[A, X], functional.Either[B, X]]{}
	}
	return P[functional.Either[A, X], functional.Either[B, X]]{impl: p.impl.Left().Dimap(
		func(x any) (any, error) {
			return functional.Fold(as[functional.Either[A, X]](x),
				func(a A) sum { return sum{value: a, focused: true} },
				func(r X) sum { return sum{value: r} },
			), nil
		},
		func(x any) (any, error) {
			out := x.(sum)
			if out.focused {
				return functional.Focused[B, X](as[B](out.value)), nil
			}
			return functional.Unfocused[B](as[X](out.value)), nil
		},
	)}
}

// as converts an erased value back to T. A nil interface becomes T's zero
// value, which is what a nil stored under an interface type means.
func as[T any](x any) T {
	if x == nil {
		var zero T
		return zero
	}
	return x.(T)
}
