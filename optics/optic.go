// Package optics provides composable accessors in the profunctor encoding.
//
// An Optic[S, A] is a plain function that lifts a profunctor acting on a
// focus A to one acting on a whole structure S. Lenses focus on one field of
// a product, prisms on one branch of a fallible narrowing, isos on a lossless
// change of representation. All three are the same type, so Compose works on
// any pair of them without knowing which constructor produced either operand.
//
// The same optic reads or writes depending on the profunctor it is given:
// a Transform performs a get-modify-set cycle, an Accumulator performs a pure
// get. View, Over and Set wrap those two cases.
package optics

import "github.com/authcorp/optics/profunctor"

// Optic lifts a profunctor on the focus A to a profunctor on the whole S.
type Optic[S, A any] func(profunctor.P[A, A]) profunctor.P[S, S]

// Compose focuses first with outer, then with inner.
func Compose[S, A, B any](outer Optic[S, A], inner Optic[A, B]) Optic[S, B] {
	return func(p profunctor.P[B, B]) profunctor.P[S, S] {
		return outer(inner(p))
	}
}

// Compose3 is Compose(Compose(a, b), c).
func Compose3[S, A, B, C any](a Optic[S, A], b Optic[A, B], c Optic[B, C]) Optic[S, C] {
	return Compose(Compose(a, b), c)
}

// Identity focuses on the whole structure.
func Identity[S any]() Optic[S, S] {
	return func(p profunctor.P[S, S]) profunctor.P[S, S] {
		return p
	}
}
