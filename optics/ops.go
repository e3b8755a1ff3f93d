package optics

import "github.com/authcorp/optics/profunctor"

// View extracts the focus of s. It runs o with the identity Accumulator, so
// no part of s is rebuilt.
func View[S, A any](o Optic[S, A], s S) (A, error) {
	return profunctor.Collect[A](o(profunctor.Getter[A]()), s)
}

// Over returns a copy of s with fn applied to the focus.
func Over[S, A any](o Optic[S, A], s S, fn func(A) A) (S, error) {
	return profunctor.Run(o(profunctor.Transform(fn)), s)
}

// Set returns a copy of s with the focus replaced by v.
func Set[S, A any](o Optic[S, A], s S, v A) (S, error) {
	return profunctor.Run(o(profunctor.Setter(v)), s)
}

// Preview extracts the focus of s through an optic that may contain prisms.
// The boolean is false when a prism did not match. Preview drives o with a
// Transform that records the focus it is handed, since an Accumulator cannot
// cross a prism.
func Preview[S, A any](o Optic[S, A], s S) (A, bool, error) {
	var (
		focus A
		found bool
	)
	probe := profunctor.Transform(func(a A) A {
		focus, found = a, true
		return a
	})
	if _, err := profunctor.Run(o(probe), s); err != nil {
		var zero A
		return zero, false, err
	}
	return focus, found, nil
}
